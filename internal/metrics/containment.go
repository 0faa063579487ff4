package metrics

import "github.com/san-kum/armchain/internal/arm"

// Containment is the fraction of frames in which every tip stays within
// threshold of the origin.
type Containment struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewContainment(threshold float64) *Containment {
	return &Containment{
		name:      "containment",
		threshold: threshold,
	}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) OnFrame(t int64, poses []arm.Pose) {
	origin, _, ok := outer(poses)
	if !ok {
		return
	}
	c.samples++
	for _, p := range poses {
		if p.Tip.Sub(origin).Len() > c.threshold {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
