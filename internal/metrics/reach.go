package metrics

import "github.com/san-kum/armchain/internal/arm"

// MaxReach is the largest distance of the outermost tip from the origin.
type MaxReach struct {
	name string
	max  float64
}

func NewMaxReach() *MaxReach {
	return &MaxReach{name: "max_reach"}
}

func (m *MaxReach) Name() string { return m.name }

func (m *MaxReach) OnFrame(t int64, poses []arm.Pose) {
	origin, tip, ok := outer(poses)
	if !ok {
		return
	}
	if r := tip.Sub(origin).Len(); r > m.max {
		m.max = r
	}
}

func (m *MaxReach) Value() float64 { return m.max }

func (m *MaxReach) Reset() { m.max = 0 }

// TipPath is the distance travelled by the outermost tip.
type TipPath struct {
	name    string
	last    arm.Vec2
	started bool
	total   float64
}

func NewTipPath() *TipPath {
	return &TipPath{name: "tip_path"}
}

func (p *TipPath) Name() string { return p.name }

func (p *TipPath) OnFrame(t int64, poses []arm.Pose) {
	_, tip, ok := outer(poses)
	if !ok {
		return
	}
	if p.started {
		p.total += tip.Sub(p.last).Len()
	}
	p.last = tip
	p.started = true
}

func (p *TipPath) Value() float64 { return p.total }

func (p *TipPath) Reset() {
	p.total = 0
	p.started = false
}
