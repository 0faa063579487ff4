package arm

import (
	"fmt"
	"image/color"
	"strings"
)

// Mode selects how arm bases are placed.
type Mode int

const (
	// ModeChain places each arm's base at the previous arm's tip.
	ModeChain Mode = iota
	// ModeIndependent rotates every arm about the shared origin.
	ModeIndependent
)

func (m Mode) String() string {
	switch m {
	case ModeChain:
		return "chain"
	case ModeIndependent:
		return "independent"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "chain":
		return ModeChain, nil
	case "independent":
		return ModeIndependent, nil
	default:
		return ModeChain, fmt.Errorf("unknown arm mode %q", s)
	}
}

// BuildSpecs derives one spec per colour. Arms nearer the origin are wider,
// longer and slower.
func BuildSpecs(colors []color.RGBA, p Params) []Spec {
	k := len(colors)
	specs := make([]Spec, k)
	for i, c := range colors {
		ancestorWeight := float64(k - i)
		specs[i] = Spec{
			Color:         c,
			Width:         ancestorWeight*p.WidthMultiply + p.WidthMinimum,
			Length:        ancestorWeight*p.LengthMultiply + p.LengthMinimum,
			SpeedWeight:   float64(i + 1),
			SpeedExponent: p.SpeedExponent,
			SpeedMultiply: p.SpeedMultiply,
		}
	}
	return specs
}

// ComputeChain poses the chain with its first base at the origin.
func ComputeChain(t float64, specs []Spec) []Pose {
	return ComputeChainFrom(Vec2{}, t, specs)
}

// ComputeChainFrom poses the chain with its first base at origin. For every
// i > 0, poses[i].Base == poses[i-1].Tip.
func ComputeChainFrom(origin Vec2, t float64, specs []Spec) []Pose {
	poses := make([]Pose, len(specs))
	base := origin
	for i, s := range specs {
		tip := base.Add(Polar(s.Length, s.Rotation(t)))
		poses[i] = Pose{Base: base, Tip: tip, Width: s.Width, Color: s.Color}
		base = tip
	}
	return poses
}

// ComputeIndependent poses every arm from the same origin.
func ComputeIndependent(origin Vec2, t float64, specs []Spec) []Pose {
	poses := make([]Pose, len(specs))
	for i, s := range specs {
		poses[i] = Pose{
			Base:  origin,
			Tip:   origin.Add(Polar(s.Length, s.Rotation(t))),
			Width: s.Width,
			Color: s.Color,
		}
	}
	return poses
}

func Compute(mode Mode, origin Vec2, t float64, specs []Spec) []Pose {
	if mode == ModeIndependent {
		return ComputeIndependent(origin, t, specs)
	}
	return ComputeChainFrom(origin, t, specs)
}

// Reach bounds the distance of every tip from the origin in either mode,
// ignoring end caps.
func Reach(specs []Spec) float64 {
	total := 0.0
	for _, s := range specs {
		total += s.Length
	}
	return total
}

// ReachFor is the tight tip bound for mode: the summed lengths for a chain,
// the longest arm otherwise.
func ReachFor(mode Mode, specs []Spec) float64 {
	if mode != ModeIndependent {
		return Reach(specs)
	}
	longest := 0.0
	for _, s := range specs {
		if s.Length > longest {
			longest = s.Length
		}
	}
	return longest
}

// Extent is ReachFor plus the largest cap radius.
func Extent(mode Mode, specs []Spec) float64 {
	maxW := 0.0
	for _, s := range specs {
		if s.Width > maxW {
			maxW = s.Width
		}
	}
	return ReachFor(mode, specs) + maxW/2
}
