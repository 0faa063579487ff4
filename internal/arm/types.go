package arm

import (
	"fmt"
	"image/color"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Polar returns the vector of the given length pointing at angle radians.
func Polar(length, angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{length * c, length * s}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

// Spec holds the fixed parameters of one arm.
type Spec struct {
	Color         color.RGBA
	Width         float64
	Length        float64
	SpeedWeight   float64
	SpeedExponent float64
	SpeedMultiply float64
}

// Rate is the angular speed in radians per clock unit.
func (s Spec) Rate() float64 {
	return math.Pow(s.SpeedWeight, s.SpeedExponent) * s.SpeedMultiply
}

func (s Spec) Rotation(t float64) float64 {
	return t * s.Rate()
}

// IsValid reports whether every numeric field is finite.
func (s Spec) IsValid() bool {
	for _, v := range []float64{s.Width, s.Length, s.SpeedWeight, s.SpeedExponent, s.SpeedMultiply} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Pose is the geometry of one arm at one instant.
type Pose struct {
	Base  Vec2
	Tip   Vec2
	Width float64
	Color color.RGBA
}

// Params are the multipliers used to derive a spec table from a colour list.
type Params struct {
	WidthMultiply  float64
	WidthMinimum   float64
	LengthMultiply float64
	LengthMinimum  float64
	SpeedExponent  float64
	SpeedMultiply  float64
}

func DefaultParams() Params {
	return Params{
		WidthMultiply:  3.0,
		WidthMinimum:   3.0,
		LengthMultiply: 8.0,
		LengthMinimum:  16.0,
		SpeedExponent:  1.3,
		SpeedMultiply:  0.01,
	}
}
