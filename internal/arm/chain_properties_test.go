package arm_test

import (
	"image/color"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/armchain/internal/arm"
)

var palette = []color.RGBA{
	{255, 0, 0, 255},
	{255, 128, 0, 255},
	{255, 255, 0, 255},
	{0, 255, 0, 255},
	{0, 0, 255, 255},
	{128, 0, 255, 255},
}

var _ = Describe("ComputeChain", func() {
	var specs []arm.Spec

	BeforeEach(func() {
		specs = arm.BuildSpecs(palette, arm.DefaultParams())
	})

	DescribeTable("returns exactly K continuous poses",
		func(k int, t float64) {
			poses := arm.ComputeChain(t, specs[:k])
			Expect(poses).To(HaveLen(k))
			for i := 1; i < k; i++ {
				Expect(poses[i].Base).To(Equal(poses[i-1].Tip))
			}
		},
		Entry("single arm at rest", 1, 0.0),
		Entry("three arms mid-turn", 3, 123.0),
		Entry("all arms, negative clock", 6, -987.5),
		Entry("all arms, large clock", 6, 1e7),
	)

	It("points every arm along +X at t=0", func() {
		poses := arm.ComputeChain(0, specs)
		for i, p := range poses {
			Expect(p.Tip.Sub(p.Base)).To(Equal(arm.Vec2{X: specs[i].Length, Y: 0}))
		}
	})

	It("is deterministic", func() {
		a := arm.ComputeChain(314.159, specs)
		b := arm.ComputeChain(314.159, specs)
		Expect(a).To(Equal(b))
	})

	It("keeps every tip within reach", func() {
		reach := arm.Reach(specs)
		for t := 0.0; t < 2000; t += 37 {
			poses := arm.ComputeChain(t, specs)
			Expect(poses[len(poses)-1].Tip.Len()).To(BeNumerically("<=", reach+1e-9))
		}
	})

	It("turns outer arms faster than inner arms", func() {
		Expect(specs[len(specs)-1].Rate()).To(BeNumerically(">", specs[0].Rate()))
		Expect(specs[1].Rate()).To(BeNumerically("~", math.Pow(2, 1.3)*0.01, 1e-12))
	})
})
