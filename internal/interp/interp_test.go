package interp_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numlab/internal/grid"
	"github.com/san-kum/numlab/internal/interp"
)

var _ = Describe("Lagrange", func() {
	It("reproduces a quadratic exactly", func() {
		nodes := []float64{-1, 0, 2}
		values := make([]float64, len(nodes))
		for i, x := range nodes {
			values[i] = 3*x*x - x + 1
		}

		l, err := interp.NewLagrange(nodes, values)
		Expect(err).NotTo(HaveOccurred())

		for _, x := range grid.Linspace(-1, 2, 13) {
			Expect(l.At(x)).To(BeNumerically("~", 3*x*x-x+1, 1e-10))
		}
	})

	It("passes through every node", func() {
		nodes := []float64{0, 1, 2, 3.5}
		values := []float64{2, -1, 0.5, 4}

		l, err := interp.NewLagrange(nodes, values)
		Expect(err).NotTo(HaveOccurred())

		got := l.Eval(nodes)
		for i := range nodes {
			Expect(got[i]).To(BeNumerically("~", values[i], 1e-9))
		}
	})

	It("rejects duplicate and mismatched nodes", func() {
		_, err := interp.NewLagrange([]float64{0, 1, 1}, []float64{1, 2, 3})
		Expect(err).To(MatchError(interp.ErrBadNodes))

		_, err = interp.NewLagrange([]float64{0, 1}, []float64{1})
		Expect(err).To(MatchError(interp.ErrBadNodes))

		_, err = interp.NewLagrange(nil, nil)
		Expect(err).To(MatchError(interp.ErrBadNodes))
	})
})

var _ = Describe("LinearSpline", func() {
	It("interpolates linearly inside each segment", func() {
		s, err := interp.NewLinearSpline([]float64{0, 1, 3}, []float64{0, 2, -2})
		Expect(err).NotTo(HaveOccurred())

		Expect(s.At(0.5)).To(BeNumerically("~", 1.0, 1e-12))
		Expect(s.At(2)).To(BeNumerically("~", 0.0, 1e-12))
		Expect(s.At(1)).To(BeNumerically("~", 2.0, 1e-12))
	})

	It("returns NaN outside the node range", func() {
		s, err := interp.NewLinearSpline([]float64{0, 1}, []float64{0, 1})
		Expect(err).NotTo(HaveOccurred())

		Expect(math.IsNaN(s.At(-0.1))).To(BeTrue())
		Expect(math.IsNaN(s.At(1.1))).To(BeTrue())
	})

	It("rejects unsorted nodes", func() {
		_, err := interp.NewLinearSpline([]float64{0, 2, 1}, []float64{1, 2, 3})
		Expect(err).To(MatchError(interp.ErrBadNodes))
	})
})

var _ = Describe("CubicHermite", func() {
	It("passes through every node", func() {
		nodes := grid.Linspace(0, math.Pi, 9)
		values := make([]float64, len(nodes))
		for i, x := range nodes {
			values[i] = math.Sin(x)
		}

		s, err := interp.NewCubicHermite(nodes, values)
		Expect(err).NotTo(HaveOccurred())

		for i := range nodes {
			Expect(s.At(nodes[i])).To(BeNumerically("~", values[i], 1e-12))
		}
	})

	It("tracks a smooth function between nodes", func() {
		nodes := grid.Linspace(0, math.Pi, 17)
		values := make([]float64, len(nodes))
		for i, x := range nodes {
			values[i] = math.Sin(x)
		}

		s, err := interp.NewCubicHermite(nodes, values)
		Expect(err).NotTo(HaveOccurred())

		// endpoints have flat derivative estimates, so check the middle
		for _, x := range grid.Linspace(0.5, math.Pi-0.5, 23) {
			Expect(s.At(x)).To(BeNumerically("~", math.Sin(x), 1e-2))
		}
	})

	It("beats the linear spline on curved data", func() {
		nodes := grid.Linspace(0, math.Pi, 9)
		values := make([]float64, len(nodes))
		for i, x := range nodes {
			values[i] = math.Sin(x)
		}

		lin, err := interp.NewLinearSpline(nodes, values)
		Expect(err).NotTo(HaveOccurred())
		cub, err := interp.NewCubicHermite(nodes, values)
		Expect(err).NotTo(HaveOccurred())

		x := math.Pi / 2.0 * 1.1 // off-node, mid-domain
		linErr := math.Abs(lin.At(x) - math.Sin(x))
		cubErr := math.Abs(cub.At(x) - math.Sin(x))
		Expect(cubErr).To(BeNumerically("<", linErr))
	})

	It("returns NaN outside the node range", func() {
		s, err := interp.NewCubicHermite([]float64{0, 1, 2}, []float64{0, 1, 0})
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(s.At(2.5))).To(BeTrue())
	})
})
