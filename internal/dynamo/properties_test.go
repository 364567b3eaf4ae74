package dynamo_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/linsim/internal/dynamo"
	"github.com/san-kum/linsim/internal/linalg"
)

var _ = Describe("Simulate", func() {
	var (
		op   linalg.Matrix
		opts dynamo.Options
	)

	BeforeEach(func() {
		op = linalg.Matrix{
			{0.5, 0.4, 0.6},
			{0.2, 0.2, 0.3},
			{0.3, 0.4, 0.1},
		}
		opts = dynamo.DefaultOptions()
	})

	Context("with zero cycles", func() {
		It("returns only the initial state", func() {
			res, err := dynamo.Simulate(op, linalg.Vector{0.2, 0.3, 0.5}, 0, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Trajectory).To(HaveLen(1))
			Expect(res.Trajectory[0]).To(Equal(linalg.Vector{0.2, 0.3, 0.5}))
		})
	})

	Context("with a column-stochastic operator", func() {
		BeforeEach(func() {
			opts.ValidateStochastic = true
		})

		It("keeps every state a distribution", func() {
			res, err := dynamo.Simulate(op, linalg.Vector{1, 0, 0}, 60, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Trajectory).To(HaveLen(61))
			for _, x := range res.Trajectory {
				Expect(x.Sum()).To(BeNumerically("~", 1, 1e-9))
				for _, p := range x {
					Expect(p).To(BeNumerically(">=", 0))
				}
			}
		})

		It("rejects a perturbed operator before stepping", func() {
			op[1][2] += 0.1
			res, err := dynamo.Simulate(op, linalg.Vector{1, 0, 0}, 60, opts)
			Expect(err).To(MatchError(dynamo.ErrInvalidStochasticInput))
			Expect(res).To(BeNil())
		})

		It("settles on the stationary distribution", func() {
			opts.ConvergenceTolerance = 1e-12
			opts.ConvergenceWindow = 5
			res, err := dynamo.Simulate(op, linalg.Vector{0, 0, 1}, 200, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Converged).To(BeTrue())

			final := res.Trajectory.Final()
			next := make(linalg.Vector, len(final))
			op.MulVec(next, final)
			Expect(next.MaxAbsDiff(final)).To(BeNumerically("<", 1e-10))
		})
	})

	Context("with a dimension mismatch", func() {
		It("fails with ErrDimensionMismatch", func() {
			_, err := dynamo.Simulate(linalg.Matrix{{0.8, 0.1}, {0.2, 0.9}}, linalg.Vector{0.2, 0.3, 0.5}, 1, opts)
			Expect(err).To(MatchError(dynamo.ErrDimensionMismatch))
		})
	})

	Context("when a state overflows", func() {
		It("halts at the first non-finite step", func() {
			growth := linalg.Matrix{{1e150, 0}, {0, 1}}
			_, err := dynamo.Simulate(growth, linalg.Vector{1, 1}, 10, opts)
			Expect(err).To(MatchError(dynamo.ErrNonFinite))

			var simErr *dynamo.SimulationError
			Expect(err).To(BeAssignableToTypeOf(simErr))
			simErr = err.(*dynamo.SimulationError)
			Expect(simErr.Step).To(Equal(3))
			Expect(math.IsInf(simErr.State[0], 1)).To(BeTrue())
		})
	})
})
