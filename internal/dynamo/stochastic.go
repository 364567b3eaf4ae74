package dynamo

import (
	"fmt"
	"math"

	"github.com/san-kum/linsim/internal/linalg"
)

// ValidateStochastic checks that op is column-stochastic and x0 is a
// probability distribution, both within eps. eps must be positive and
// finite; shape and finiteness are checked before the stochastic rules.
func ValidateStochastic(op linalg.Matrix, x0 linalg.Vector, eps float64) error {
	if !(eps > 0) || math.IsInf(eps, 1) {
		return fmt.Errorf("stochastic tolerance %g must be positive and finite: %w", eps, ErrInvalidOptions)
	}
	if err := validateShape(op, x0); err != nil {
		return err
	}
	if !op.IsFinite() || !x0.IsFinite() {
		return fmt.Errorf("stochastic input: %w", ErrNonFinite)
	}

	for i, row := range op {
		for j, a := range row {
			if a < 0 {
				return fmt.Errorf("operator entry (%d,%d) = %g is negative: %w", i, j, a, ErrInvalidStochasticInput)
			}
		}
	}
	for j, sum := range op.ColumnSums() {
		if math.Abs(sum-1) > eps {
			return fmt.Errorf("operator column %d sums to %g: %w", j, sum, ErrInvalidStochasticInput)
		}
	}

	for i, p := range x0 {
		if p < 0 {
			return fmt.Errorf("initial state entry %d = %g is negative: %w", i, p, ErrInvalidStochasticInput)
		}
	}
	if sum := x0.Sum(); math.Abs(sum-1) > eps {
		return fmt.Errorf("initial state sums to %g: %w", sum, ErrInvalidStochasticInput)
	}

	return nil
}
