package dynamo

import (
	"errors"
	"fmt"

	"github.com/san-kum/linsim/internal/linalg"
)

// Domain errors for simulation operations.
var (
	// ErrDimensionMismatch indicates a non-square operator or an operator
	// whose column count disagrees with the state length.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between operator and state")

	// ErrInvalidStochasticInput indicates a column or initial distribution
	// that is negative or does not sum to 1.
	ErrInvalidStochasticInput = errors.New("dynamo: invalid stochastic input")

	// ErrNonFinite indicates a NaN or Inf in the inputs or in a computed state.
	ErrNonFinite = errors.New("dynamo: non-finite value (NaN or Inf detected)")

	// ErrInvalidStepCount indicates a negative cycle count.
	ErrInvalidStepCount = errors.New("dynamo: step count must be non-negative")

	// ErrInvalidOptions indicates inconsistent rounding or convergence options.
	ErrInvalidOptions = errors.New("dynamo: invalid options")
)

// SimulationError wraps an error with the step at which it occurred.
type SimulationError struct {
	Step    int
	State   linalg.Vector
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
