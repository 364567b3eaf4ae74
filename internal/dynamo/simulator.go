package dynamo

import (
	"fmt"
	"math"

	"github.com/san-kum/linsim/internal/linalg"
)

type Simulator struct {
	op        linalg.Matrix
	opts      Options
	observers []Observer
	metrics   []Metric
}

// New returns a simulator for op. The operator is copied, so later changes
// to the caller's matrix do not affect runs.
func New(op linalg.Matrix, opts Options) *Simulator {
	return &Simulator{
		op:        op.Clone(),
		opts:      opts,
		observers: make([]Observer, 0),
		metrics:   make([]Metric, 0),
	}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }
func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }

// Simulate runs op from x0 for the given number of cycles.
func Simulate(op linalg.Matrix, x0 linalg.Vector, cycles int, opts Options) (*Result, error) {
	return New(op, opts).Run(x0, cycles)
}

// Run computes x(k+1) = T·x(k) for k in [0, cycles) and returns all
// cycles+1 states. All inputs are validated before the first step; once
// stepping starts the only failure is a non-finite state, reported as a
// *SimulationError at the step where it first appears.
func (s *Simulator) Run(x0 linalg.Vector, cycles int) (*Result, error) {
	if err := s.validate(x0, cycles); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	n := len(x0)
	traj := make(Trajectory, 0, cycles+1)

	x := x0.Clone()
	traj = append(traj, x)
	s.notify(0, x)

	for k := 0; k < cycles; k++ {
		next := make(linalg.Vector, n)
		s.op.MulVec(next, x)

		if !next.IsFinite() {
			return nil, &SimulationError{Step: k + 1, State: next, Wrapped: ErrNonFinite}
		}

		traj = append(traj, next)
		s.notify(k+1, next)
		x = next
	}

	result := &Result{
		Trajectory:  traj,
		Steps:       cycles,
		Equilibrium: -1,
		Metrics:     make(map[string]float64, len(s.metrics)),
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	if s.opts.Round {
		result.Display = traj.Rounded(s.opts.Places)
	}

	if s.opts.ConvergenceTolerance > 0 {
		result.Equilibrium, result.Converged = DetectEquilibrium(traj, s.opts.ConvergenceTolerance, s.opts.ConvergenceWindow)
	}

	return result, nil
}

func (s *Simulator) notify(step int, x linalg.Vector) {
	for _, m := range s.metrics {
		m.OnStep(step, x)
	}
	for _, obs := range s.observers {
		obs.OnStep(step, x)
	}
}

func (s *Simulator) validate(x0 linalg.Vector, cycles int) error {
	if cycles < 0 {
		return fmt.Errorf("cycles %d: %w", cycles, ErrInvalidStepCount)
	}
	if err := s.opts.validate(); err != nil {
		return err
	}
	if err := validateShape(s.op, x0); err != nil {
		return err
	}
	if !s.op.IsFinite() {
		return fmt.Errorf("operator: %w", ErrNonFinite)
	}
	if !x0.IsFinite() {
		return fmt.Errorf("initial state: %w", ErrNonFinite)
	}
	if s.opts.ValidateStochastic {
		return ValidateStochastic(s.op, x0, s.opts.epsilon())
	}
	return nil
}

func (o Options) validate() error {
	if o.Round && o.Places < 0 {
		return fmt.Errorf("places %d must be non-negative: %w", o.Places, ErrInvalidOptions)
	}
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return fmt.Errorf("epsilon %g must be finite and non-negative: %w", o.Epsilon, ErrInvalidOptions)
	}
	if o.ConvergenceTolerance < 0 || math.IsNaN(o.ConvergenceTolerance) || math.IsInf(o.ConvergenceTolerance, 0) {
		return fmt.Errorf("convergence tolerance %g must be finite and non-negative: %w", o.ConvergenceTolerance, ErrInvalidOptions)
	}
	if o.ConvergenceTolerance > 0 && o.ConvergenceWindow < 1 {
		return fmt.Errorf("convergence window %d must be at least 1: %w", o.ConvergenceWindow, ErrInvalidOptions)
	}
	return nil
}

func validateShape(op linalg.Matrix, x0 linalg.Vector) error {
	if !op.IsSquare() {
		return fmt.Errorf("operator %dx%d is not square: %w", op.Rows(), op.Cols(), ErrDimensionMismatch)
	}
	if op.Cols() != len(x0) {
		return fmt.Errorf("operator has %d columns, state has %d entries: %w", op.Cols(), len(x0), ErrDimensionMismatch)
	}
	return nil
}
