package dynamo

import "github.com/san-kum/linsim/internal/linalg"

// DefaultEpsilon is the tolerance for stochastic column and distribution sums.
const DefaultEpsilon = 1e-9

// Trajectory is the ordered list of states of one run; index 0 is the
// initial state.
type Trajectory []linalg.Vector

// Final returns the last state, or nil for an empty trajectory.
func (t Trajectory) Final() linalg.Vector {
	if len(t) == 0 {
		return nil
	}
	return t[len(t)-1]
}

// Rounded returns a display copy with every entry rounded to places decimals.
func (t Trajectory) Rounded(places int) Trajectory {
	out := make(Trajectory, len(t))
	for i, x := range t {
		out[i] = x.Round(places)
	}
	return out
}

// Component returns the time series of state entry i.
func (t Trajectory) Component(i int) []float64 {
	series := make([]float64, len(t))
	for k, x := range t {
		if i < len(x) {
			series[k] = x[i]
		}
	}
	return series
}

// Dim returns the state dimension, or 0 for an empty trajectory.
func (t Trajectory) Dim() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Observer is notified of every state appended to the trajectory, including
// the initial one. Observers must not modify x.
type Observer interface {
	OnStep(step int, x linalg.Vector)
}

// Metric summarizes a run as a single number. Metrics are reset at the
// start of every run and observe every state, including the initial one.
type Metric interface {
	Observer
	Name() string
	Value() float64
	Reset()
}

type Options struct {
	// Round enables the display copy in Result.Display.
	Round  bool
	Places int

	ValidateStochastic bool
	// Epsilon bounds stochastic sum errors. Zero means DefaultEpsilon.
	Epsilon float64

	// ConvergenceTolerance enables equilibrium detection when positive.
	ConvergenceTolerance float64
	ConvergenceWindow    int
}

func DefaultOptions() Options {
	return Options{
		Places:            3,
		Epsilon:           DefaultEpsilon,
		ConvergenceWindow: 3,
	}
}

func (o Options) epsilon() float64 {
	if o.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return o.Epsilon
}

type Result struct {
	Trajectory Trajectory
	// Display is the rounded copy of Trajectory, nil unless Options.Round.
	Display Trajectory
	Steps   int
	// Equilibrium is the step at which convergence was first observed, or -1.
	Equilibrium int
	Converged   bool
	Metrics     map[string]float64
}
