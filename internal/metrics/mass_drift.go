package metrics

import (
	"math"

	"github.com/san-kum/linsim/internal/linalg"
)

// MassDrift tracks the largest deviation of the entry sum from its initial
// value. It stays near zero for column-stochastic operators.
type MassDrift struct {
	name    string
	initial float64
	drift   float64
	samples int
}

func NewMassDrift() *MassDrift {
	return &MassDrift{name: "mass_drift"}
}

func (m *MassDrift) Name() string { return m.name }

func (m *MassDrift) OnStep(step int, x linalg.Vector) {
	sum := x.Sum()
	if m.samples == 0 {
		m.initial = sum
	}
	m.samples++
	if d := math.Abs(sum - m.initial); d > m.drift {
		m.drift = d
	}
}

func (m *MassDrift) Value() float64 { return m.drift }

func (m *MassDrift) Reset() {
	m.initial = 0
	m.drift = 0
	m.samples = 0
}
