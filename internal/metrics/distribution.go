package metrics

import (
	"math"

	"github.com/san-kum/linsim/internal/linalg"
)

// Distribution reports the share of visited states that are probability
// distributions: no entry below -tol and an entry sum within tol of 1.
// A Markov chain started from a distribution scores 1; a growing or
// rotating linear system usually scores 0 after its first step.
type Distribution struct {
	name  string
	tol   float64
	valid int
	total int
}

func NewDistribution(tol float64) *Distribution {
	return &Distribution{name: "distribution", tol: tol}
}

func (d *Distribution) Name() string { return d.name }

func (d *Distribution) OnStep(step int, x linalg.Vector) {
	d.total++
	if isDistribution(x, d.tol) {
		d.valid++
	}
}

// Value is 0 before any state has been observed.
func (d *Distribution) Value() float64 {
	if d.total == 0 {
		return 0
	}
	return float64(d.valid) / float64(d.total)
}

func (d *Distribution) Reset() {
	d.valid = 0
	d.total = 0
}

func isDistribution(x linalg.Vector, tol float64) bool {
	if len(x) == 0 {
		return false
	}
	for _, p := range x {
		if p < -tol {
			return false
		}
	}
	return math.Abs(x.Sum()-1) <= tol
}
