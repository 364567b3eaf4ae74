package metrics

import "github.com/san-kum/linsim/internal/linalg"

// StepChange is the mean of max|x(k) - x(k-1)| over all steps.
type StepChange struct {
	name    string
	prev    linalg.Vector
	sum     float64
	samples int
}

func NewStepChange() *StepChange {
	return &StepChange{name: "mean_step_change"}
}

func (c *StepChange) Name() string {
	return c.name
}

func (c *StepChange) OnStep(step int, x linalg.Vector) {
	if c.prev != nil {
		c.sum += x.MaxAbsDiff(c.prev)
		c.samples++
	}
	c.prev = x.Clone()
}

func (c *StepChange) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *StepChange) Reset() {
	c.prev = nil
	c.sum = 0
	c.samples = 0
}
