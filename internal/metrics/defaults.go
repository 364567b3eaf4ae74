package metrics

import "github.com/san-kum/linsim/internal/dynamo"

// Defaults returns the metrics attached to every CLI run.
func Defaults() []dynamo.Metric {
	return []dynamo.Metric{
		NewMassDrift(),
		NewDistribution(dynamo.DefaultEpsilon),
		NewStepChange(),
	}
}
