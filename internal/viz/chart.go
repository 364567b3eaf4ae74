package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/linsim/internal/dynamo"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Red,
	asciigraph.Blue,
}

// maxSeries caps the number of state entries drawn in one chart.
const maxSeries = 6

// Chart plots every state entry of traj against the step index.
func Chart(traj dynamo.Trajectory, labels []string, caption string, height, width int) string {
	if len(traj) == 0 || traj.Dim() == 0 {
		return ""
	}

	n := traj.Dim()
	if n > maxSeries {
		n = maxSeries
	}

	data := make([][]float64, n)
	legends := make([]string, n)
	for i := 0; i < n; i++ {
		data[i] = traj.Component(i)
		legends[i] = label(labels, i)
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(seriesColors[:n]...),
		asciigraph.SeriesLegends(legends...),
	)
}
