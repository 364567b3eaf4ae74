package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/linsim/internal/dynamo"
)

const minColumnWidth = 10

// Table renders one row per step. places controls the printed decimals and
// equilibrium, if non-negative, highlights the matching row.
func Table(traj dynamo.Trajectory, labels []string, places, equilibrium int) string {
	n := traj.Dim()
	widths := make([]int, n)
	for i := range widths {
		widths[i] = max(minColumnWidth, len(label(labels, i))+2)
	}

	var sb strings.Builder

	header := []string{StepStyle.Render("step")}
	for i := 0; i < n; i++ {
		header = append(header, ValueStyle.Width(widths[i]).Render(label(labels, i)))
	}
	sb.WriteString(HeaderStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, header...)))
	sb.WriteString("\n")

	for k, x := range traj {
		cells := []string{StepStyle.Render(strconv.Itoa(k))}
		for i, val := range x {
			cells = append(cells, ValueStyle.Width(widths[i]).Render(strconv.FormatFloat(val, 'f', places, 64)))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if k == equilibrium {
			row = EquilibriumStyle.Render(row + "  <- equilibrium")
		}
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	return sb.String()
}

// Summary renders name/value pairs, one per line, in the given order.
func Summary(pairs ...[2]string) string {
	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteString(SummaryLabel.Render(p[0]))
		sb.WriteString(SummaryValue.Render(p[1]))
		sb.WriteString("\n")
	}
	return sb.String()
}

func label(labels []string, i int) string {
	if i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return fmt.Sprintf("x%d", i)
}
