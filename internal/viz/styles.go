package viz

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	StepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Width(6).
			Align(lipgloss.Right)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Align(lipgloss.Right)

	// EquilibriumStyle marks the row where convergence was detected.
	EquilibriumStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("82"))

	SummaryLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(20)

	SummaryValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))
)
