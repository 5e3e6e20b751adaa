package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"specwiz/internal/steps"
)

var stepLabels = map[steps.Step]string{
	steps.StepTemplate:     "Template",
	steps.StepBasics:       "Basics",
	steps.StepTechStack:    "Tech Stack",
	steps.StepRequirements: "Requirements",
	steps.StepFeatures:     "Features",
	steps.StepPages:        "Pages",
	steps.StepAPI:          "API",
	steps.StepReview:       "Review",
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	crumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	crumbActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212"))

	crumbSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

// breadcrumb renders the step sequence with the cursor highlighted.
func breadcrumb(current steps.Step) string {
	parts := make([]string, 0, len(steps.Sequence))
	for i, step := range steps.Sequence {
		label := fmt.Sprintf("%d.%s", i+1, stepLabels[step])
		if step == current {
			parts = append(parts, crumbActiveStyle.Render(label))
		} else {
			parts = append(parts, crumbStyle.Render(label))
		}
	}
	return strings.Join(parts, crumbSepStyle.Render(" > "))
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("New Project"))
	b.WriteString("\n")
	b.WriteString(breadcrumb(m.ctrl.CurrentStep()))
	b.WriteString("\n\n")

	switch {
	case m.created != nil:
		b.WriteString(successStyle.Render(fmt.Sprintf("Project %q created.", m.created.Name)))
		b.WriteString(fmt.Sprintf("\n\nID: %s\n", m.created.ID))
		b.WriteString(helpStyle.Render("Press any key to exit."))

	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Working...")

	default:
		if m.errMsg != "" {
			b.WriteString(errStyle.Render(m.errMsg))
			b.WriteString("\n\n")
		}
		if m.form != nil {
			b.WriteString(m.form.View())
		}
		b.WriteString(helpStyle.Render("esc back - alt+1..8 jump to step - ctrl+c quit"))
	}

	b.WriteString("\n")
	return b.String()
}
