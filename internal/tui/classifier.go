package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spamlens/spamlens/internal/core"
)

const indicatorBarWidth = 20

// classifierModel is the view model for the classifier dashboard. Everything
// rendered here is derived from the controller snapshot.
type classifierModel struct {
	controller *core.ClassifierController

	textarea textarea.Model
	spinner  spinner.Model
	width    int
}

func newClassifierModel(controller *core.ClassifierController) classifierModel {
	ta := textarea.New()
	ta.Placeholder = "Paste email content here..."
	ta.CharLimit = 8192
	ta.SetHeight(8)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))

	return classifierModel{
		controller: controller,
		textarea:   ta,
		spinner:    sp,
	}
}

func (m classifierModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m classifierModel) Update(msg tea.Msg) (classifierModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 12
		if w < 20 {
			w = 20
		}
		m.textarea.SetWidth(w)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			// Submit is a no-op while a request is pending or on blank input;
			// the controller enforces both
			m.controller.Submit(m.textarea.Value())
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m classifierModel) View() string {
	state := m.controller.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Email Classifier"))
	b.WriteString("\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")

	switch state.Status {
	case core.StatusPending:
		b.WriteString(m.spinner.View() + " Classifying...")
	case core.StatusFailed:
		b.WriteString(errorStyle.Render(state.Err))
	case core.StatusSucceeded:
		b.WriteString(renderResult(state.Result))
	default:
		b.WriteString(hintStyle.Render("Press ctrl+s to classify the email."))
	}

	b.WriteString("\n\n" + hintStyle.Render("ctrl+s classify • tab chat • ctrl+o sign out • ctrl+c quit"))
	return paneStyle.Render(b.String())
}

// renderResult draws the verdict, the probability stat, and the four
// service-provided indicator bars
func renderResult(result *core.ClassificationResult) string {
	var b strings.Builder

	if result.IsSpam {
		b.WriteString(spamStyle.Render("■ SPAM"))
	} else {
		b.WriteString(safeStyle.Render("■ SAFE"))
	}
	b.WriteString(fmt.Sprintf("   Spam probability: %s\n\n", result.ProbabilityPercent()))

	bars := []struct {
		label string
		value float64
	}{
		{"Urgency", result.Indicators.Urgency},
		{"Links", result.Indicators.Links},
		{"Grammar", result.Indicators.Grammar},
		{"Formatting", result.Indicators.Formatting},
	}
	for _, bar := range bars {
		b.WriteString(labelStyle.Render(bar.label))
		b.WriteString(renderBar(bar.value))
		b.WriteString(fmt.Sprintf(" %3.0f%%\n", bar.value*100))
	}

	return b.String()
}

func renderBar(value float64) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value*indicatorBarWidth + 0.5)
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", indicatorBarWidth-filled))
}
