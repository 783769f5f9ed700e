package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spamlens/spamlens/internal/core"
)

// chatModel is the view model for the assistant panel
type chatModel struct {
	controller *core.ChatController

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
}

func newChatModel(controller *core.ChatController) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Type a message... (enter to send)"
	ti.CharLimit = 2048
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))

	return chatModel{
		controller: controller,
		input:      ti,
		spinner:    sp,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m chatModel) Update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpWidth := msg.Width - 10
		if vpWidth < 20 {
			vpWidth = 20
		}
		vpHeight := msg.Height - 12
		if vpHeight < 5 {
			vpHeight = 5
		}
		if !m.ready {
			m.viewport = viewport.New(vpWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = vpWidth
			m.viewport.Height = vpHeight
		}
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			// Blank input and sends while a reply is pending are no-ops in
			// the controller; clear the compose field only when it accepted
			text := strings.TrimSpace(m.input.Value())
			if text != "" && !m.controller.Pending() {
				m.controller.Send(text)
				m.input.SetValue("")
				m.refreshTranscript()
			}
			return m, nil
		}

	case chatUpdatedMsg:
		// Scroll-to-latest is a pure side effect of transcript growth
		m.refreshTranscript()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(formatTranscript(m.controller.Transcript(), m.viewport.Width))
	m.viewport.GotoBottom()
}

func formatTranscript(turns []core.ChatTurn, width int) string {
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteString("\n")
		}
		if turn.Sender == core.SenderUser {
			b.WriteString(userTurnStyle.Render("You: "))
		} else {
			b.WriteString(botTurnStyle.Render("Assistant: "))
		}
		b.WriteString(wrap.Render(turn.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func (m chatModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Spam Assistant"))
	b.WriteString("\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	if m.controller.Pending() {
		b.WriteString(m.spinner.View() + " Thinking...\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n" + hintStyle.Render("enter send • tab classifier • ctrl+o sign out • ctrl+c quit"))
	return paneStyle.Render(b.String())
}
