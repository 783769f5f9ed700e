package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spamlens/spamlens/internal/core"
)

const (
	modeSignIn = iota
	modeSignUp
)

// Ordered field indices for the sign-up form; sign-in uses email/password only
const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldConfirm
	fieldCount
)

// authModel is the view model for the sign-in / sign-up forms
type authModel struct {
	session *core.SessionController

	mode    int
	inputs  []textinput.Model
	focused int
	errMsg  string
	busy    bool
}

func newAuthModel(session *core.SessionController) authModel {
	inputs := make([]textinput.Model, fieldCount)

	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 64
	inputs[fieldName] = name

	email := textinput.New()
	email.Placeholder = "Email Address"
	email.CharLimit = 128
	inputs[fieldEmail] = email

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 64
	inputs[fieldPassword] = password

	confirm := textinput.New()
	confirm.Placeholder = "Confirm Password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.CharLimit = 64
	inputs[fieldConfirm] = confirm

	m := authModel{
		session: session,
		mode:    modeSignIn,
		inputs:  inputs,
		focused: fieldEmail,
	}
	m.inputs[fieldEmail].Focus()
	return m
}

// fields returns the active field indices for the current mode
func (m *authModel) fields() []int {
	if m.mode == modeSignUp {
		return []int{fieldName, fieldEmail, fieldPassword, fieldConfirm}
	}
	return []int{fieldEmail, fieldPassword}
}

func (m *authModel) focusNext(backwards bool) {
	fields := m.fields()
	pos := 0
	for i, f := range fields {
		if f == m.focused {
			pos = i
			break
		}
	}
	if backwards {
		pos = (pos - 1 + len(fields)) % len(fields)
	} else {
		pos = (pos + 1) % len(fields)
	}

	m.inputs[m.focused].Blur()
	m.focused = fields[pos]
	m.inputs[m.focused].Focus()
}

func (m *authModel) toggleMode() {
	if m.mode == modeSignIn {
		m.mode = modeSignUp
	} else {
		m.mode = modeSignIn
	}
	m.errMsg = ""
	m.inputs[m.focused].Blur()
	m.focused = m.fields()[0]
	m.inputs[m.focused].Focus()
}

// submit validates locally and dispatches the auth call as a command
func (m *authModel) submit() tea.Cmd {
	if m.busy {
		return nil
	}

	name := m.inputs[fieldName].Value()
	email := m.inputs[fieldEmail].Value()
	password := m.inputs[fieldPassword].Value()
	confirm := m.inputs[fieldConfirm].Value()
	mode := m.mode

	m.busy = true
	m.errMsg = ""

	session := m.session
	return func() tea.Msg {
		var err error
		if mode == modeSignUp {
			err = session.SignUp(context.Background(), name, email, password, confirm)
		} else {
			err = session.SignIn(context.Background(), email, password)
		}
		return authResultMsg{err: err}
	}
}

func (m authModel) Update(msg tea.Msg) (authModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focusNext(false)
			return m, nil
		case "shift+tab", "up":
			m.focusNext(true)
			return m, nil
		case "enter":
			return m, m.submit()
		case "ctrl+t":
			m.toggleMode()
			return m, nil
		}

	case authResultMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		// Success: clear the password fields, the root model switches views
		m.inputs[fieldPassword].SetValue("")
		m.inputs[fieldConfirm].SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m authModel) View() string {
	var b strings.Builder

	if m.mode == modeSignUp {
		b.WriteString(titleStyle.Render("Sign Up"))
	} else {
		b.WriteString(titleStyle.Render("Sign In"))
	}
	b.WriteString("\n")

	for _, f := range m.fields() {
		b.WriteString(m.inputs[f].View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	if m.busy {
		b.WriteString("\n" + hintStyle.Render("Checking credentials..."))
	}

	b.WriteString("\n\n" + hintStyle.Render("enter submit • tab next field • ctrl+t switch sign-in/sign-up • ctrl+c quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(paneStyle.Render(b.String()))
}
