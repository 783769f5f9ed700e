// Package tui renders the client views as a pure function of controller
// state: the forms, the classifier dashboard, and the assistant panel never
// call the gateway directly.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spamlens/spamlens/internal/core"
)

type view int

const (
	viewAuth view = iota
	viewClassifier
	viewChat
)

// App is the root TUI model wiring the views to their controllers
type App struct {
	session    *core.SessionController
	classifier *core.ClassifierController
	chat       *core.ChatController

	authView       authModel
	classifierView classifierModel
	chatView       chatModel

	active view
	width  int
	height int
}

// NewApp creates the root model. The session must already be restored.
func NewApp(session *core.SessionController, classifier *core.ClassifierController, chat *core.ChatController) *App {
	active := viewAuth
	if session.Current().Authenticated {
		active = viewClassifier
	}

	return &App{
		session:        session,
		classifier:     classifier,
		chat:           chat,
		authView:       newAuthModel(session),
		classifierView: newClassifierModel(classifier),
		chatView:       newChatModel(chat),
		active:         active,
	}
}

// Init subscribes to both controllers and starts the view blink/spinner loops
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.classifierView.Init(),
		a.chatView.Init(),
		waitForClassifier(a.classifier.Updates()),
		waitForChat(a.chat.Updates()),
	)
}

// Update handles messages and routes them to the active view
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.classifierView, cmd = a.classifierView.Update(msg)
		cmds = append(cmds, cmd)
		a.chatView, cmd = a.chatView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab":
			if a.active == viewClassifier {
				a.active = viewChat
			} else if a.active == viewChat {
				a.active = viewClassifier
			}
			return a, nil
		case "ctrl+o":
			if a.active != viewAuth {
				a.session.SignOut(context.Background())
				// Leaving the classifier view discards its request state
				a.classifier.Reset()
				a.active = viewAuth
				return a, nil
			}
		}

	case authResultMsg:
		var cmd tea.Cmd
		a.authView, cmd = a.authView.Update(msg)
		if msg.err == nil && a.session.Current().Authenticated {
			a.active = viewClassifier
		}
		return a, cmd

	case classifierUpdatedMsg:
		// Re-arm the subscription; the view reads the fresh snapshot on render
		return a, waitForClassifier(a.classifier.Updates())

	case chatUpdatedMsg:
		var cmd tea.Cmd
		a.chatView, cmd = a.chatView.Update(msg)
		return a, tea.Batch(cmd, waitForChat(a.chat.Updates()))
	}

	var cmd tea.Cmd
	switch a.active {
	case viewAuth:
		a.authView, cmd = a.authView.Update(msg)
	case viewClassifier:
		a.classifierView, cmd = a.classifierView.Update(msg)
	case viewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	}
	return a, cmd
}

// View renders the active view with the identity header
func (a *App) View() string {
	var b strings.Builder

	session := a.session.Current()
	if session.Authenticated {
		who := session.Email
		if session.Name != "" {
			who = fmt.Sprintf("%s <%s>", session.Name, session.Email)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("Signed in as "+who) + "\n")
	}

	switch a.active {
	case viewAuth:
		b.WriteString(a.authView.View())
	case viewClassifier:
		b.WriteString(a.classifierView.View())
	case viewChat:
		b.WriteString(a.chatView.View())
	}

	return b.String()
}
