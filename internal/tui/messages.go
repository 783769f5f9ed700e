package tui

import tea "github.com/charmbracelet/bubbletea"

// authResultMsg carries the outcome of a sign-in or sign-up attempt
type authResultMsg struct {
	err error
}

// classifierUpdatedMsg signals that the classification controller changed state
type classifierUpdatedMsg struct{}

// chatUpdatedMsg signals that the chat transcript or pending flag changed
type chatUpdatedMsg struct{}

// waitForClassifier re-arms the subscription to classifier state changes
func waitForClassifier(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-updates
		return classifierUpdatedMsg{}
	}
}

// waitForChat re-arms the subscription to chat state changes
func waitForChat(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-updates
		return chatUpdatedMsg{}
	}
}
