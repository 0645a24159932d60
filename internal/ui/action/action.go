// Package action carries component results up to the app model.
//
// Components never touch app state. They return a Cmd producing a Msg and the
// app dispatches on Msg.Source and the concrete Action type.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result emitted by a component. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg is the tea.Msg wrapping an Action with the name of its component.
type Msg struct {
	Source string
	Action Action
}

// Cmd returns a command that delivers a from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}
