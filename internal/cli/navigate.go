package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages. Views emit these as commands; the root model handles
// them by manipulating the view stack.

type pushViewMsg struct{ view View }

type popViewMsg struct{}

type replaceViewMsg struct{ view View }

// refreshViewMsg is broadcast to every live view after the owned log slice
// changes, so each view re-renders from the same data.
type refreshViewMsg struct{}

// alertMsg surfaces a transient status line at the bottom of the screen.
type alertMsg struct{ text string }

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

func alert(text string) tea.Cmd {
	return func() tea.Msg { return alertMsg{text: text} }
}
