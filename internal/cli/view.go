package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each screen in the TUI.
type ViewID int

const (
	ViewHome ViewID = iota
	ViewDashboard
	ViewLogs
)

// View is the interface all screens implement. It extends tea.Model with
// navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}
