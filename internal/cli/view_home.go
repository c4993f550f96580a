package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jb7007/subwoofer/internal/cli/formatter"
)

// homeView is the landing screen shown before authentication. The signup and
// login modals open from here via their global keys.
type homeView struct {
	state *SharedState
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *homeView) View() string {
	return "\n" + formatter.Header("Subwoofer") + "\n\n" +
		"  Track your practice sessions.\n\n" +
		"  " + formatter.Dim("Sign up or log in to get started.") + "\n"
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sign up")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log in")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
