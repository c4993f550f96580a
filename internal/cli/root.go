package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "subwoofer" command. Running it with no
// subcommand starts the TUI against the configured backend.
func NewRootCmd(state *SharedState, interactive func() bool) *cobra.Command {
	root := &cobra.Command{
		Use:   "subwoofer",
		Short: "Practice session tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive != nil && !interactive() {
				return fmt.Errorf("subwoofer needs an interactive terminal")
			}
			return runTUI(state)
		},
	}

	root.PersistentFlags().StringVar(&state.Settings.Endpoint, "endpoint",
		state.Settings.Endpoint, "backend base URL")

	root.AddCommand(newLogoutCmd(state))
	return root
}

// newLogoutCmd drops the persisted session without starting the TUI.
func newLogoutCmd(state *SharedState) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if state.Jar == nil {
				return nil
			}
			if err := state.Jar.Clear(); err != nil {
				return fmt.Errorf("clearing saved session: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func runTUI(state *SharedState) error {
	p := tea.NewProgram(newAppModel(state), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
