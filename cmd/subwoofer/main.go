package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/jb7007/subwoofer/internal/api"
	"github.com/jb7007/subwoofer/internal/cli"
	"github.com/jb7007/subwoofer/internal/config"
	"github.com/jb7007/subwoofer/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settingsPath, err := config.SettingsPath()
	if err != nil {
		return fmt.Errorf("locating settings: %w", err)
	}
	settings, err := config.Load(settingsPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if _, statErr := os.Stat(settingsPath); os.IsNotExist(statErr) {
		// First run: materialize the defaults so the user has a file to edit.
		if err := config.Save(settingsPath, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write %s: %v\n", settingsPath, err)
		}
	}

	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("locating data directory: %w", err)
	}
	st, err := store.Open(filepath.Join(dir, "subwoofer.db"))
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}
	defer st.Close()

	jar, err := store.NewJar(st, settings.Endpoint)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}

	var observer api.Observer = api.NoopObserver{}
	if settings.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}

	client := api.NewClient(settings.Endpoint, jar, observer)
	state := cli.NewSharedState(client, *settings, st, observer)
	state.Jar = jar

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(state, interactive).Execute()
}
