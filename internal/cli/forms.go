package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jb7007/subwoofer/internal/cli/formatter"
	"github.com/jb7007/subwoofer/internal/domain"
)

func subwooferHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// pieceSeparator joins a picklist entry's title and composer in the option
// value, so one selection carries both parts.
const pieceSeparator = ":::"

// resolvePiece applies the two-source extraction rule for a log submission.
// A picklist selection wins; otherwise the typed title is used, with the
// composer defaulting to "Unknown" when a title is given without one. When
// neither source yields a title, both results are nil.
func resolvePiece(selected, typedTitle, typedComposer string) (piece, composer *string) {
	if selected != "" {
		title, comp, _ := strings.Cut(selected, pieceSeparator)
		return &title, &comp
	}
	typedTitle = strings.TrimSpace(typedTitle)
	if typedTitle == "" {
		return nil, nil
	}
	typedComposer = strings.TrimSpace(typedComposer)
	if typedComposer == "" {
		typedComposer = "Unknown"
	}
	return &typedTitle, &typedComposer
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number of minutes")
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// defaultModals is the single wiring table for every modal in the app.
func defaultModals(state *SharedState) []ModalDescriptor {
	enter := fadeAnim(3, 40*time.Millisecond)
	exit := fadeAnim(2, 40*time.Millisecond)

	return []ModalDescriptor{
		{
			ID:       ModalSignup,
			Title:    "Sign Up",
			OpenKey:  "s",
			CloseKey: "ctrl+w",
			Enter:    enter,
			Exit:     exit,
			NewForm:  newSignupForm,
		},
		{
			ID:       ModalLogin,
			Title:    "Log In",
			OpenKey:  "l",
			CloseKey: "ctrl+w",
			Enter:    enter,
			Exit:     exit,
			NewForm:  newLoginForm,
		},
		{
			ID:        ModalLog,
			Title:     "Log Practice",
			OpenKey:   "n",
			CloseKey:  "ctrl+w",
			CancelKey: "ctrl+x",
			Enter:     enter,
			Exit:      exit,
			NewForm:   newLogForm,
			Populate:  true,
		},
	}
}

func newSignupForm(state *SharedState, _ []domain.Piece, prior any) (*huh.Form, tea.Cmd, any) {
	f, ok := prior.(*credentialFields)
	if !ok {
		f = &credentialFields{}
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&f.username).
				Validate(validateRequired("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(validateRequired("password")),
		),
	).WithTheme(subwooferHuhTheme()).WithShowHelp(false)

	return form, func() tea.Msg {
		res := state.Client.Register(context.Background(), f.username, f.password, localTimezone())
		return authResultMsg{modal: ModalSignup, username: f.username, res: res}
	}, f
}

func newLoginForm(state *SharedState, _ []domain.Piece, prior any) (*huh.Form, tea.Cmd, any) {
	f, ok := prior.(*credentialFields)
	if !ok {
		f = &credentialFields{}
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&f.username).
				Validate(validateRequired("username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(validateRequired("password")),
		),
	).WithTheme(subwooferHuhTheme()).WithShowHelp(false)

	return form, func() tea.Msg {
		res := state.Client.Login(context.Background(), f.username, f.password)
		return authResultMsg{modal: ModalLogin, username: f.username, res: res}
	}, f
}

type credentialFields struct {
	username string
	password string
}

type logFields struct {
	duration   string
	instrument string
	selected   string // picklist value, "Title:::Composer" or empty
	title      string
	composer   string
	notes      string
}

// Keys under which the log form's last-used values are persisted.
const (
	defaultKeyDuration   = "log.duration"
	defaultKeyInstrument = "log.instrument"
)

func newLogForm(state *SharedState, pieces []domain.Piece, prior any) (*huh.Form, tea.Cmd, any) {
	f, ok := prior.(*logFields)
	if !ok {
		f = &logFields{
			duration:   strconv.Itoa(state.Settings.DailyTargetMinutes),
			instrument: state.Settings.DefaultInstrument,
		}
		// Last-used values from the local store beat the settings defaults.
		if state.Store != nil {
			if v, ok, err := state.Store.GetDefault(defaultKeyDuration); err == nil && ok {
				f.duration = v
			}
			if v, ok, err := state.Store.GetDefault(defaultKeyInstrument); err == nil && ok {
				f.instrument = v
			}
		}
	}

	instrumentOpts := make([]huh.Option[string], 0, len(domain.InstrumentCodes))
	for _, code := range domain.InstrumentCodes {
		instrumentOpts = append(instrumentOpts, huh.NewOption(domain.InstrumentName(code), code))
	}

	pieceOpts := []huh.Option[string]{huh.NewOption("(new piece)", "")}
	for _, p := range pieces {
		label := p.Title
		if p.Composer != "" {
			label += " by " + p.Composer
		}
		pieceOpts = append(pieceOpts, huh.NewOption(label, p.Title+pieceSeparator+p.Composer))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder(strconv.Itoa(state.Settings.DailyTargetMinutes)).
				Value(&f.duration).
				Validate(validatePositiveInt),
			huh.NewSelect[string]().
				Title("Instrument").
				Options(instrumentOpts...).
				Value(&f.instrument),
			huh.NewSelect[string]().
				Title("Piece").
				Options(pieceOpts...).
				Value(&f.selected),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Piece Title (if new)").
				Placeholder("optional").
				Value(&f.title),
			huh.NewInput().
				Title("Composer").
				Placeholder("optional").
				Value(&f.composer),
			huh.NewInput().
				Title("Notes").
				Placeholder("optional").
				Value(&f.notes),
		),
	).WithTheme(subwooferHuhTheme()).WithShowHelp(false)

	return form, func() tea.Msg {
		minutes, err := strconv.Atoi(strings.TrimSpace(f.duration))
		if err != nil || minutes <= 0 {
			minutes = 1
		}
		piece, composer := resolvePiece(f.selected, f.title, f.composer)
		sub := domain.NewLogSubmission(time.Now(), minutes, f.instrument, piece, composer, f.notes)
		res := state.Client.SubmitLog(context.Background(), sub)
		if res.OK {
			rememberLogDefaults(state, minutes, f.instrument)
		}
		return logSubmitResultMsg{res: res}
	}, f
}

// rememberLogDefaults persists the accepted submission's duration and
// instrument, so the next log form starts from them.
func rememberLogDefaults(state *SharedState, minutes int, instrument string) {
	if state.Store == nil {
		return
	}
	if err := state.Store.SetDefault(defaultKeyDuration, strconv.Itoa(minutes)); err != nil {
		state.Observer.OnWarning("could not save form defaults: " + err.Error())
		return
	}
	if err := state.Store.SetDefault(defaultKeyInstrument, instrument); err != nil {
		state.Observer.OnWarning("could not save form defaults: " + err.Error())
	}
}

// localTimezone reports the client's IANA zone name for signup, falling back
// to the zone abbreviation when no database name is available.
func localTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}
	name, _ := time.Now().Zone()
	return name
}
