package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jb7007/subwoofer/internal/cli/formatter"
)

// appModel is the root bubbletea Model. It manages the view stack, the modal
// layer, and the transient alert line.
type appModel struct {
	state     *SharedState
	viewStack []View
	modals    *modalManager
	alertText string
	quitting  bool
}

func newAppModel(state *SharedState) appModel {
	modals := newModalManager(state)
	for _, desc := range defaultModals(state) {
		modals.Register(desc)
	}

	m := appModel{state: state, modals: modals}
	if state.LoggedIn {
		m.viewStack = []View{newDashboardView(state)}
	} else {
		m.viewStack = []View{newHomeView(state)}
	}
	return m
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	if !m.state.LoggedIn {
		// Probe the persisted session: a successful fetch means the saved
		// cookie is still valid and we can skip the login screen.
		cmds = append(cmds, fetchLogsCmd(m.state))
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case alertMsg:
		m.alertText = msg.text
		return m, nil

	case authResultMsg:
		return m.handleAuthResult(msg)

	case logSubmitResultMsg:
		if !msg.res.OK {
			return m, tea.Batch(alert(logAlert(msg.res)), m.modals.ReopenForm())
		}
		// Close first, then re-fetch: the views render only the server's
		// authoritative list, never the submitted payload.
		return m, tea.Batch(m.modals.Close(ModalLog), fetchLogsCmd(m.state))

	case logsFetchedMsg:
		if msg.res.Err != nil {
			return m, alert(alertNetwork)
		}
		if !msg.res.OK {
			// The startup probe lands here when no saved session exists.
			if m.state.LoggedIn {
				m.state.Observer.OnWarning("log list fetch rejected")
			}
			return m, nil
		}
		m.state.SetLogs(msg.logs)
		if !m.state.LoggedIn {
			// Saved session is still valid; go straight to the dashboard.
			m.state.LoggedIn = true
			return m, tea.Batch(replaceView(newDashboardView(m.state)), refreshViews())
		}
		return m, refreshViews()

	case logoutMsg:
		m.state.LoggedIn = false
		m.state.Username = ""
		m.state.SetLogs(nil)
		home := newHomeView(m.state)
		m.viewStack = []View{home}
		return m, home.Init()

	// Navigation messages from views.
	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast so every stacked view re-renders from the shared state.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Modal layer consumes animation frames, picklist results, and input
	// while a modal is up.
	if cmd, consumed := m.modals.Update(msg); consumed {
		return m, cmd
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	if !msg.res.OK {
		text := signupAlert(msg.res)
		if msg.modal == ModalLogin {
			text = loginAlert(msg.res)
		}
		// The modal stays open so the user can correct their input.
		return m, tea.Batch(alert(text), m.modals.ReopenForm())
	}

	m.state.LoggedIn = true
	m.state.Username = msg.username

	// Navigate only when the payload names a destination; a redirect-less
	// success closes the dialog and leaves the current screen in place.
	if msg.res.Redirect() == "" {
		return m, tea.Batch(m.modals.Close(msg.modal), fetchLogsCmd(m.state))
	}
	return m, tea.Batch(m.modals.Close(msg.modal),
		replaceView(newDashboardView(m.state)), fetchLogsCmd(m.state))
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// A fresh key dismisses the previous alert.
	m.alertText = ""

	if m.modals.Active() {
		cmd, _ := m.modals.Update(msg)
		return m, cmd
	}

	// Views with an open text input get every key, including globals.
	if v := m.activeView(); viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "g":
		if m.state.LoggedIn && m.activeView().ID() != ViewLogs {
			return m, pushView(newLogsView(m.state))
		}

	case "o":
		if m.state.LoggedIn {
			return m, logoutCmd(m.state)
		}
	}

	if msg.Type == tea.KeyEsc {
		if len(m.viewStack) > 1 {
			return m, popView()
		}
		return m, nil
	}

	// Modal open triggers.
	if id, ok := m.modals.byKey[msg.String()]; ok && m.modalAllowed(id) {
		return m, m.modals.Open(id)
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// modalAllowed gates modal triggers on auth state: credentials modals before
// login, the practice-log modal after.
func (m appModel) modalAllowed(id ModalID) bool {
	if id == ModalLog {
		return m.state.LoggedIn
	}
	return !m.state.LoggedIn
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	if m.modals.Active() {
		width, height := m.state.Width, m.state.Height
		if width <= 0 {
			width = 80
		}
		if height <= 0 {
			height = 24
		}
		overlay := m.modals.View(width, height)
		if m.alertText != "" {
			overlay += "\n" + formatter.StyleRed.Render(m.alertText)
		}
		return overlay
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to avoid stale line artifacts from the
	// renderer's line diffing in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("subwoofer")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}
	if m.state.LoggedIn && m.state.Username != "" {
		header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(m.state.Username) + formatter.Dim("]")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	bar := strings.Join(hints, "  ")
	if m.alertText != "" {
		bar = formatter.StyleRed.Render(m.alertText) + "\n" + bar
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput reports whether the active view owns an open text input
// and must receive every key, bypassing global shortcuts.
func viewCapturesInput(v View) bool {
	lv, ok := v.(*logsView)
	return ok && (lv.editing != nil || lv.confirming)
}
