package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jb7007/subwoofer/internal/cli/formatter"
	"github.com/jb7007/subwoofer/internal/domain"
)

// ModalID names an overlay dialog.
type ModalID string

const (
	ModalSignup ModalID = "signup"
	ModalLogin  ModalID = "login"
	ModalLog    ModalID = "log"
)

// ModalState is the lifecycle of a single modal.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpening
	ModalOpen
	ModalClosing
)

// AnimFunc drives one transition phase. It is called with the current frame
// index and returns the delay before the next frame, or done=true when the
// phase has finished. A nil AnimFunc completes the phase immediately, so the
// controller never depends on an animation collaborator being present.
type AnimFunc func(frame int) (delay time.Duration, done bool)

// fadeAnim returns an AnimFunc that runs a fixed number of frames at a fixed
// interval.
func fadeAnim(frames int, interval time.Duration) AnimFunc {
	return func(frame int) (time.Duration, bool) {
		if frame >= frames {
			return 0, true
		}
		return interval, false
	}
}

// formBuilder constructs a form for a modal, given the piece picklist (nil
// until the async fetch lands) and the bound values from the previous build.
// A nil prior starts from defaults; handing the returned values back in keeps
// the user's input across a rebuild. The tea.Cmd runs the submission flow
// when the form completes.
type formBuilder func(state *SharedState, pieces []domain.Piece, prior any) (*huh.Form, tea.Cmd, any)

// ModalDescriptor is the data-driven wiring for one modal: its open trigger,
// optional animations, and form factory. One registration routine consumes
// these, so adding a modal means adding a table entry.
type ModalDescriptor struct {
	ID        ModalID
	Title     string
	OpenKey   string // global key that opens this modal
	CloseKey  string // close control while Open; Escape always works
	CancelKey string // cancel control, same exit procedure as CloseKey
	Enter     AnimFunc
	Exit      AnimFunc
	NewForm   formBuilder
	Populate  bool // fetch the piece picklist when opening
}

// modalFrameMsg advances an open or close animation by one frame.
type modalFrameMsg struct {
	id      ModalID
	closing bool
}

// piecesLoadedMsg carries the async picklist result for a modal.
type piecesLoadedMsg struct {
	id     ModalID
	pieces []domain.Piece
	failed bool
}

type modalRect struct{ x, y, w, h int }

func (r modalRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type modalInstance struct {
	desc   ModalDescriptor
	state  ModalState
	frame  int
	form   *huh.Form
	submit tea.Cmd
	fields any // bound form values, carried across rebuilds
	pieces []domain.Piece
	rect   modalRect
}

// modalManager owns modal lifecycle for the whole app. At most one modal is
// visible at a time; its backdrop covers everything else, so open triggers
// for other modals are unreachable while one is up.
type modalManager struct {
	state       *SharedState
	descriptors map[ModalID]ModalDescriptor
	byKey       map[string]ModalID
	active      *modalInstance
}

func newModalManager(state *SharedState) *modalManager {
	return &modalManager{
		state:       state,
		descriptors: make(map[ModalID]ModalDescriptor),
		byKey:       make(map[string]ModalID),
	}
}

// Register wires one descriptor. A descriptor without a form factory is
// rejected with a warning; registration of the others proceeds regardless.
func (m *modalManager) Register(desc ModalDescriptor) {
	if desc.NewForm == nil {
		m.state.Observer.OnWarning("modal " + string(desc.ID) + " has no form; skipping registration")
		return
	}
	m.descriptors[desc.ID] = desc
	if desc.OpenKey != "" {
		m.byKey[desc.OpenKey] = desc.ID
	}
}

// State reports the lifecycle state of the given modal.
func (m *modalManager) State(id ModalID) ModalState {
	if m.active != nil && m.active.desc.ID == id {
		return m.active.state
	}
	return ModalClosed
}

// Active reports whether any modal is not Closed.
func (m *modalManager) Active() bool { return m.active != nil }

// Open starts the open transition for id. Opening a modal that is already
// Opening, Open, or Closing is a no-op, as is opening while another modal
// holds the screen.
func (m *modalManager) Open(id ModalID) tea.Cmd {
	if m.active != nil {
		return nil
	}
	desc, ok := m.descriptors[id]
	if !ok {
		return nil
	}

	inst := &modalInstance{desc: desc, state: ModalOpening}
	// Fresh form each open: defaults restored, prior input discarded.
	inst.form, inst.submit, inst.fields = desc.NewForm(m.state, nil, nil)
	m.active = inst

	cmds := []tea.Cmd{inst.form.Init()}
	if desc.Populate {
		cmds = append(cmds, fetchPiecesCmd(m.state, id))
	}
	if cmd := m.advance(false); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Close starts the exit transition. Every exit path (close control, cancel,
// backdrop click, Escape, successful submit) funnels through here.
func (m *modalManager) Close(id ModalID) tea.Cmd {
	inst := m.active
	if inst == nil || inst.desc.ID != id || inst.state != ModalOpen {
		return nil
	}
	inst.state = ModalClosing
	inst.frame = 0
	inst.form = nil // typed values are cleared on exit
	inst.fields = nil
	return m.advance(true)
}

// ReopenForm rebuilds the active modal's form after a rejected submission.
// The dialog stays up for another attempt with the bound values retained, so
// the user corrects their input rather than retyping it.
func (m *modalManager) ReopenForm() tea.Cmd {
	inst := m.active
	if inst == nil || inst.state == ModalClosing {
		return nil
	}
	inst.form, inst.submit, inst.fields = inst.desc.NewForm(m.state, inst.pieces, inst.fields)
	return inst.form.Init()
}

// advance runs one animation frame for the current phase, falling back to an
// immediate transition when the descriptor carries no animation.
func (m *modalManager) advance(closing bool) tea.Cmd {
	inst := m.active
	if inst == nil {
		return nil
	}
	fn := inst.desc.Enter
	if closing {
		fn = inst.desc.Exit
	}
	if fn == nil {
		m.finish(closing)
		return nil
	}
	delay, done := fn(inst.frame)
	if done {
		m.finish(closing)
		return nil
	}
	inst.frame++
	id := inst.desc.ID
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return modalFrameMsg{id: id, closing: closing}
	})
}

func (m *modalManager) finish(closing bool) {
	if closing {
		m.active = nil
		return
	}
	m.active.state = ModalOpen
}

// Update handles messages while a modal is active. The bool result reports
// whether the message was consumed.
func (m *modalManager) Update(msg tea.Msg) (tea.Cmd, bool) {
	inst := m.active
	if inst == nil {
		return nil, false
	}

	switch msg := msg.(type) {
	case modalFrameMsg:
		if msg.id != inst.desc.ID {
			return nil, true
		}
		return m.advance(msg.closing), true

	case piecesLoadedMsg:
		if msg.id != inst.desc.ID || inst.state == ModalClosing {
			return nil, true
		}
		if msg.failed {
			m.state.Observer.OnWarning("piece list unavailable; continuing with an empty picklist")
		}
		inst.pieces = msg.pieces
		// Rebuild so the picklist carries the fetched options. The bound
		// values ride along, so anything typed while the fetch was in
		// flight survives a slow backend.
		inst.form, inst.submit, inst.fields = inst.desc.NewForm(m.state, msg.pieces, inst.fields)
		return inst.form.Init(), true

	case tea.KeyMsg:
		// Close control, cancel control, and Escape share one exit path.
		s := msg.String()
		if msg.Type == tea.KeyEsc ||
			(s != "" && (s == inst.desc.CloseKey || s == inst.desc.CancelKey)) {
			if inst.state == ModalOpen {
				return m.Close(inst.desc.ID), true
			}
			return nil, true
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			// Only the backdrop itself dismisses: a click inside the dialog
			// bounds is routed to the form, everything outside is backdrop.
			if inst.state == ModalOpen && !inst.rect.contains(msg.X, msg.Y) {
				return m.Close(inst.desc.ID), true
			}
		}
	}

	if inst.form == nil || inst.state == ModalClosing {
		return nil, true
	}

	form, cmd := inst.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		inst.form = f
	}
	if inst.form.State == huh.StateCompleted {
		submit := inst.submit
		inst.form = nil
		inst.submit = nil
		return tea.Batch(cmd, submit), true
	}
	return cmd, true
}

// View renders the active modal centered over a blank backdrop and records
// the dialog bounds for backdrop-click detection.
func (m *modalManager) View(width, height int) string {
	inst := m.active
	if inst == nil {
		return ""
	}

	body := ""
	if inst.form != nil {
		body = inst.form.View()
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorHeader).
		Padding(1, 2).
		Render(formatter.Header(inst.desc.Title) + "\n\n" + body)

	w := lipgloss.Width(box)
	h := lipgloss.Height(box)
	inst.rect = modalRect{x: (width - w) / 2, y: (height - h) / 2, w: w, h: h}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
