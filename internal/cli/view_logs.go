package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jb7007/subwoofer/internal/cli/formatter"
	"github.com/jb7007/subwoofer/internal/domain"
)

const maxEditMinutes = 1440 // one day

// editDraft holds the in-place edit state for a single row. The pre-edit
// entry is retained so Cancel and Escape restore the row exactly as it was.
type editDraft struct {
	snapshot      domain.LogEntry
	duration      textinput.Model
	notes         textinput.Model
	instrumentIdx int
	focus         int // 0 duration, 1 instrument, 2 notes
}

// clampEditedDuration applies the edit validation rules. Empty input retains
// the prior value with no alert; non-numeric or non-positive input clamps to
// 1; anything above a day clamps to the day cap. The returned alert text is
// empty when no clamping occurred.
func clampEditedDuration(input string, prior int) (minutes int, alertText string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return prior, ""
	}
	n, err := strconv.Atoi(input)
	if err != nil || n <= 0 {
		return 1, "duration must be a positive number; set to 1."
	}
	if n > maxEditMinutes {
		return maxEditMinutes, fmt.Sprintf("duration capped at %d minutes.", maxEditMinutes)
	}
	return n, ""
}

// logsView renders the full practice-log table with sorting, row editing,
// and deletion. Only one row can be edited at a time; while an edit is in
// progress the other rows' affordances are hidden.
type logsView struct {
	state      *SharedState
	cursor     int
	editing    *editDraft
	confirming bool // delete confirmation pending for the cursor row
	loading    bool
}

func newLogsView(state *SharedState) *logsView {
	return &logsView{state: state, loading: true}
}

func (v *logsView) Init() tea.Cmd {
	return fetchLogsCmd(v.state)
}

func (v *logsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.loading = false
		v.clampCursor()
		return v, nil

	case logEditResultMsg:
		if !msg.res.OK {
			// The edit stays open so the user can correct and retry.
			return v, alert(logAlert(msg.res))
		}
		v.editing = nil
		return v, fetchLogsCmd(v.state)

	case tea.KeyMsg:
		if v.editing != nil {
			return v.updateEditing(msg)
		}
		if v.confirming {
			return v.updateConfirming(msg)
		}
		return v.updateBrowsing(msg)
	}

	if v.editing != nil {
		var cmds []tea.Cmd
		var cmd tea.Cmd
		v.editing.duration, cmd = v.editing.duration.Update(msg)
		cmds = append(cmds, cmd)
		v.editing.notes, cmd = v.editing.notes.Update(msg)
		cmds = append(cmds, cmd)
		return v, tea.Batch(cmds...)
	}
	return v, nil
}

func (v *logsView) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	logs := v.state.Logs()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(logs)-1 {
			v.cursor++
		}
	case "1":
		v.state.SortBy(domain.SortByID)
	case "2":
		v.state.SortBy(domain.SortByDate)
	case "3":
		v.state.SortBy(domain.SortByDuration)
	case "4":
		v.state.SortBy(domain.SortByInstrument)
	case "5":
		v.state.SortBy(domain.SortByPiece)
	case "r":
		v.loading = true
		return v, fetchLogsCmd(v.state)
	case "e":
		if v.cursor < len(logs) {
			v.startEdit(logs[v.cursor])
		}
	case "d":
		if v.cursor < len(logs) {
			v.confirming = true
		}
	}
	return v, nil
}

func (v *logsView) updateConfirming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	logs := v.state.Logs()
	switch msg.String() {
	case "y", "Y":
		v.confirming = false
		if v.cursor >= len(logs) {
			return v, nil
		}
		target := logs[v.cursor].ID
		state := v.state
		return v, func() tea.Msg {
			return logEditResultMsg{res: state.Client.DeleteLog(context.Background(), target)}
		}
	default:
		// Declining leaves the row untouched.
		v.confirming = false
	}
	return v, nil
}

func (v *logsView) startEdit(entry domain.LogEntry) {
	dur := textinput.New()
	dur.CharLimit = 5
	dur.Width = 6
	dur.SetValue(strconv.Itoa(entry.Duration))
	dur.Focus()

	notes := textinput.New()
	notes.CharLimit = 500
	notes.Width = 40
	notes.SetValue(entry.Notes)

	idx := 0
	for i, code := range domain.InstrumentCodes {
		if code == entry.Instrument {
			idx = i
			break
		}
	}

	v.editing = &editDraft{
		snapshot:      entry,
		duration:      dur,
		notes:         notes,
		instrumentIdx: idx,
	}
}

func (v *logsView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := v.editing

	switch msg.String() {
	case "esc":
		// Discard the draft; the row renders from the retained snapshot's
		// source entry, unchanged.
		v.editing = nil
		return v, nil

	case "tab":
		d.focus = (d.focus + 1) % 3
		v.applyFocus()
		return v, nil

	case "shift+tab":
		d.focus = (d.focus + 2) % 3
		v.applyFocus()
		return v, nil

	case "left", "right":
		if d.focus == 1 {
			delta := 1
			if msg.String() == "left" {
				delta = len(domain.InstrumentCodes) - 1
			}
			d.instrumentIdx = (d.instrumentIdx + delta) % len(domain.InstrumentCodes)
			return v, nil
		}

	case "enter":
		return v.saveEdit()
	}

	var cmd tea.Cmd
	switch d.focus {
	case 0:
		d.duration, cmd = d.duration.Update(msg)
	case 2:
		d.notes, cmd = d.notes.Update(msg)
	}
	return v, cmd
}

func (v *logsView) applyFocus() {
	d := v.editing
	d.duration.Blur()
	d.notes.Blur()
	switch d.focus {
	case 0:
		d.duration.Focus()
	case 2:
		d.notes.Focus()
	}
}

func (v *logsView) saveEdit() (tea.Model, tea.Cmd) {
	d := v.editing
	minutes, alertText := clampEditedDuration(d.duration.Value(), d.snapshot.Duration)

	var piece, composer *string
	if d.snapshot.Piece != "" {
		p := d.snapshot.Piece
		piece = &p
	}
	if d.snapshot.Composer != "" {
		c := d.snapshot.Composer
		composer = &c
	}

	sub := domain.NewLogSubmission(time.Now(), minutes,
		domain.InstrumentCodes[d.instrumentIdx], piece, composer, d.notes.Value())
	target := d.snapshot.ID
	state := v.state

	save := func() tea.Msg {
		return logEditResultMsg{res: state.Client.EditLog(context.Background(), target, sub)}
	}
	if alertText != "" {
		return v, tea.Batch(alert(alertText), save)
	}
	return v, save
}

func (v *logsView) clampCursor() {
	if n := len(v.state.Logs()); v.cursor >= n && n > 0 {
		v.cursor = n - 1
	} else if n == 0 {
		v.cursor = 0
	}
}

func (v *logsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading practice logs...")
	}

	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Practice Log") + "\n\n")
	b.WriteString(formatter.RenderLogTable(v.state.Logs(), v.cursor))

	field, asc := v.state.SortOrder()
	dir := "desc"
	if asc {
		dir = "asc"
	}
	b.WriteString("\n" + formatter.Dim(fmt.Sprintf("sorted by %s (%s)", field, dir)) + "\n")
	total := domain.TotalMinutes(v.state.Logs())
	b.WriteString(formatter.Dim("total practice: "+formatter.FormatDuration(total, true)) + "\n")

	switch {
	case v.confirming:
		logs := v.state.Logs()
		if v.cursor < len(logs) {
			b.WriteString("\n" + formatter.StyleRed.Render(
				fmt.Sprintf("Delete log #%d? (y/n)", logs[v.cursor].ID)) + "\n")
		}
	case v.editing != nil:
		d := v.editing
		b.WriteString("\n" + formatter.Bold(fmt.Sprintf("Editing log #%d", d.snapshot.ID)) + "\n")
		b.WriteString("  Duration:   " + d.duration.View() + "\n")
		instrument := domain.InstrumentName(domain.InstrumentCodes[d.instrumentIdx])
		if d.focus == 1 {
			instrument = formatter.StyleHeader.Render("‹ " + instrument + " ›")
		}
		b.WriteString("  Instrument: " + instrument + "\n")
		b.WriteString("  Notes:      " + d.notes.View() + "\n")
	}

	return b.String()
}

func (v *logsView) ID() ViewID    { return ViewLogs }
func (v *logsView) Title() string { return "Logs" }

func (v *logsView) ShortHelp() []key.Binding {
	if v.editing != nil {
		// Other rows' edit affordances are hidden while a draft is open.
		return []key.Binding{
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "row")),
		key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "sort")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}
