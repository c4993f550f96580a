package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jb7007/subwoofer/internal/api"
	"github.com/jb7007/subwoofer/internal/domain"
)

// Exact alert strings shown by the submission flows.
const (
	alertUsernameTaken = "username already exists! try another one."
	alertSignupFailed  = "signup failed."
	alertBadLogin      = "invalid username or password."
	alertLoginFailed   = "login failed."
	alertLogFailed     = "Log failed."
	alertNetwork       = "network error or server issue."
)

// authResultMsg carries a signup or login outcome.
type authResultMsg struct {
	modal    ModalID
	username string
	res      api.Result
}

// logSubmitResultMsg carries a practice-log submission outcome.
type logSubmitResultMsg struct{ res api.Result }

// logEditResultMsg carries a PATCH or DELETE outcome from the log table.
type logEditResultMsg struct{ res api.Result }

// logsFetchedMsg carries the authoritative log list after a re-fetch.
type logsFetchedMsg struct {
	logs []domain.LogEntry
	res  api.Result
}

// recentLogsMsg carries the dashboard's recent-activity slice.
type recentLogsMsg struct {
	logs []domain.LogEntry
	res  api.Result
}

// statsMsg carries the dashboard's aggregate stats.
type statsMsg struct {
	stats *domain.DashboardStats
	res   api.Result
}

// logoutMsg signals that the session has ended, regardless of whether the
// server acknowledged it.
type logoutMsg struct{ res api.Result }

// logoutCmd ends the session server-side and drops the persisted cookies, so
// the next run starts unauthenticated even if the request failed.
func logoutCmd(state *SharedState) tea.Cmd {
	return func() tea.Msg {
		res := state.Client.Logout(context.Background())
		if state.Jar != nil {
			if err := state.Jar.Clear(); err != nil {
				state.Observer.OnWarning("could not clear saved session: " + err.Error())
			}
		}
		return logoutMsg{res: res}
	}
}

// failureAlert implements the three-way failure branch every submission flow
// shares: a transport or parse fault gets the generic network message, a
// recognized status gets its specific message, anything else gets the server
// message or the flow's fallback.
func failureAlert(res api.Result, specific map[int]string, fallback string) string {
	if res.Err != nil {
		return alertNetwork
	}
	if msg, ok := specific[res.Status]; ok {
		return msg
	}
	if msg := res.Message(); msg != "" {
		return msg
	}
	return fallback
}

func signupAlert(res api.Result) string {
	return failureAlert(res, map[int]string{api.StatusConflict: alertUsernameTaken}, alertSignupFailed)
}

func loginAlert(res api.Result) string {
	return failureAlert(res, map[int]string{api.StatusUnauthorized: alertBadLogin}, alertLoginFailed)
}

func logAlert(res api.Result) string {
	return failureAlert(res, nil, alertLogFailed)
}

// fetchLogsCmd re-fetches the authoritative log list. Submission flows run it
// only after the mutation has succeeded; views never render the submitted
// payload directly.
func fetchLogsCmd(state *SharedState) tea.Cmd {
	return func() tea.Msg {
		logs, res := state.Client.FetchLogs(context.Background())
		return logsFetchedMsg{logs: logs, res: res}
	}
}

func fetchRecentCmd(state *SharedState) tea.Cmd {
	return func() tea.Msg {
		logs, res := state.Client.RecentLogs(context.Background())
		return recentLogsMsg{logs: logs, res: res}
	}
}

func fetchStatsCmd(state *SharedState) tea.Cmd {
	return func() tea.Msg {
		stats, res := state.Client.DashboardStats(context.Background())
		return statsMsg{stats: stats, res: res}
	}
}

// fetchPiecesCmd loads the piece picklist for a modal. Failure degrades to an
// empty list; the modal opens either way.
func fetchPiecesCmd(state *SharedState, id ModalID) tea.Cmd {
	return func() tea.Msg {
		pieces, res := state.Client.FetchPieces(context.Background())
		if !res.OK {
			return piecesLoadedMsg{id: id, failed: true}
		}
		return piecesLoadedMsg{id: id, pieces: pieces}
	}
}
