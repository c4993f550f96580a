package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jb7007/subwoofer/internal/domain"
)

// Backend routes consumed by the client.
const (
	PathRegister       = "/register"
	PathLogin          = "/login"
	PathLogout         = "/logout"
	PathLogs           = "/api/logs"
	PathRecentLogs     = "/api/recent-logs"
	PathPieces         = "/api/stats/pieces"
	PathDashboardStats = "/api/dashboard/stats"
)

// Status codes with reserved meaning to the client.
const (
	StatusConflict     = http.StatusConflict     // duplicate username on signup
	StatusUnauthorized = http.StatusUnauthorized // invalid credentials on login
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// postJSON marshals body and issues a request with a JSON content type.
// A marshal failure is a caller bug surfaced as a parse fault so flows
// still receive the uniform Result shape.
func (c *Client) postJSON(ctx context.Context, method, path string, body any) Result {
	data, err := json.Marshal(body)
	if err != nil {
		return Result{OK: false, Status: faultStatus, Err: wrapFault(ErrParse, err)}
	}
	return c.Do(ctx, path, Options{
		Method:  method,
		Headers: jsonHeaders,
		Body:    data,
	})
}

// Register creates an account with the given credentials and the user's
// IANA timezone name.
func (c *Client) Register(ctx context.Context, username, password, timezone string) Result {
	return c.postJSON(ctx, http.MethodPost, PathRegister, map[string]string{
		"username": username,
		"password": password,
		"timezone": timezone,
	})
}

// Login authenticates with the backend. The session cookie lands in the
// client's jar.
func (c *Client) Login(ctx context.Context, username, password string) Result {
	return c.postJSON(ctx, http.MethodPost, PathLogin, map[string]string{
		"username": username,
		"password": password,
	})
}

// Logout clears the backend session.
func (c *Client) Logout(ctx context.Context) Result {
	return c.Do(ctx, PathLogout, Options{})
}

// SubmitLog creates a practice log.
func (c *Client) SubmitLog(ctx context.Context, log domain.LogSubmission) Result {
	return c.postJSON(ctx, http.MethodPost, PathLogs, log)
}

// EditLog updates the log with the given user-scoped number.
func (c *Client) EditLog(ctx context.Context, logNumber int, log domain.LogSubmission) Result {
	return c.postJSON(ctx, http.MethodPatch, fmt.Sprintf("/api/edit-log/%d", logNumber), log)
}

// DeleteLog removes the log with the given user-scoped number.
func (c *Client) DeleteLog(ctx context.Context, logNumber int) Result {
	return c.postJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/delete-log/%d", logNumber),
		map[string]int{"logNumber": logNumber})
}

// FetchLogs retrieves the authoritative log list for the current user.
func (c *Client) FetchLogs(ctx context.Context) ([]domain.LogEntry, Result) {
	res := c.Do(ctx, PathLogs, Options{})
	if !res.OK {
		return nil, res
	}
	var logs []domain.LogEntry
	if err := res.Decode(&logs); err != nil {
		return nil, Result{OK: false, Status: faultStatus, Err: wrapFault(ErrParse, err)}
	}
	return logs, res
}

// RecentLogs retrieves the recent logs used for the grouped dashboard list.
func (c *Client) RecentLogs(ctx context.Context) ([]domain.LogEntry, Result) {
	res := c.Do(ctx, PathRecentLogs, Options{})
	if !res.OK {
		return nil, res
	}
	var logs []domain.LogEntry
	if err := res.Decode(&logs); err != nil {
		return nil, Result{OK: false, Status: faultStatus, Err: wrapFault(ErrParse, err)}
	}
	return logs, res
}

// FetchPieces retrieves the distinct piece/composer list for the picklist.
func (c *Client) FetchPieces(ctx context.Context) ([]domain.Piece, Result) {
	res := c.Do(ctx, PathPieces, Options{})
	if !res.OK {
		return nil, res
	}
	var pieces []domain.Piece
	if err := res.Decode(&pieces); err != nil {
		return nil, Result{OK: false, Status: faultStatus, Err: wrapFault(ErrParse, err)}
	}
	return pieces, res
}

// DashboardStats retrieves aggregate statistics and chart series.
func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, Result) {
	res := c.Do(ctx, PathDashboardStats, Options{})
	if !res.OK {
		return nil, res
	}
	var stats domain.DashboardStats
	if err := res.Decode(&stats); err != nil {
		return nil, Result{OK: false, Status: faultStatus, Err: wrapFault(ErrParse, err)}
	}
	return &stats, res
}
