package cli

import (
	"github.com/jb7007/subwoofer/internal/api"
	"github.com/jb7007/subwoofer/internal/config"
	"github.com/jb7007/subwoofer/internal/domain"
	"github.com/jb7007/subwoofer/internal/store"
)

// SharedState is passed by pointer to every view. It owns the log slice and
// its sort order; views read through accessors and never mutate the slice
// directly. Mutations happen here and are followed by a refreshViewMsg
// broadcast from the root model.
type SharedState struct {
	Client   *api.Client
	Settings config.Settings
	Store    *store.Store
	Jar      *store.Jar
	Observer api.Observer

	Width  int
	Height int

	LoggedIn bool
	Username string

	logs      []domain.LogEntry
	sortField domain.SortField
	sortAsc   bool
}

// NewSharedState seeds the sort order to newest-first by date, matching the
// server's default ordering.
func NewSharedState(client *api.Client, settings config.Settings, st *store.Store, obs api.Observer) *SharedState {
	if obs == nil {
		obs = api.NoopObserver{}
	}
	return &SharedState{
		Client:    client,
		Settings:  settings,
		Store:     st,
		Observer:  obs,
		sortField: domain.SortByDate,
		sortAsc:   false,
	}
}

// SetLogs replaces the owned slice and re-applies the current sort.
func (s *SharedState) SetLogs(logs []domain.LogEntry) {
	s.logs = domain.SortLogs(logs, s.sortField, s.sortAsc)
}

// Logs returns the owned slice in its current sort order. Callers must treat
// the result as read-only.
func (s *SharedState) Logs() []domain.LogEntry { return s.logs }

// SortBy sorts by the given field. Selecting the field already in effect
// flips the direction; selecting a new field starts ascending.
func (s *SharedState) SortBy(field domain.SortField) {
	if field == s.sortField {
		s.sortAsc = !s.sortAsc
	} else {
		s.sortField = field
		s.sortAsc = true
	}
	s.logs = domain.SortLogs(s.logs, s.sortField, s.sortAsc)
}

func (s *SharedState) SortOrder() (domain.SortField, bool) { return s.sortField, s.sortAsc }
