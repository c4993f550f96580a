package cli

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jb7007/subwoofer/internal/api"
	"github.com/jb7007/subwoofer/internal/domain"
	"github.com/jb7007/subwoofer/internal/teatest"
)

func TestDashboard_SectionsLoadIndependently(t *testing.T) {
	// Stats fail, recent activity succeeds: the recent section still renders
	// and the failure is only a warning.
	mux := http.NewServeMux()
	mux.HandleFunc(api.PathRecentLogs, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{
			"id": 1, "local_date": "Aug 30, 2026", "utc_date": "2026-08-30T10:00:00",
			"instrument": "cello", "duration": 25, "piece": "Suite No. 1", "composer": "Bach",
		}})
	})
	mux.HandleFunc(api.PathDashboardStats, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "boom"})
	})
	state, _ := serverState(t, mux)
	rec := state.Observer.(*warnRecorder)

	d := teatest.New(t, newDashboardView(state), teatest.WithSize(100, 30))
	d.DrainInit()

	view := stripANSI(d.View())
	assert.Contains(t, view, "Suite No. 1 by Bach")
	assert.NotEmpty(t, rec.warnings)
}

func TestDashboard_MetricsFillTheirSlots(t *testing.T) {
	state := testState(&warnRecorder{})
	v := newDashboardView(state)

	piece := "Clair de Lune"
	v.applyMetrics(&domain.DashboardStats{
		CommonInstrument: "piano",
		TotalMinutes:     125,
		AverageMinutes:   41.7,
		CommonPiece:      &piece,
	})

	assert.Equal(t, "Piano", v.surface.Text(metricTopInstrument))
	assert.Equal(t, "2 hours and 5 minutes", v.surface.Text(metricTotalMins))
	assert.Equal(t, "41.7 minutes", v.surface.Text(metricAvgMins))
	assert.Equal(t, "Clair de Lune", v.surface.Text(metricCommonPiece))
}

func TestDashboard_LateStatsAfterRefreshStillRender(t *testing.T) {
	// A stats response arriving after a refresh was requested must still be
	// applied, never dropped or crashed on.
	state := testState(&warnRecorder{})
	v := newDashboardView(state)
	d := teatest.New(t, v)

	model, _ := v.Update(statsMsg{
		stats: &domain.DashboardStats{TotalMinutes: 30},
		res:   api.Result{OK: true, Status: 200},
	})
	dv, ok := model.(*dashboardView)
	require.True(t, ok)
	assert.True(t, dv.statsLoaded)
	assert.Contains(t, stripANSI(dv.View()), "30 minutes")
	_ = d
}
