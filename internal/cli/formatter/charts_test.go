package formatter

import (
	"testing"

	"github.com/jb7007/subwoofer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProgress_Bounds(t *testing.T) {
	out := stripANSI(RenderProgress(1.5, 8))
	assert.Contains(t, out, "100%")

	out = stripANSI(RenderProgress(-0.2, 8))
	assert.Contains(t, out, "0%")
}

func TestRenderDailyGauge(t *testing.T) {
	out := stripANSI(RenderDailyGauge(domain.DailyGauge{TotalToday: 75, Target: 60}, 20))
	assert.Contains(t, out, "TODAY")
	assert.Contains(t, out, "1 hour and 15 minutes")
	assert.Contains(t, out, "60 minute target")
}

func TestRenderDailyGauge_ZeroShowsSentinel(t *testing.T) {
	out := stripANSI(RenderDailyGauge(domain.DailyGauge{TotalToday: 0, Target: 60}, 20))
	assert.Contains(t, out, "Nothing logged yet.")
}

func TestRenderSeries_EmptyData(t *testing.T) {
	out := stripANSI(RenderSeries("This Week", domain.ChartSeries{}, 40))
	assert.Contains(t, out, "No data yet.")
}

func TestRenderSeries_BarsAndAverage(t *testing.T) {
	s := domain.ChartSeries{
		X:      []string{"Mon", "Tue", "Wed"},
		Y:      []float64{30, 60, 60},
		AvgArr: []float64{21.4, 21.4, 21.4},
	}
	out := stripANSI(RenderSeries("This Week", s, 40))

	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Wed")
	assert.Contains(t, out, "avg 21.4 min/day")
}

func TestRenderCharts_SkipsMissingSubObjects(t *testing.T) {
	var warnings []string
	warn := func(msg string) { warnings = append(warnings, msg) }

	stats := &domain.DashboardStats{
		Daily: &domain.DailyGauge{TotalToday: 30, Target: 60},
		// Weekly and Cumulative absent.
	}
	out := stripANSI(RenderCharts(stats, 40, warn))

	assert.Contains(t, out, "TODAY")
	assert.NotContains(t, out, "THIS WEEK")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "weekly")
	assert.Contains(t, warnings[1], "cumulative")
}

func TestRenderCharts_NilStats(t *testing.T) {
	var warnings []string
	out := RenderCharts(nil, 40, func(msg string) { warnings = append(warnings, msg) })
	assert.Empty(t, out)
	assert.Len(t, warnings, 1)
}

func TestRenderCharts_NilWarnDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		RenderCharts(&domain.DashboardStats{}, 40, nil)
	})
}
