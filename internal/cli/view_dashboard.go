package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jb7007/subwoofer/internal/cli/formatter"
	"github.com/jb7007/subwoofer/internal/domain"
)

// Metric slot ids on the dashboard surface.
const (
	metricTopInstrument   = "top-instrument"
	metricTotalMins       = "total-mins"
	metricTotalMinsHeader = "total-mins-header"
	metricAvgMins         = "avg-mins"
	metricAvgMinsHeader   = "avg-mins-header"
	metricCommonPiece     = "common-piece"
)

// dashboardView shows summary metrics, charts, and recent activity. Its two
// data sources load independently; each section renders as soon as its fetch
// lands, and a failure in one never blanks the other.
type dashboardView struct {
	state *SharedState

	recent       []domain.LogEntry
	recentLoaded bool

	stats       *domain.DashboardStats
	statsLoaded bool

	surface *formatter.MapSurface
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state: state,
		surface: formatter.NewMapSurface(
			metricTopInstrument,
			metricTotalMins,
			metricTotalMinsHeader,
			metricAvgMins,
			metricAvgMinsHeader,
			metricCommonPiece,
		),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return tea.Batch(fetchRecentCmd(v.state), fetchStatsCmd(v.state))
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recentLogsMsg:
		v.recentLoaded = true
		if msg.res.OK {
			v.recent = msg.logs
		} else {
			v.state.Observer.OnWarning("recent activity unavailable")
		}
		return v, nil

	case statsMsg:
		v.statsLoaded = true
		if msg.res.OK && msg.stats != nil {
			v.stats = msg.stats
			v.applyMetrics(msg.stats)
		} else {
			v.state.Observer.OnWarning("dashboard stats unavailable")
		}
		return v, nil

	case refreshViewMsg:
		return v, tea.Batch(fetchRecentCmd(v.state), fetchStatsCmd(v.state))
	}
	return v, nil
}

func (v *dashboardView) applyMetrics(stats *domain.DashboardStats) {
	metrics := map[string]string{
		metricTotalMinsHeader: "Total Practice",
		metricAvgMinsHeader:   "Daily Average",
		metricTotalMins:       formatter.FormatDuration(stats.TotalMinutes, false),
		metricAvgMins:         fmt.Sprintf("%.1f minutes", stats.AverageMinutes),
	}
	if stats.CommonInstrument != "" {
		metrics[metricTopInstrument] = domain.InstrumentName(stats.CommonInstrument)
	}
	if stats.CommonPiece != nil && *stats.CommonPiece != "" {
		metrics[metricCommonPiece] = *stats.CommonPiece
	}
	formatter.RenderMetrics(v.surface, metrics)
}

func (v *dashboardView) renderMetrics() string {
	rows := [][2]string{
		{v.surface.Text(metricTotalMinsHeader), v.surface.Text(metricTotalMins)},
		{v.surface.Text(metricAvgMinsHeader), v.surface.Text(metricAvgMins)},
		{"Top Instrument", v.surface.Text(metricTopInstrument)},
		{"Most Practiced", v.surface.Text(metricCommonPiece)},
	}

	var b strings.Builder
	for _, row := range rows {
		if row[0] == "" || row[1] == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim(row[0]+":"), row[1]))
	}
	return b.String()
}

func (v *dashboardView) View() string {
	width := v.state.Width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Dashboard") + "\n\n")

	if !v.statsLoaded {
		b.WriteString("  " + formatter.Dim("Loading stats...") + "\n")
	} else if v.stats != nil {
		b.WriteString(v.renderMetrics())
		b.WriteString("\n")
		b.WriteString(formatter.RenderCharts(v.stats, width, v.state.Observer.OnWarning))
	}

	b.WriteString("\n" + formatter.Header("Recent Activity") + "\n\n")
	if !v.recentLoaded {
		b.WriteString("  " + formatter.Dim("Loading recent sessions...") + "\n")
	} else {
		b.WriteString(formatter.RenderRecentGrouped(v.recent))
	}

	return b.String()
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "log practice")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "logs")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
