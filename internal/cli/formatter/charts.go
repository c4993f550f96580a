package formatter

import (
	"fmt"
	"strings"

	"github.com/jb7007/subwoofer/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%, colored by
// fill: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderDailyGauge renders today's minutes against the daily target.
func RenderDailyGauge(g domain.DailyGauge, width int) string {
	target := g.Target
	if target <= 0 {
		target = 60
	}
	pct := float64(g.TotalToday) / float64(target)

	var b strings.Builder
	b.WriteString(Header("Today"))
	b.WriteString("\n")
	b.WriteString(RenderProgress(pct, width))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(FormatDuration(g.TotalToday, false)))
	b.WriteString(Dim(fmt.Sprintf(" of a %d minute target", target)))
	return b.String()
}

// RenderSeries renders a labeled bar chart from a backend-calculated
// series. Bars scale against the series maximum; an average reference
// value, when present, is appended below the bars.
func RenderSeries(title string, s domain.ChartSeries, width int) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n")

	if len(s.X) == 0 || len(s.Y) == 0 {
		b.WriteString(Dim("No data yet."))
		return b.String()
	}

	maxY := 0.0
	for _, y := range s.Y {
		if y > maxY {
			maxY = y
		}
	}

	labelWidth := 0
	for _, x := range s.X {
		if len(x) > labelWidth {
			labelWidth = len(x)
		}
	}

	barWidth := width - labelWidth - 10
	if barWidth < 4 {
		barWidth = 4
	}

	for i, x := range s.X {
		if i >= len(s.Y) {
			break
		}
		y := s.Y[i]
		filled := 0
		if maxY > 0 {
			filled = int(y / maxY * float64(barWidth))
		}
		bar := StyleBlue.Render(strings.Repeat(filledBlock, filled)) +
			StyleDim.Render(strings.Repeat(emptyBlock, barWidth-filled))
		b.WriteString(fmt.Sprintf("%-*s %s %s\n", labelWidth, x, bar, Dim(fmt.Sprintf("%.0f", y))))
	}

	if len(s.AvgArr) > 0 {
		b.WriteString(Dim(fmt.Sprintf("avg %.1f min/day", s.AvgArr[0])))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderCharts composes the dashboard charts from backend stats. Each
// chart tolerates its sub-object being absent: it is skipped and a
// diagnostic reported, never a panic.
func RenderCharts(stats *domain.DashboardStats, width int, warn func(string)) string {
	if warn == nil {
		warn = func(string) {}
	}
	if stats == nil {
		warn("dashboard stats missing; skipping all charts")
		return ""
	}

	var sections []string

	if stats.Daily != nil {
		sections = append(sections, RenderDailyGauge(*stats.Daily, width))
	} else {
		warn("daily gauge data missing; skipping chart")
	}

	if stats.Weekly != nil {
		sections = append(sections, RenderSeries("This Week", *stats.Weekly, width))
	} else {
		warn("weekly series missing; skipping chart")
	}

	if stats.Cumulative != nil {
		sections = append(sections, RenderSeries("All Time", *stats.Cumulative, width))
	} else {
		warn("cumulative series missing; skipping chart")
	}

	return strings.Join(sections, "\n\n")
}
