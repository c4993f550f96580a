package formatter

import (
	"strconv"
	"strings"

	"github.com/jb7007/subwoofer/internal/domain"
)

// LogTableHeaders are the practice-log table columns, in render order.
var LogTableHeaders = []string{"#", "Date", "Duration", "Instrument", "Piece", "Composer", "Notes"}

// LogRow converts one entry into display cells matching LogTableHeaders.
func LogRow(log domain.LogEntry) []string {
	composer := log.Composer
	if composer == "" {
		composer = "N/A"
	}
	return []string{
		strconv.Itoa(log.ID),
		log.LocalDate,
		FormatDurationShort(log.Duration),
		domain.InstrumentName(log.Instrument),
		log.Piece,
		composer,
		log.Notes,
	}
}

// RenderLogTable renders the full practice-log table, highlighting the
// row at cursor (-1 for none).
func RenderLogTable(logs []domain.LogEntry, cursor int) string {
	if len(logs) == 0 {
		return Dim("No practice sessions logged yet.")
	}
	rows := make([][]string, 0, len(logs))
	for _, log := range logs {
		rows = append(rows, LogRow(log))
	}
	return RenderTable(LogTableHeaders, rows, cursor)
}

// RenderRecentGrouped renders recent logs grouped under date headings.
// Dates appear in first-encounter order of the input, not sorted, so the
// backend's ordering is preserved.
func RenderRecentGrouped(logs []domain.LogEntry) string {
	if len(logs) == 0 {
		return Dim("No recent sessions.")
	}

	grouped := make(map[string][]domain.LogEntry)
	var order []string
	for _, log := range logs {
		if _, seen := grouped[log.LocalDate]; !seen {
			order = append(order, log.LocalDate)
		}
		grouped[log.LocalDate] = append(grouped[log.LocalDate], log)
	}

	var b strings.Builder
	for i, date := range order {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleBold.Render(date))
		b.WriteString("\n")
		for _, log := range grouped[date] {
			piece := log.Piece
			if piece == "" {
				piece = "N/A"
			}
			composer := log.Composer
			if composer == "" {
				composer = "Unknown"
			}
			b.WriteString("  " + domain.InstrumentName(log.Instrument) + " – " +
				StyleFg.Render(piece+" by "+composer) + " " +
				Dim("("+FormatDurationShort(log.Duration)+")") + "\n")
		}
	}
	return b.String()
}
