package domain

import (
	"sort"
	"time"
)

// LogEntry is one practice session as serialized by the backend.
// The id is the user-scoped log number assigned server-side; clients
// never invent it.
type LogEntry struct {
	ID         int    `json:"id"`
	LocalDate  string `json:"local_date"`
	UTCDate    string `json:"utc_date"`
	UpdatedAt  string `json:"updated_at"`
	Instrument string `json:"instrument"`
	Duration   int    `json:"duration"`
	Notes      string `json:"notes"`
	Piece      string `json:"piece"`
	Composer   string `json:"composer"`
}

// LogSubmission is the JSON body for POST /api/logs and PATCH /api/edit-log.
// Piece, Composer and Notes are pointers so an absent value serializes as
// null rather than an empty string.
type LogSubmission struct {
	UTCTimestamp string  `json:"utc_timestamp"`
	Duration     int     `json:"duration"`
	Instrument   string  `json:"instrument"`
	Piece        *string `json:"piece"`
	Composer     *string `json:"composer"`
	Notes        *string `json:"notes"`
}

// NewLogSubmission captures the submission instant and shapes the optional
// fields. An empty notes string becomes null.
func NewLogSubmission(now time.Time, duration int, instrument string, piece, composer *string, notes string) LogSubmission {
	s := LogSubmission{
		UTCTimestamp: now.UTC().Format(time.RFC3339),
		Duration:     duration,
		Instrument:   instrument,
		Piece:        piece,
		Composer:     composer,
	}
	if notes != "" {
		s.Notes = &notes
	}
	return s
}

// SortField identifies a sortable log table column.
type SortField string

const (
	SortByID         SortField = "id"
	SortByDate       SortField = "date"
	SortByDuration   SortField = "duration"
	SortByInstrument SortField = "instrument"
	SortByPiece      SortField = "piece"
)

// SortLogs returns a sorted copy of logs. Date sorts chronologically by the
// UTC timestamp; other fields compare numerically or lexically. The input
// slice is never mutated.
func SortLogs(logs []LogEntry, field SortField, ascending bool) []LogEntry {
	out := make([]LogEntry, len(logs))
	copy(out, logs)

	less := func(a, b LogEntry) bool {
		switch field {
		case SortByDate:
			return a.UTCDate < b.UTCDate
		case SortByDuration:
			return a.Duration < b.Duration
		case SortByInstrument:
			return a.Instrument < b.Instrument
		case SortByPiece:
			return a.Piece < b.Piece
		default:
			return a.ID < b.ID
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}

// Piece is a distinct piece/composer pair from GET /api/stats/pieces.
type Piece struct {
	Title    string `json:"title"`
	Composer string `json:"composer"`
}

// TotalMinutes sums the duration of all logs.
func TotalMinutes(logs []LogEntry) int {
	total := 0
	for _, l := range logs {
		total += l.Duration
	}
	return total
}
