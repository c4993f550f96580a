package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogSubmission_OptionalFieldsNull(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	s := NewLogSubmission(now, 45, "piano", nil, nil, "")

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, float64(45), raw["duration"])
	assert.Equal(t, "piano", raw["instrument"])
	assert.Nil(t, raw["piece"])
	assert.Nil(t, raw["composer"])
	assert.Nil(t, raw["notes"])
	assert.Equal(t, "2026-03-14T15:09:26Z", raw["utc_timestamp"])
}

func TestNewLogSubmission_NotesKeptWhenPresent(t *testing.T) {
	s := NewLogSubmission(time.Now(), 30, "cello", nil, nil, "worked on intonation")
	require.NotNil(t, s.Notes)
	assert.Equal(t, "worked on intonation", *s.Notes)
}

func TestSortLogs_DateUsesTimestampNotDisplayString(t *testing.T) {
	logs := []LogEntry{
		{ID: 1, UTCDate: "2026-02-01T10:00:00Z", LocalDate: "Feb 1"},
		{ID: 2, UTCDate: "2026-01-15T10:00:00Z", LocalDate: "Jan 15"},
		{ID: 3, UTCDate: "2026-03-01T10:00:00Z", LocalDate: "Mar 1"},
	}

	sorted := SortLogs(logs, SortByDate, true)
	assert.Equal(t, []int{2, 1, 3}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID})

	desc := SortLogs(logs, SortByDate, false)
	assert.Equal(t, 3, desc[0].ID)
}

func TestSortLogs_DoesNotMutateInput(t *testing.T) {
	logs := []LogEntry{{ID: 2}, {ID: 1}}
	_ = SortLogs(logs, SortByID, true)
	assert.Equal(t, 2, logs[0].ID)
}

func TestSortLogs_Duration(t *testing.T) {
	logs := []LogEntry{{ID: 1, Duration: 90}, {ID: 2, Duration: 15}, {ID: 3, Duration: 45}}
	sorted := SortLogs(logs, SortByDuration, true)
	assert.Equal(t, []int{2, 3, 1}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestInstrumentName(t *testing.T) {
	assert.Equal(t, "Upright Bass", InstrumentName("Upright Bass")) // unknown code passes through
	assert.Equal(t, "Double Bass", InstrumentName("doubleBass"))
	assert.Equal(t, "B♭ Clarinet", InstrumentName("clarinetBb"))
	assert.Equal(t, "Piano", InstrumentName("piano"))
}

func TestInstrumentCodes_AllHaveNames(t *testing.T) {
	for _, code := range InstrumentCodes {
		assert.NotEqual(t, code, InstrumentName(code), "code %q has no display name", code)
	}
}

func TestTotalMinutes(t *testing.T) {
	logs := []LogEntry{{Duration: 30}, {Duration: 45}}
	assert.Equal(t, 75, TotalMinutes(logs))
	assert.Equal(t, 0, TotalMinutes(nil))
}
