package api

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single backend request.
type CallEvent struct {
	RequestID string
	Method    string
	Path      string
	Status    int
	LatencyMs int64
	Success   bool
	FaultCode string
}

// Observer receives events about backend calls for logging and diagnostics.
type Observer interface {
	OnCallComplete(event CallEvent)

	// OnWarning reports a recoverable degradation, such as a picklist
	// that failed to populate.
	OnWarning(message string)
}

// LogObserver writes call events and warnings to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.FaultCode
	}
	fmt.Fprintf(o.w, "[%s] api_call id=%s method=%s path=%s http=%d latency_ms=%d status=%s\n",
		ts, event.RequestID, event.Method, event.Path, event.Status, event.LatencyMs, status)
}

func (o *LogObserver) OnWarning(message string) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] warning %s\n", ts, message)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
func (NoopObserver) OnWarning(string)         {}
