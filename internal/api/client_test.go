package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver captures fault events for assertions.
type recordingObserver struct {
	mu       sync.Mutex
	events   []CallEvent
	warnings []string
}

func (o *recordingObserver) OnCallComplete(e CallEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) OnWarning(msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.warnings = append(o.warnings, msg)
}

func TestDo_PassesOptionsThroughUnmodified(t *testing.T) {
	var gotMethod, gotHeader, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Custom")
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, NoopObserver{})
	res := c.Do(context.Background(), "/x", Options{
		Method:  http.MethodPatch,
		Headers: map[string]string{"X-Custom": "yes"},
		Body:    []byte(`{"a":1}`),
	})

	require.NoError(t, res.Err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "yes", gotHeader)
	assert.Equal(t, `{"a":1}`, gotBody)
}

func TestDo_DefaultsToGETWithNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, NoopObserver{})
	res := c.Do(context.Background(), "/api/logs", Options{})

	require.NoError(t, res.Err)
	assert.True(t, res.OK)
	assert.Equal(t, http.StatusOK, res.Status)
}

func TestDo_ApplicationFailureMirrorsStatusWithoutErr(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Username taken"}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	c := NewClient(srv.URL, nil, obs)
	res := c.Do(context.Background(), "/register", Options{Method: http.MethodPost})

	assert.False(t, res.OK)
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.NoError(t, res.Err)
	assert.Equal(t, "Username taken", res.Message())

	// Application-level rejections are not diagnostic faults.
	assert.Empty(t, obs.events)
}

func TestDo_TransportFaultUsesSentinelStatus(t *testing.T) {
	// Point at a closed server so the dial fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	obs := &recordingObserver{}
	c := NewClient(srv.URL, nil, obs)
	res := c.Do(context.Background(), "/api/logs", Options{})

	assert.False(t, res.OK)
	assert.Equal(t, faultStatus, res.Status)
	assert.Nil(t, res.Data)
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, ErrTransport)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "TRANSPORT", obs.events[0].FaultCode)
	assert.NotEmpty(t, obs.events[0].RequestID)
}

func TestDo_ParseFaultIndistinguishableFromTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	c := NewClient(srv.URL, nil, obs)
	res := c.Do(context.Background(), "/api/logs", Options{})

	// Same shape as a transport fault: the real status is unreliable.
	assert.False(t, res.OK)
	assert.Equal(t, faultStatus, res.Status)
	assert.Nil(t, res.Data)
	assert.ErrorIs(t, res.Err, ErrParse)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "PARSE", obs.events[0].FaultCode)
}

func TestDo_SuccessPayloadAndRedirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Login successful","redirect":"/dashboard"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, NoopObserver{})
	res := c.Do(context.Background(), "/login", Options{Method: http.MethodPost})

	require.True(t, res.OK)
	assert.Equal(t, "/dashboard", res.Redirect())
	assert.Equal(t, "Login successful", res.Message())
}

func TestResult_MessageOnMalformedDataIsEmpty(t *testing.T) {
	res := Result{Data: []byte(`[1,2,3]`)}
	assert.Empty(t, res.Message())
	assert.Empty(t, res.Redirect())
}
