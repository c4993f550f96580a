package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Options configures a single backend request. Every field is optional:
// the zero value issues a GET with no body and no extra headers.
type Options struct {
	Method  string
	Headers map[string]string
	Body    []byte // pre-serialized payload
}

// Result is the normalized outcome of one backend call.
//
// Err is set if and only if the call itself was structurally unusable
// (transport or parse fault). An application-level rejection arrives as
// OK=false with Err=nil and its message inside Data. Callers must not
// read Status as meaningful when Err is set.
type Result struct {
	OK     bool
	Status int
	Data   json.RawMessage
	Err    error
}

// faultStatus is the sentinel status for transport and parse faults,
// where the real status is unavailable or unreliable.
const faultStatus = http.StatusInternalServerError

// Client issues JSON requests against the practice-tracker backend.
type Client struct {
	baseURL  string
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the backend at baseURL. The cookie jar
// carries the session cookie across calls; pass nil for an anonymous
// client.
func NewClient(baseURL string, jar http.CookieJar, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar: jar,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// Do issues one request and normalizes the outcome. The options pass
// through unmodified: no headers are added or removed beyond what the
// caller provided.
func (c *Client) Do(ctx context.Context, path string, opts Options) Result {
	start := time.Now()
	requestID := uuid.NewString()

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if len(opts.Body) > 0 {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return c.fault(requestID, method, path, start, ErrTransport, err)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fault(requestID, method, path, start, ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fault(requestID, method, path, start, ErrParse, err)
	}
	if !json.Valid(raw) {
		return c.fault(requestID, method, path, start, ErrParse, nil)
	}

	return Result{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		Data:   json.RawMessage(raw),
	}
}

// fault builds the uniform transport/parse failure Result and emits a
// diagnostic event. Application-level rejections never come through here.
func (c *Client) fault(requestID, method, path string, start time.Time, sentinel, cause error) Result {
	err := sentinel
	if cause != nil {
		err = wrapFault(sentinel, cause)
	}

	code := "PARSE"
	if sentinel == ErrTransport {
		code = "TRANSPORT"
	}
	c.observer.OnCallComplete(CallEvent{
		RequestID: requestID,
		Method:    method,
		Path:      path,
		Status:    faultStatus,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		FaultCode: code,
	})

	return Result{
		OK:     false,
		Status: faultStatus,
		Data:   nil,
		Err:    err,
	}
}

// Message extracts the server-provided message from an application-level
// response body, or "" when none is present.
func (r Result) Message() string {
	if len(r.Data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Data, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// Redirect extracts the navigation target from a success payload, or ""
// when the response carries none.
func (r Result) Redirect() string {
	if len(r.Data) == 0 {
		return ""
	}
	var payload struct {
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(r.Data, &payload); err != nil {
		return ""
	}
	return payload.Redirect
}

// Decode unmarshals the response payload into v.
func (r Result) Decode(v any) error {
	return json.Unmarshal(r.Data, v)
}
