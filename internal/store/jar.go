package store

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
)

// Jar is an http.CookieJar that writes session cookies through to the
// Store, so a login survives process restarts.
type Jar struct {
	inner    http.CookieJar
	store    *Store
	endpoint string
}

// NewJar creates a Jar for the given backend endpoint, seeded with any
// cookies already persisted for it.
func NewJar(s *Store, endpoint string) (*Jar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	j := &Jar{inner: inner, store: s, endpoint: endpoint}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	saved, err := s.LoadCookies(endpoint)
	if err != nil {
		return nil, err
	}
	if len(saved) > 0 {
		inner.SetCookies(u, saved)
	}
	return j, nil
}

func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)
	// Persistence is best-effort; a failed write only costs the user a
	// re-login on the next run.
	_ = j.store.SaveCookies(j.endpoint, cookies)
}

func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	return j.inner.Cookies(u)
}

// Clear drops both the in-memory and persisted session (logout).
func (j *Jar) Clear() error {
	inner, err := cookiejar.New(nil)
	if err == nil {
		j.inner = inner
	}
	return j.store.ClearCookies(j.endpoint)
}
