package store

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCookieRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := []*http.Cookie{{Name: "session", Value: "abc123", Path: "/"}}
	require.NoError(t, s.SaveCookies("http://localhost:5000", in))

	out, err := s.LoadCookies("http://localhost:5000")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "session", out[0].Name)
	assert.Equal(t, "abc123", out[0].Value)
}

func TestSaveCookies_ExpiredCookieRemoves(t *testing.T) {
	s := openTestStore(t)
	endpoint := "http://localhost:5000"

	require.NoError(t, s.SaveCookies(endpoint, []*http.Cookie{{Name: "session", Value: "abc"}}))
	require.NoError(t, s.SaveCookies(endpoint, []*http.Cookie{{
		Name: "session", Value: "abc", Expires: time.Now().Add(-time.Hour),
	}}))

	out, err := s.LoadCookies(endpoint)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLoadCookies_ScopedByEndpoint(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveCookies("http://a", []*http.Cookie{{Name: "session", Value: "a"}}))
	require.NoError(t, s.SaveCookies("http://b", []*http.Cookie{{Name: "session", Value: "b"}}))

	out, err := s.LoadCookies("http://a")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Value)
}

func TestClearCookies(t *testing.T) {
	s := openTestStore(t)
	endpoint := "http://localhost:5000"
	require.NoError(t, s.SaveCookies(endpoint, []*http.Cookie{{Name: "session", Value: "abc"}}))
	require.NoError(t, s.ClearCookies(endpoint))

	out, err := s.LoadCookies(endpoint)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFormDefaults(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.GetDefault("instrument")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetDefault("instrument", "cello"))
	require.NoError(t, s.SetDefault("instrument", "viola")) // upsert

	v, ok, err := s.GetDefault("instrument")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "viola", v)
}

func TestJar_PersistsSessionAcrossRestart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "logged-in", Path: "/"})
	}))
	defer srv.Close()

	dbPath := filepath.Join(t.TempDir(), "session.db")

	s1, err := Open(dbPath)
	require.NoError(t, err)
	jar1, err := NewJar(s1, srv.URL)
	require.NoError(t, err)

	client := &http.Client{Jar: jar1}
	resp, err := client.Get(srv.URL + "/login")
	require.NoError(t, err)
	resp.Body.Close()
	require.NoError(t, s1.Close())

	// New process: same store path, fresh jar.
	s2, err := Open(dbPath)
	require.NoError(t, err)
	defer s2.Close()
	jar2, err := NewJar(s2, srv.URL)
	require.NoError(t, err)

	u, _ := url.Parse(srv.URL)
	cookies := jar2.Cookies(u)
	require.Len(t, cookies, 1)
	assert.Equal(t, "logged-in", cookies[0].Value)
}

func TestJar_ClearDropsSession(t *testing.T) {
	s := openTestStore(t)
	jar, err := NewJar(s, "http://localhost:5000")
	require.NoError(t, err)

	u, _ := url.Parse("http://localhost:5000")
	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "abc", Path: "/"}})
	require.NoError(t, jar.Clear())

	assert.Empty(t, jar.Cookies(u))
	saved, err := s.LoadCookies("http://localhost:5000")
	require.NoError(t, err)
	assert.Empty(t, saved)
}
