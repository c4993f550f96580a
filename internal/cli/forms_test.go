package cli

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jb7007/subwoofer/internal/api"
	"github.com/jb7007/subwoofer/internal/store"
)

func faultResult() api.Result {
	return api.Result{OK: false, Status: 500, Err: api.ErrTransport}
}

func appFailure(status int, message string) api.Result {
	data := json.RawMessage(`{}`)
	if message != "" {
		data, _ = json.Marshal(map[string]string{"message": message})
	}
	return api.Result{OK: false, Status: status, Data: data}
}

func TestResolvePiece_DropdownSelectionWins(t *testing.T) {
	piece, composer := resolvePiece("Clair de Lune:::Debussy", "typed title", "typed composer")
	require.NotNil(t, piece)
	require.NotNil(t, composer)
	assert.Equal(t, "Clair de Lune", *piece)
	assert.Equal(t, "Debussy", *composer)
}

func TestResolvePiece_ManualTitleDefaultsComposerToUnknown(t *testing.T) {
	piece, composer := resolvePiece("", "Sonata", "")
	require.NotNil(t, piece)
	require.NotNil(t, composer)
	assert.Equal(t, "Sonata", *piece)
	assert.Equal(t, "Unknown", *composer)
}

func TestResolvePiece_ManualTitleWithComposer(t *testing.T) {
	piece, composer := resolvePiece("", "Etude Op. 10", "Chopin")
	require.NotNil(t, piece)
	assert.Equal(t, "Etude Op. 10", *piece)
	assert.Equal(t, "Chopin", *composer)
}

func TestResolvePiece_NeitherSourceYieldsNils(t *testing.T) {
	piece, composer := resolvePiece("", "", "")
	assert.Nil(t, piece)
	assert.Nil(t, composer)

	// Whitespace-only manual input counts as absent.
	piece, composer = resolvePiece("", "   ", "Someone")
	assert.Nil(t, piece)
	assert.Nil(t, composer)
}

func TestResolvePiece_DropdownValueWithEmptyComposerPart(t *testing.T) {
	piece, composer := resolvePiece("Untitled:::", "", "")
	require.NotNil(t, piece)
	require.NotNil(t, composer)
	assert.Equal(t, "Untitled", *piece)
	assert.Equal(t, "", *composer)
}

func TestClampEditedDuration(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		prior     int
		want      int
		wantAlert bool
	}{
		{"valid input", "45", 30, 45, false},
		{"zero clamps to one", "0", 30, 1, true},
		{"negative clamps to one", "-5", 30, 1, true},
		{"non-numeric clamps to one", "abc", 30, 1, true},
		{"over a day clamps to cap", "5000", 30, 1440, true},
		{"exactly the cap passes", "1440", 30, 1440, false},
		{"empty retains prior silently", "", 30, 30, false},
		{"whitespace retains prior silently", "  ", 30, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, alertText := clampEditedDuration(tt.input, tt.prior)
			assert.Equal(t, tt.want, got)
			if tt.wantAlert {
				assert.NotEmpty(t, alertText)
			} else {
				assert.Empty(t, alertText)
			}
		})
	}
}

func TestFormBuilders_PriorFieldsSurviveRebuild(t *testing.T) {
	state := testState(nil)

	_, _, fields := newLoginForm(state, nil, nil)
	creds := fields.(*credentialFields)
	creds.username = "homer"
	creds.password = "secret"

	_, _, rebuilt := newLoginForm(state, nil, fields)
	assert.Same(t, creds, rebuilt)

	_, _, fields = newLogForm(state, nil, nil)
	logf := fields.(*logFields)
	logf.duration = "90"
	logf.title = "Gymnopedie No. 1"

	_, _, rebuilt = newLogForm(state, nil, fields)
	assert.Same(t, logf, rebuilt)
}

func TestNewLogForm_SeedsFromStoredDefaults(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "forms.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	state := testState(nil)
	state.Store = st

	// No stored defaults yet: the settings values apply.
	_, _, fields := newLogForm(state, nil, nil)
	f := fields.(*logFields)
	assert.Equal(t, "60", f.duration)
	assert.Equal(t, "piano", f.instrument)

	require.NoError(t, st.SetDefault(defaultKeyDuration, "25"))
	require.NoError(t, st.SetDefault(defaultKeyInstrument, "cello"))

	_, _, fields = newLogForm(state, nil, nil)
	f = fields.(*logFields)
	assert.Equal(t, "25", f.duration)
	assert.Equal(t, "cello", f.instrument)
}

func TestLogSubmission_AcceptedValuesBecomeStoredDefaults(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "forms.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	mux := http.NewServeMux()
	mux.HandleFunc(api.PathLogs, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{"message": "created"})
	})
	state, _ := serverState(t, mux)
	state.Store = st

	_, submit, fields := newLogForm(state, nil, nil)
	f := fields.(*logFields)
	f.duration = "75"
	f.instrument = "oboe"

	msg := submit()
	require.True(t, msg.(logSubmitResultMsg).res.OK)

	v, ok, err := st.GetDefault(defaultKeyDuration)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "75", v)

	v, ok, err = st.GetDefault(defaultKeyInstrument)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "oboe", v)
}

func TestFailureAlert_ThreeWayBranch(t *testing.T) {
	// Covered per-flow in the submission tests; this pins the shared shape.
	t.Run("fault beats everything", func(t *testing.T) {
		res := faultResult()
		assert.Equal(t, alertNetwork, signupAlert(res))
		assert.Equal(t, alertNetwork, loginAlert(res))
		assert.Equal(t, alertNetwork, logAlert(res))
	})

	t.Run("specific status messages", func(t *testing.T) {
		assert.Equal(t, alertUsernameTaken, signupAlert(appFailure(409, "")))
		assert.Equal(t, alertBadLogin, loginAlert(appFailure(401, "")))
	})

	t.Run("server message then fallback", func(t *testing.T) {
		assert.Equal(t, "too many logs", logAlert(appFailure(400, "too many logs")))
		assert.Equal(t, alertLogFailed, logAlert(appFailure(400, "")))
		assert.Equal(t, alertSignupFailed, signupAlert(appFailure(500, "")))
		assert.Equal(t, alertLoginFailed, loginAlert(appFailure(500, "")))
	})
}
