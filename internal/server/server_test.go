package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/matzehuels/periodix/internal/config"
	"github.com/matzehuels/periodix/pkg/buildinfo"
	"github.com/matzehuels/periodix/pkg/errors"
	"github.com/matzehuels/periodix/pkg/export"
	"github.com/matzehuels/periodix/pkg/layout"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T, mutate func(*config.Config)) (*Server, *httptest.Server) {
	t.Helper()
	cfg := config.Default()
	cfg.Transition.Seed = 42
	cfg.Transition.Duration = 20 * time.Millisecond
	cfg.Frame.TPS = 200
	if mutate != nil {
		mutate(cfg)
	}
	srv, err := New(cfg, log.New(io.Discard))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		require.NoError(t, srv.Close())
	})
	return srv, ts
}

func do(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func createScene(t *testing.T, ts *httptest.Server, body any) Status {
	t.Helper()
	resp := do(t, http.MethodPost, ts.URL+"/scenes", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[Status](t, resp)
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t, nil)
	resp := do(t, http.MethodGet, ts.URL+"/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[struct {
		Status string         `json:"status"`
		Build  buildinfo.Info `json:"build"`
	}](t, resp)
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Build.Version)
}

func TestListLayouts(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp := do(t, http.MethodGet, ts.URL+"/layouts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[map[string][]string](t, resp)
	assert.Equal(t, layout.Names(), got["layouts"])
}

func TestGetLayout(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp := do(t, http.MethodGet, ts.URL+"/layouts/table", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	snap := decode[export.Snapshot](t, resp)
	assert.Equal(t, "table", snap.Layout)
	require.Len(t, snap.Elements, 118)
	assert.Equal(t, "H", snap.Elements[0].Symbol)
	assert.InDelta(t, -1190, snap.Elements[0].Position[0], 1e-9)
	assert.InDelta(t, 810, snap.Elements[0].Position[1], 1e-9)

	resp = do(t, http.MethodGet, ts.URL+"/layouts/cube", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSceneLifecycle(t *testing.T) {
	srv, ts := newTestServer(t, nil)

	st := createScene(t, ts, map[string]any{"count": 10})
	assert.NotEmpty(t, st.ID)
	assert.Equal(t, "table", st.Layout)
	assert.Equal(t, 10, st.Elements)

	resp := do(t, http.MethodGet, ts.URL+"/scenes", nil)
	ids := decode[map[string][]string](t, resp)["scenes"]
	assert.Equal(t, []string{st.ID}, ids)

	// Wait for the initial transition to settle on the loop.
	require.Eventually(t, func() bool {
		resp := do(t, http.MethodGet, ts.URL+"/scenes/"+st.ID, nil)
		return decode[Status](t, resp).Settled
	}, 2*time.Second, 5*time.Millisecond)

	resp = do(t, http.MethodGet, ts.URL+"/scenes/"+st.ID+"/elements", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	snap := decode[export.Snapshot](t, resp)
	require.Len(t, snap.Elements, 10)
	assert.Equal(t, 0, snap.Active)
	assert.InDelta(t, -1190, snap.Elements[0].Position[0], 1e-9)

	resp = do(t, http.MethodDelete, ts.URL+"/scenes/"+st.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/scenes/"+st.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, srv.ids())
}

func TestTransition(t *testing.T) {
	_, ts := newTestServer(t, nil)
	st := createScene(t, ts, map[string]any{"count": 5})

	resp := do(t, http.MethodPost, ts.URL+"/scenes/"+st.ID+"/transition",
		map[string]any{"layout": "sphere", "duration_ms": 0})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	got := decode[Status](t, resp)
	assert.Equal(t, "sphere", got.Layout)

	require.Eventually(t, func() bool {
		resp := do(t, http.MethodGet, ts.URL+"/scenes/"+st.ID, nil)
		return decode[Status](t, resp).Settled
	}, 2*time.Second, 5*time.Millisecond)
}

func TestTransitionErrors(t *testing.T) {
	_, ts := newTestServer(t, nil)
	st := createScene(t, ts, nil)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantCode   errors.Code
	}{
		{"unknown layout", "/scenes/" + st.ID + "/transition", `{"layout":"nonexistent","duration_ms":1000}`, http.StatusUnprocessableEntity, errors.ErrCodeConfiguration},
		{"negative duration", "/scenes/" + st.ID + "/transition", `{"layout":"helix","duration_ms":-1}`, http.StatusBadRequest, errors.ErrCodeInvalidArgument},
		{"malformed body", "/scenes/" + st.ID + "/transition", `{"layout":`, http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"unknown field", "/scenes/" + st.ID + "/transition", `{"shape":"grid"}`, http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"unknown scene", "/scenes/nope/transition", `{"layout":"grid"}`, http.StatusNotFound, errors.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+tt.path, "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decode[errorBody](t, resp)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestCreateSceneErrors(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp := do(t, http.MethodPost, ts.URL+"/scenes", map[string]any{"count": 500})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = do(t, http.MethodPost, ts.URL+"/scenes", map[string]any{"layout": "cube"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSceneLimit(t *testing.T) {
	_, ts := newTestServer(t, func(c *config.Config) { c.Server.MaxScenes = 1 })

	createScene(t, ts, nil)
	resp := do(t, http.MethodPost, ts.URL+"/scenes", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestTransitionRateLimit(t *testing.T) {
	_, ts := newTestServer(t, func(c *config.Config) {
		c.Server.RateLimit = 0.001
		c.Server.Burst = 2
	})
	st := createScene(t, ts, nil)

	url := ts.URL + "/scenes/" + st.ID + "/transition"
	for i := 0; i < 2; i++ {
		resp := do(t, http.MethodPost, url, map[string]any{"layout": "grid"})
		require.Equal(t, http.StatusAccepted, resp.StatusCode)
	}
	resp := do(t, http.MethodPost, url, map[string]any{"layout": "grid"})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, errors.ErrCodeRateLimited, decode[errorBody](t, resp).Error.Code)
}

func TestMetrics(t *testing.T) {
	srv, ts := newTestServer(t, nil)
	st := createScene(t, ts, map[string]any{"count": 3})

	resp := do(t, http.MethodPost, ts.URL+"/scenes/"+st.ID+"/transition", map[string]any{"layout": "helix"})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	m := srv.Metrics()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("table")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("helix")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scenes))

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(m.ticks) > 0 && testutil.ToFloat64(m.frames) > 0
	}, 2*time.Second, 5*time.Millisecond)

	resp = do(t, http.MethodGet, ts.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "periodix_transitions_started_total")
	assert.Contains(t, string(body), "periodix_active_tweens")
}

func TestCloseStopsScenes(t *testing.T) {
	cfg := config.Default()
	srv, err := New(cfg, log.New(io.Discard))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := srv.newScene(createRequest{})
		require.NoError(t, err)
	}
	require.NoError(t, srv.Close())
	assert.Empty(t, srv.ids())
	assert.Equal(t, 0.0, testutil.ToFloat64(srv.Metrics().scenes))

	_, err = srv.newScene(createRequest{})
	assert.Error(t, err)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.ErrCodeConfiguration, http.StatusUnprocessableEntity},
		{errors.ErrCodeInvalidArgument, http.StatusBadRequest},
		{errors.ErrCodeInvalidFormat, http.StatusBadRequest},
		{errors.ErrCodeNotFound, http.StatusNotFound},
		{errors.ErrCodeRateLimited, http.StatusTooManyRequests},
		{errors.ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusCode(tt.code), tt.code)
	}
}
