package core

import (
	"bufio"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joeydtaylor/steeze-calc/pkg/calc"
	"github.com/joeydtaylor/steeze-calc/pkg/config"
	"github.com/joeydtaylor/steeze-calc/pkg/mathfn"
	"github.com/joeydtaylor/steeze-calc/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-calc/pkg/middleware/metrics"
	httpx "github.com/joeydtaylor/steeze-calc/pkg/transport/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newServer(t *testing.T, expr string, log *zap.Logger) *httptest.Server {
	t.Helper()
	fn, err := mathfn.Resolve(expr)
	require.NoError(t, err)
	if log == nil {
		log = zap.NewNop()
	}
	h := BuildRouter(config.Default(), BuildDeps{
		Calc:    calc.New(fn, log),
		LogMW:   logger.NewMiddleware(nil),
		Metrics: metrics.ProvideMetrics(),
		Router:  httpx.NewChi(),
		Log:     log,
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, body string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Post(srv.URL+CalculatePath, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestCalculateSqrt(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	srv := newServer(t, "sqrt", zap.New(core))

	resp, body := post(t, srv, `[{"x": 4}, {"x": -1}, {"x": 9}]`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/x-ndjson", resp.Header.Get("Content-Type"))
	assert.Equal(t, "{\"x\":4.0,\"sqrt\":2.0}\n{\"x\":9.0,\"sqrt\":3.0}\n", body)

	skipped := logs.FilterMessage("value is not a valid input").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, -1.0, skipped[0].ContextMap()["x"])
}

func TestCalculateLog2DomainError(t *testing.T) {
	srv := newServer(t, "log2", nil)
	resp, body := post(t, srv, `[{"x": 0}]`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
}

func TestCalculateEmpty(t *testing.T) {
	srv := newServer(t, "sin", nil)
	resp, body := post(t, srv, `[]`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/x-ndjson", resp.Header.Get("Content-Type"))
	assert.Empty(t, body)
}

func TestCalculateEchoesInput(t *testing.T) {
	srv := newServer(t, "floor", nil)
	_, body := post(t, srv, `[{"x": 2.7}, {"x": -0.5}, {"x": 1e-7}, {"x": 12345678.9}]`)

	sc := bufio.NewScanner(strings.NewReader(body))
	want := []float64{2.7, -0.5, 1e-7, 12345678.9}
	i := 0
	for sc.Scan() {
		var rec map[string]float64
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		assert.Equal(t, want[i], rec["x"])
		i++
	}
	assert.Equal(t, len(want), i)
	assert.True(t, strings.HasPrefix(body, "{\"x\":2.7,\"floor\":2}\n{\"x\":-0.5,\"floor\":-1}\n"))
}

func TestCalculateValidation(t *testing.T) {
	srv := newServer(t, "sqrt", nil)

	for _, body := range []string{`{"x": 1}`, `[{"x": "a"}]`, `[{"y": 1}]`, `not json`} {
		resp, out := post(t, srv, body)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, body)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var verr calc.ValidationError
		require.NoError(t, json.Unmarshal([]byte(out), &verr), body)
		assert.NotEmpty(t, verr.Issues, body)
	}

	resp, out := post(t, srv, `[{"x": 4}, {"x": 1e400}]`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.JSONEq(t, `{"detail":[{"loc":["body",1,"x"],"msg":"value is not a valid float","type":"type_error.float"}]}`, out)
}

func TestCalculateFailsBeforeFirstLine(t *testing.T) {
	srv := newServer(t, "exp", nil)
	resp, body := post(t, srv, `[{"x": 1000}, {"x": 1}]`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "Internal Server Error")
}

func TestCalculateAbortsMidStream(t *testing.T) {
	srv := newServer(t, "exp", nil)
	resp, err := http.Post(srv.URL+CalculatePath, "application/json", strings.NewReader(`[{"x": 0}, {"x": 1000}, {"x": 1}]`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.Error(t, err)
	assert.Equal(t, "{\"x\":0.0,\"exp\":1.0}\n", string(body))
}

func TestRoutes(t *testing.T) {
	srv := newServer(t, "sqrt", nil)
	_, _ = post(t, srv, `[{"x": 1}]`)

	resp, err := http.Get(srv.URL + CalculatePath)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(b), "calc_results_total")
}

func TestMetricsDisabled(t *testing.T) {
	fn, err := mathfn.Resolve("sin")
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Metrics.Enabled = false
	h := BuildRouter(cfg, BuildDeps{
		Calc:    calc.New(fn, nil),
		Metrics: metrics.ProvideMetrics(),
		Router:  httpx.NewChi(),
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, CalculatePath, strings.NewReader(`[{"x":0}]`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{\"x\":0.0,\"sin\":0.0}\n", rec.Body.String())
	assert.True(t, rec.Flushed)
}
