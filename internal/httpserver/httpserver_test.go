package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetbot/internal/availability"
	"meetbot/internal/extractor"
	"meetbot/internal/meeting"
	"meetbot/internal/meeting/repository/memory"
	"meetbot/internal/meeting/usecase"
	"meetbot/internal/metrics"
	"meetbot/internal/middleware"
	"meetbot/internal/router"
	"meetbot/pkg/datemath"
	"meetbot/pkg/log"
)

func newUseCase(t *testing.T) meeting.UseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	engine, err := availability.New(availability.DefaultWindow)
	require.NoError(t, err)

	l := log.NewNop()
	clock := func() time.Time { return time.Date(2026, 2, 3, 9, 15, 0, 0, time.UTC) }
	return usecase.New(l, memory.New(l), extractor.New(parser, extractor.WithClock(clock)),
		engine, router.New(l), usecase.WithClock(clock))
}

func TestNewValidates(t *testing.T) {
	l := log.NewNop()
	tcs := map[string]Config{
		"no mode":    {Port: 8080, MeetingUC: newUseCase(t)},
		"no port":    {Mode: "test", MeetingUC: newUseCase(t)},
		"no usecase": {Mode: "test", Port: 8080},
	}
	for name, cfg := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := New(l, cfg)
			assert.Error(t, err)
		})
	}

	_, err := New(nil, Config{Mode: "test", Port: 8080, MeetingUC: newUseCase(t)})
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	l := log.NewNop()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	srv, err := New(l, Config{
		Logger:     l,
		Port:       8080,
		Mode:       "test",
		MeetingUC:  newUseCase(t),
		Middleware: middleware.New(l, middleware.Config{Metrics: m}),
		Gatherer:   reg,
	})
	require.NoError(t, err)
	h := srv.Handler()

	for _, path := range []string{"/health", "/ready", "/live", "/api/v1/meetings"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), path)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/meetings/schedule",
		strings.NewReader(`{"text":"schedule tomorrow 3 to 4 for review"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `meetbot_http_requests_total{method="POST",route="/api/v1/meetings/schedule",status="200"} 1`)
}

func TestReadyReportsStoreFailure(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:     l,
		Port:       8080,
		Mode:       "test",
		MeetingUC:  newUseCase(t),
		Middleware: middleware.New(l, middleware.Config{}),
		ReadyCheck: func(context.Context) error { return errors.New("dial tcp: refused") },
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:     l,
		Port:       18089,
		Mode:       "test",
		MeetingUC:  newUseCase(t),
		Middleware: middleware.New(l, middleware.Config{}),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
