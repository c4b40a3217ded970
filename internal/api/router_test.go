package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nekogravitycat/hotel-room-inventory/internal/api"
	"github.com/nekogravitycat/hotel-room-inventory/internal/pkg/response"
	"github.com/nekogravitycat/hotel-room-inventory/internal/room"
	"github.com/nekogravitycat/hotel-room-inventory/internal/room/roomtest"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(ctx context.Context) error {
	return p.err
}

func newRouter(t *testing.T, repo room.Repository, db api.Pinger) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	r := api.NewRouter(api.Config{
		Logger:      zap.New(core),
		RoomService: room.NewService(repo),
		DB:          db,
	})
	return r, logs
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	r, _ := newRouter(t, roomtest.NewMemoryRepository(), nil)

	for _, path := range []string{"/nope", "/api/bookings", "/api/rooms/1/extra"} {
		w := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "Route not found", errorMessage(t, w))
	}
}

func TestPanicBecomesJSON500(t *testing.T) {
	r, logs := newRouter(t, roomtest.NewMemoryRepository(), nil)
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", errorMessage(t, w))
	assert.NotContains(t, w.Body.String(), "kaboom")
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestStoreErrorIsLoggedNotReturned(t *testing.T) {
	repo := roomtest.NewMemoryRepository()
	repo.Err = errors.New("dial tcp 10.0.0.5:5432: connection refused")
	r, logs := newRouter(t, repo, nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")

	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["errors"], "connection refused")
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newRouter(t, roomtest.NewMemoryRepository(), nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))
	assert.NotEmpty(t, w.Header().Get(api.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set(api.RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(api.RequestIDHeader))
}

func TestHealthz(t *testing.T) {
	r, _ := newRouter(t, roomtest.NewMemoryRepository(), fakePinger{})
	w := serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	r, _ = newRouter(t, roomtest.NewMemoryRepository(), fakePinger{err: errors.New("down")})
	w = serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCORSAllowsBrowserUIInDevelopment(t *testing.T) {
	r, _ := newRouter(t, roomtest.NewMemoryRepository(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Origin", "http://localhost:5500")
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestConcreteScenario(t *testing.T) {
	r, _ := newRouter(t, roomtest.NewMemoryRepository(), nil)

	stats := func() map[string]int {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/api/rooms/stats", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var s map[string]int
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
		return s
	}
	before := stats()

	body := `{"room_number":"101","room_type":"Standard","price":500000,"capacity":2,"status":"available"}`
	req := httptest.NewRequest(http.MethodPost, "/api/rooms", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Contains(t, created, "id")
	assert.Equal(t, "101", created["room_number"])
	assert.Equal(t, "Standard", created["room_type"])
	assert.Equal(t, float64(500000), created["price"])
	assert.Equal(t, float64(2), created["capacity"])
	assert.Equal(t, "available", created["status"])

	after := stats()
	assert.Equal(t, before["available"]+1, after["available"])
	assert.Equal(t, after["total"], after["available"]+after["occupied"]+after["maintenance"])
}
