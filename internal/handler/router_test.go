package handler_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go-gin-calendar/config"
	"go-gin-calendar/internal/handler"
	"go-gin-calendar/internal/metrics"
	"go-gin-calendar/internal/model"
	"go-gin-calendar/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupFullRouter(t *testing.T, mockService *mocks.MockEventService) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	cfg := &config.ServerConfig{
		AllowedOrigins: []string{"http://localhost:3000/"},
		MaxUploadBytes: 1 << 20,
	}
	r := handler.NewRouter(cfg, dir, handler.NewEventHandler(mockService, cfg), metrics.New())
	return r, dir
}

func TestRouter_Healthz(t *testing.T) {
	router, _ := setupFullRouter(t, mocks.NewMockEventService(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_RequestID(t *testing.T) {
	router, _ := setupFullRouter(t, mocks.NewMockEventService(t))

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Len(t, w.Header().Get(handler.RequestIDHeader), 36)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set(handler.RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get(handler.RequestIDHeader))
	})
}

func TestRouter_CORS(t *testing.T) {
	router, _ := setupFullRouter(t, mocks.NewMockEventService(t))

	t.Run("Preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/events", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})

	t.Run("Preflight from unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/events", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_ServesUploads(t *testing.T) {
	router, dir := setupFullRouter(t, mocks.NewMockEventService(t))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1717200000000.png"), pngImage(t), 0o644))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/1717200000000.png", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestRouter_Metrics(t *testing.T) {
	mockService := mocks.NewMockEventService(t)
	router, _ := setupFullRouter(t, mockService)
	mockService.EXPECT().List(mock.Anything).Return([]*model.Event{}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `calendar_http_requests_total{method="GET",route="/events",status="200"} 1`)
}
