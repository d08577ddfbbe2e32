package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-gin-calendar/config"
	"go-gin-calendar/internal/handler"
	"go-gin-calendar/internal/model"
	"go-gin-calendar/internal/service/mocks"
	apperrors "go-gin-calendar/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEventTestRouter(mockService *mocks.MockEventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	eventHandler := handler.NewEventHandler(mockService, &config.ServerConfig{
		MaxUploadBytes: 1 << 20,
		PublicBaseURL:  "http://localhost:5000",
	})
	eventHandler.RegisterRoutes(router)
	return router
}

func TestListEvents(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything).Return([]*model.Event{
			{ID: "1", Title: "Dentist", Date: "2024-03-15"},
		}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "Dentist", body[0]["title"])
		assert.Contains(t, body[0], "image")
		assert.Nil(t, body[0]["image"])
	})

	t.Run("Empty collection is an empty array", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything).Return([]*model.Event{}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Failed - ErrStorageUnavailable", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything).
			Return(nil, fmt.Errorf("find: %w: connection refused", apperrors.ErrStorageUnavailable)).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Success - title and date", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, model.CreateEventInput{Title: "Dentist", Date: "2024-03-15"}).
			Return(&model.Event{ID: "abc", Title: "Dentist", Date: "2024-03-15", CreatedAt: time.Now()}, nil).Once()

		req := createMultipartRequest(t, "/events", map[string]string{"title": "Dentist", "date": "2024-03-15"}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "abc", body["id"])
		assert.Equal(t, "Dentist", body["title"])
		assert.Equal(t, "2024-03-15", body["date"])
		assert.Contains(t, body, "image")
		assert.Nil(t, body["image"])
	})

	t.Run("Success - urlencoded form", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, model.CreateEventInput{Title: "Gym", Date: "2024-03-16"}).
			Return(&model.Event{ID: "g", Title: "Gym", Date: "2024-03-16"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader("title=Gym&date=2024-03-16"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Success - image is sniffed", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)
		img := pngImage(t)

		ref := "/uploads/1717200000000.png"
		mockService.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in model.CreateEventInput) bool {
			return in.Image != nil &&
				in.Image.MediaType == "image/png" &&
				in.Image.Filename == "invite.bin" &&
				string(in.Image.Data) == string(img)
		})).Return(&model.Event{ID: "p", Title: "Birthday Party", Date: "2024-06-01", Image: &ref}, nil).Once()

		req := createMultipartRequest(t, "/events", nil, &formFile{field: "image", filename: "invite.bin", data: img})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"image":"/uploads/1717200000000.png"`)
	})

	t.Run("Failed - ErrInvalidInput", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, model.CreateEventInput{}).
			Return(nil, fmt.Errorf("%w: title and date are required", apperrors.ErrInvalidInput)).Once()

		req := createMultipartRequest(t, "/events", nil, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "title and date are required")
	})

	t.Run("Failed - ErrInvalidDate", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: \"someday\"", apperrors.ErrInvalidDate)).Once()

		req := createMultipartRequest(t, "/events", map[string]string{"title": "Dentist", "date": "someday"}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - ErrExtractionFailed", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: response is not a JSON object", apperrors.ErrExtractionFailed)).Once()

		req := createMultipartRequest(t, "/events", nil, &formFile{field: "image", filename: "a.png", data: pngImage(t)})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"error":"Could not read event from image"}`, w.Body.String())
	})

	t.Run("Failed - ErrExtractionFailed wrapping ErrInvalidDate", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: %w", apperrors.ErrExtractionFailed, apperrors.ErrInvalidDate)).Once()

		req := createMultipartRequest(t, "/events", nil, &formFile{field: "image", filename: "a.png", data: pngImage(t)})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"error":"Could not read event from image"}`, w.Body.String())
	})

	t.Run("Failed - upload too large", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		big := make([]byte, 2<<20)
		req := createMultipartRequest(t, "/events", nil, &formFile{field: "image", filename: "big.png", data: big})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Upload too large"}`, w.Body.String())
	})

	t.Run("Failed - malformed multipart", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader("--xyz\r\nContent-Disposition: form-data; name=\"title\"\r\n\r\nDentist"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - unexpected error", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, fmt.Errorf("disk full")).Once()

		req := createMultipartRequest(t, "/events", map[string]string{"title": "Dentist", "date": "2024-03-15"}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Delete(mock.Anything, "abc").Return(nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/events/abc", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		mockService := mocks.NewMockEventService(t)
		router := setupEventTestRouter(mockService)

		mockService.EXPECT().Delete(mock.Anything, "unknown").Return(apperrors.ErrEventNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/events/unknown", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Event not found"}`, w.Body.String())
	})
}

func TestEventFeed(t *testing.T) {
	mockService := mocks.NewMockEventService(t)
	router := setupEventTestRouter(mockService)

	mockService.EXPECT().List(mock.Anything).Return([]*model.Event{
		{ID: "1", Title: "Dentist", Date: "2024-03-15"},
		{ID: "2", Title: "Gym", Date: "2024-03-16"},
	}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events.ics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar"))
	assert.Equal(t, 2, strings.Count(w.Body.String(), "BEGIN:VEVENT"))
	assert.Contains(t, w.Body.String(), "SUMMARY:Dentist")
}
