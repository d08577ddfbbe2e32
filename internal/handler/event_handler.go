package handler

import (
	"errors"
	"net/http"
	"time"

	"go-gin-calendar/config"
	"go-gin-calendar/internal/feed"
	"go-gin-calendar/internal/model"
	"go-gin-calendar/internal/service"
	apperrors "go-gin-calendar/pkg/app_errors"
	"go-gin-calendar/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service        service.EventService
	maxUploadBytes int64
	publicBaseURL  string
}

func NewEventHandler(service service.EventService, cfg *config.ServerConfig) *EventHandler {
	return &EventHandler{
		service:        service,
		maxUploadBytes: cfg.MaxUploadBytes,
		publicBaseURL:  cfg.PublicBaseURL,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/events", h.List)
	r.POST("/events", h.Create)
	r.DELETE("/events/:id", h.Delete)
	r.GET("/events.ics", h.Feed)
}

type EventURI struct {
	ID string `uri:"id" binding:"required"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

// Create multipart 欄位：title、date、image 皆為選填，但至少要有圖片或 title+date
func (h *EventHandler) Create(c *gin.Context) {
	if err := parseForm(c, h.maxUploadBytes); err != nil {
		h.handleError(c, err, "Create")
		return
	}

	image, err := readImage(c, "image")
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	created, err := h.service.Create(c, model.CreateEventInput{
		Title: c.PostForm("title"),
		Date:  c.PostForm("date"),
		Image: image,
	})
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Delete(c *gin.Context) {
	var uri EventURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	if err := h.service.Delete(c, uri.ID); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

// Feed 以 iCalendar 格式輸出全部事件，供外部行事曆訂閱
func (h *EventHandler) Feed(c *gin.Context) {
	events, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "Feed")
		return
	}
	c.Header("Content-Disposition", `inline; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed.BuildICS(events, h.publicBaseURL, time.Now())))
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(
		zap.String("operation", operation),
		zap.String("request_id", c.GetString(RequestIDKey)),
		zap.Error(err),
	)
	switch {
	case errors.Is(err, errUploadTooLarge):
		log.Warn("Upload too large")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload too large"})
	case errors.Is(err, errBadForm):
		log.Warn("Invalid request format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
	case errors.Is(err, apperrors.ErrExtractionFailed):
		log.Warn("Extraction failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not read event from image"})
	case apperrors.IsValidation(err):
		// 驗證錯誤的訊息都由 service 產生，可以直接回給使用者
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		log.Error("Storage unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
