package handler

import (
	"net/http"
	"strings"

	"go-gin-calendar/config"
	"go-gin-calendar/internal/metrics"
	"go-gin-calendar/internal/storage"

	"github.com/gin-gonic/gin"
)

// NewRouter 組合所有中介層與路由；m 為 nil 時不開放 /metrics
func NewRouter(cfg *config.ServerConfig, uploadDir string, events *EventHandler, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), CORS(cfg.AllowedOrigins))
	if m != nil {
		r.Use(Metrics(m))
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}
	// 上傳大小已由 MaxBytesReader 控制
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static(strings.TrimSuffix(storage.URLPrefix, "/"), uploadDir)
	events.RegisterRoutes(r)
	return r
}
