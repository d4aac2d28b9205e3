package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"transportner/internal/api/handlers/extract"
	"transportner/internal/api/middleware"
)

// RouterConfig параметры middleware
type RouterConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
	Logger         *slog.Logger
}

// NewRouter собирает gin роутер со всеми маршрутами сервиса.
// Rate limiting применяется только к /api/v1, проверка здоровья не ограничивается.
func NewRouter(cfg RouterConfig, handler *extract.Handler) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.GinRequestIDMiddleware(),
		middleware.GinRecoveryMiddleware(),
		middleware.GinLoggerMiddleware(cfg.Logger),
		middleware.GinGzipMiddleware(),
	)

	router.GET("/health", handler.HandleHealth)

	v1 := router.Group("/api/v1")
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst > 0 {
		v1.Use(middleware.GinRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	v1.POST("/extract", handler.HandleExtract)
	v1.POST("/extract/batch", handler.HandleExtractBatch)
	v1.GET("/ontology", handler.HandleOntology)
	v1.GET("/documents/:id/mentions", handler.HandleDocumentMentions)

	return router
}
