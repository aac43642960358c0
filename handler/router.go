package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RouterConfig carries the settings the HTTP surface needs.
type RouterConfig struct {
	APIKey             string
	AllowedOrigins     []string
	RateLimitPerMinute int
	MaxFileSize        int64
}

// NewRouter registers all routes. /health sits outside the API key and rate
// limit checks.
func NewRouter(cfg RouterConfig, casHandler *CASHandler, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(logger), CORS(cfg.AllowedOrigins))

	// Leave room for multipart overhead above the per-file limit.
	router.MaxMultipartMemory = cfg.MaxFileSize + 8<<20

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api/v1", APIKey(cfg.APIKey), RateLimit(cfg.RateLimitPerMinute))
	{
		casGroup := api.Group("/cas")
		{
			casGroup.POST("/parse", casHandler.ParseCAS)
			casGroup.POST("/parse/batch", casHandler.ParseCASBatch)
		}
	}

	return router
}
