package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deusflow/trendbrief/internal/logger"
)

// newMonitor serves /health and /metrics from the given stats snapshot.
func newMonitor(stats func() map[string]interface{}) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("Monitoring request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	})

	r.GET("/health", func(c *gin.Context) {
		s := stats()

		status := "ok"
		code := http.StatusOK
		if healthy, _ := s["is_healthy"].(bool); !healthy {
			status = "error"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":              status,
			"last_run":            s["last_run_time"],
			"last_error":          s["last_error"],
			"llm_quota_exhausted": s["llm_quota_exhausted"],
		})
	})

	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, stats())
	})

	return r
}
