package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Raj6773/Resume/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log line.
const (
	LogKeyOutcome  = "resumeOutcome"
	LogKeyPDFBytes = "pdfBytes"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		outcome, _ := c.Get(LogKeyOutcome)
		pdfBytes, _ := c.Get(LogKeyPDFBytes)

		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"outcome":     outcome,
			"pdf_bytes":   pdfBytes,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
