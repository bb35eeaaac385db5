package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/logger"
)

// Logging writes one line per request. Errors recorded through httperr.Respond
// are attached: business codes as a field, anything else at error level.
func Logging(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logg == nil {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		ctx := logg.WithFields(c.Request.Context(), map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})

		last := c.Errors.Last()
		if last == nil {
			logg.Info(ctx, "request.complete")
			return
		}

		if be, ok := httperr.As(last.Err); ok && c.Writer.Status() < http.StatusInternalServerError {
			logg.Info(logg.WithField(ctx, "error_code", be.Code), "request.complete")
			return
		}
		logg.Error(ctx, "request.failed", last.Err)
	}
}
