package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/logger"
)

const requestIDHeader = "X-Request-Id"

func RequestID(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Header(requestIDHeader, reqID)

		if logg != nil {
			c.Request = c.Request.WithContext(logg.WithRequestID(c.Request.Context(), reqID))
		}

		c.Next()
	}
}
