package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/logger"
)

func Recoverer(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf("panic: %v", rec)
				if logg != nil {
					ctx := logg.WithField(c.Request.Context(), "panic", rec)
					logg.Error(ctx, "panic.recovered", err)
				}
				httperr.Write(c, http.StatusInternalServerError, httperr.CodeInternal, nil)
			}
		}()
		c.Next()
	}
}
