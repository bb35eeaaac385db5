package handlers

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/middleware"
)

// bindJSON binds the body into req and answers validation_error on failure.
// With allowEmpty an absent body leaves req untouched.
func bindJSON(c *gin.Context, req any, allowEmpty bool) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	if allowEmpty && errors.Is(err, io.EOF) {
		return true
	}
	httperr.BadRequest(c, err.Error())
	return false
}

// pathID parses :id. Anything that is not a positive integer cannot name a
// record, so it answers notFoundCode.
func pathID(c *gin.Context, notFoundCode string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		httperr.Respond(c, httperr.ErrBusiness(notFoundCode))
		return 0, false
	}
	return uint(id), true
}

func currentUser(c *gin.Context) (uint, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, httperr.CodeUnauthenticated)
		return 0, false
	}
	return id, true
}
