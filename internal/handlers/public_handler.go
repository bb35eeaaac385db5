package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const Banner = "Chi's Luxe Beauties backend API running"

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct{}

func NewPublicHandler() *PublicHandler {
	return &PublicHandler{}
}

func (h *PublicHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

func (h *PublicHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
