package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/audit"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	audit *audit.Logger
}

func NewAuditLogsHandler(auditLogger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{audit: auditLogger}
}

// List returns the retained audit entries, newest first, optionally filtered
// by action and entity.
func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	entries := h.audit.Recent()
	logs := make([]models.AuditLog, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(logs) < limit; i-- {
		e := entries[i]
		if action != "" && e.Action != action {
			continue
		}
		if entity != "" && e.Entity != entity {
			continue
		}
		logs = append(logs, e)
	}

	c.JSON(http.StatusOK, gin.H{
		"limit": limit,
		"total": len(logs),
		"logs":  logs,
	})
}
