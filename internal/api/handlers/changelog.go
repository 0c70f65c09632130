package handlers

import (
	"net/http"

	"outing-board-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChangeLogHandler exposes the activity log
type ChangeLogHandler struct {
	service service.ChangeLogServiceInterface
}

// NewChangeLogHandler creates a new change log handler
func NewChangeLogHandler(service service.ChangeLogServiceInterface) *ChangeLogHandler {
	return &ChangeLogHandler{service: service}
}

// ListEntries handles GET /api/v1/changelog
// @Summary List change log entries
// @Description Get every change log entry, newest first
// @Tags changelog
// @Produce json
// @Success 200 {array} models.ChangeLogEntry
// @Router /changelog [get]
func (h *ChangeLogHandler) ListEntries(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Entries())
}
