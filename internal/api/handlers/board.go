package handlers

import (
	"net/http"

	"outing-board-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BoardHandler handles board-wide operations
type BoardHandler struct {
	service service.BoardServiceInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(service service.BoardServiceInterface) *BoardHandler {
	return &BoardHandler{service: service}
}

// Save handles POST /api/v1/save
// @Summary Save the board
// @Description Record a manual save and lock the editor. The editor token stops working afterwards.
// @Tags board
// @Produce json
// @Success 200 {object} models.ChangeLogEntry
// @Security BearerAuth
// @Router /save [post]
func (h *BoardHandler) Save(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Save())
}
