package handlers

import (
	"net/http"

	"outing-board-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ThemeHandler handles the board appearance
type ThemeHandler struct {
	service service.ThemeServiceInterface
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(service service.ThemeServiceInterface) *ThemeHandler {
	return &ThemeHandler{service: service}
}

// RotateImageRequest selects the neighbouring preset header image
type RotateImageRequest struct {
	Direction service.RotateDirection `json:"direction" binding:"required" example:"next"`
}

// GetTheme handles GET /api/v1/theme
// @Summary Get theme
// @Tags theme
// @Produce json
// @Success 200 {object} models.ThemeConfig
// @Router /theme [get]
func (h *ThemeHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Get())
}

// UpdateTheme handles PUT /api/v1/theme
// @Summary Update theme
// @Description Update colors and header image. Omitted fields keep their value.
// @Tags theme
// @Accept json
// @Produce json
// @Param theme body service.UpdateThemeRequest true "Theme fields"
// @Success 200 {object} models.ThemeConfig
// @Failure 400 {object} ErrorResponse "Invalid theme"
// @Security BearerAuth
// @Router /theme [put]
func (h *ThemeHandler) UpdateTheme(c *gin.Context) {
	var req service.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	theme, err := h.service.Update(&req)
	if err != nil {
		respondError(c, err, "Failed to update theme")
		return
	}
	c.JSON(http.StatusOK, theme)
}

// RotateImage handles POST /api/v1/theme/rotate
// @Summary Cycle the header image
// @Description Move to the next or previous preset header image
// @Tags theme
// @Accept json
// @Produce json
// @Param rotate body RotateImageRequest true "Direction (next or prev)"
// @Success 200 {object} models.ThemeConfig
// @Failure 400 {object} ErrorResponse "Invalid direction"
// @Security BearerAuth
// @Router /theme/rotate [post]
func (h *ThemeHandler) RotateImage(c *gin.Context) {
	var req RotateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	theme, err := h.service.RotateImage(req.Direction)
	if err != nil {
		respondError(c, err, "Failed to rotate header image")
		return
	}
	c.JSON(http.StatusOK, theme)
}
