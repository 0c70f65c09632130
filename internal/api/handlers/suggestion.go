package handlers

import (
	"net/http"

	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/models"
	"outing-board-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler handles suggestion requests and the suggestion panel
type SuggestionHandler struct {
	gateway service.SuggestionServiceInterface
	panel   service.SuggestionPanelServiceInterface
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(gateway service.SuggestionServiceInterface, panel service.SuggestionPanelServiceInterface) *SuggestionHandler {
	return &SuggestionHandler{gateway: gateway, panel: panel}
}

// SwitchTabRequest selects a suggestion category in the panel
type SwitchTabRequest struct {
	Category models.SuggestionCategory `json:"category" example:"scripture"`
}

// ListCategories handles GET /api/v1/suggestions/categories
// @Summary List suggestion categories
// @Description Get the categories with their display label and color, in tab order
// @Tags suggestions
// @Produce json
// @Success 200 {array} models.CategoryConfig
// @Router /suggestions/categories [get]
func (h *SuggestionHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories)
}

// GetSuggestions handles GET /api/v1/suggestions
// @Summary Fetch suggestions
// @Description Fetch fresh suggestions for a category. Failures degrade to a single fallback item.
// @Tags suggestions
// @Produce json
// @Param category query string true "Category" Enums(scripture, presentation, practical, safety)
// @Success 200 {array} models.SuggestionItem
// @Failure 400 {object} ErrorResponse "Unknown category"
// @Router /suggestions [get]
func (h *SuggestionHandler) GetSuggestions(c *gin.Context) {
	category := models.SuggestionCategory(c.Query("category"))
	if _, ok := models.CategoryFor(category); !ok {
		respondError(c, apperrors.ErrUnknownCategory, "Unknown category")
		return
	}

	c.JSON(http.StatusOK, h.gateway.FetchSuggestions(c, category))
}

// GetPanel handles GET /api/v1/suggestions/panel
// @Summary Get the suggestion panel
// @Tags suggestions
// @Produce json
// @Success 200 {object} models.SuggestionPanel
// @Router /suggestions/panel [get]
func (h *SuggestionHandler) GetPanel(c *gin.Context) {
	c.JSON(http.StatusOK, h.panel.Panel())
}

// UpdatePanel handles POST /api/v1/suggestions/panel
// @Summary Open the panel or switch its tab
// @Description Without a category the active tab is reloaded. Selecting the active tab does nothing.
// @Tags suggestions
// @Accept json
// @Produce json
// @Param tab body SwitchTabRequest false "Category to show"
// @Success 200 {object} models.SuggestionPanel
// @Failure 400 {object} ErrorResponse "Unknown category"
// @Router /suggestions/panel [post]
func (h *SuggestionHandler) UpdatePanel(c *gin.Context) {
	var req SwitchTabRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	if req.Category == "" {
		c.JSON(http.StatusOK, h.panel.Open(c))
		return
	}

	panel, err := h.panel.SwitchTab(c, req.Category)
	if err != nil {
		respondError(c, err, "Failed to switch tab")
		return
	}
	c.JSON(http.StatusOK, panel)
}
