package handlers

import (
	"net/http"

	"outing-board-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnnouncementHandler handles the quick announcement banner
type AnnouncementHandler struct {
	service service.AnnouncementServiceInterface
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(service service.AnnouncementServiceInterface) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// SetDurationRequest changes the display duration
type SetDurationRequest struct {
	Duration int `json:"duration" binding:"required" example:"15"`
}

// GetAnnouncement handles GET /api/v1/announcement
// @Summary Get announcement
// @Tags announcement
// @Produce json
// @Success 200 {object} models.AnnouncementState
// @Router /announcement [get]
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Get())
}

// PublishAnnouncement handles POST /api/v1/announcement
// @Summary Publish an announcement
// @Description Show a message to every viewer for 5 to 60 seconds
// @Tags announcement
// @Accept json
// @Produce json
// @Param announcement body service.PublishAnnouncementRequest true "Message and duration"
// @Success 200 {object} models.AnnouncementState
// @Failure 400 {object} ErrorResponse "Empty message or invalid duration"
// @Security BearerAuth
// @Router /announcement [post]
func (h *AnnouncementHandler) PublishAnnouncement(c *gin.Context) {
	var req service.PublishAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	state, err := h.service.Publish(&req)
	if err != nil {
		respondError(c, err, "Failed to publish announcement")
		return
	}
	c.JSON(http.StatusOK, state)
}

// SetDuration handles PUT /api/v1/announcement/duration
// @Summary Change the announcement duration
// @Description An active announcement restarts its countdown
// @Tags announcement
// @Accept json
// @Produce json
// @Param duration body SetDurationRequest true "Duration in seconds"
// @Success 200 {object} models.AnnouncementState
// @Failure 400 {object} ErrorResponse "Invalid duration"
// @Security BearerAuth
// @Router /announcement/duration [put]
func (h *AnnouncementHandler) SetDuration(c *gin.Context) {
	var req SetDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	state, err := h.service.SetDuration(req.Duration)
	if err != nil {
		respondError(c, err, "Failed to change duration")
		return
	}
	c.JSON(http.StatusOK, state)
}

// HideAnnouncement handles DELETE /api/v1/announcement
// @Summary Hide the announcement
// @Tags announcement
// @Produce json
// @Success 200 {object} models.AnnouncementState
// @Security BearerAuth
// @Router /announcement [delete]
func (h *AnnouncementHandler) HideAnnouncement(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Hide())
}
