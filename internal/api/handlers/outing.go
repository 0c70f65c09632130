package handlers

import (
	"net/http"
	"strconv"

	"outing-board-backend/internal/models"
	"outing-board-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OutingHandler handles HTTP requests for the outing roster
type OutingHandler struct {
	service service.RosterServiceInterface
}

// NewOutingHandler creates a new outing handler
func NewOutingHandler(service service.RosterServiceInterface) *OutingHandler {
	return &OutingHandler{service: service}
}

// UpdateOutingRequest replaces one field of an outing
type UpdateOutingRequest struct {
	Field models.OutingField `json:"field" binding:"required" example:"meetingPlace"`
	Value string             `json:"value" example:"Salón del Reino"`
}

// CommitOutingRequest closes an edit session on one field
type CommitOutingRequest struct {
	Field    models.OutingField `json:"field" binding:"required" example:"meetingPlace"`
	Value    string             `json:"value" example:"Salón del Reino"`
	Previous string             `json:"previous" example:"Nueva Salida"`
}

// CommitOutingResponse reports whether the edit was logged
type CommitOutingResponse struct {
	Logged bool `json:"logged"`
}

// DeleteOutingResponse reports whether the outing was removed
type DeleteOutingResponse struct {
	Deleted bool `json:"deleted"`
}

// ListOutings handles GET /api/v1/outings
// @Summary List outings
// @Description Get every outing in insertion order
// @Tags outings
// @Produce json
// @Success 200 {array} models.OutingRecord
// @Failure 401 {object} ErrorResponse "Board access required"
// @Router /outings [get]
func (h *OutingHandler) ListOutings(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

// GetOuting handles GET /api/v1/outings/:id
// @Summary Get outing by ID
// @Tags outings
// @Produce json
// @Param id path string true "Outing ID"
// @Success 200 {object} models.OutingRecord
// @Failure 404 {object} ErrorResponse "Outing not found"
// @Router /outings/{id} [get]
func (h *OutingHandler) GetOuting(c *gin.Context) {
	outing, err := h.service.Get(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get outing")
		return
	}
	c.JSON(http.StatusOK, outing)
}

// CreateOuting handles POST /api/v1/outings
// @Summary Create an outing
// @Description Append an outing with placeholder values
// @Tags outings
// @Produce json
// @Success 201 {object} models.OutingRecord
// @Failure 403 {object} ErrorResponse "Editor access required"
// @Security BearerAuth
// @Router /outings [post]
func (h *OutingHandler) CreateOuting(c *gin.Context) {
	c.JSON(http.StatusCreated, h.service.Create())
}

// UpdateOuting handles PATCH /api/v1/outings/:id
// @Summary Update one outing field
// @Description Replace a single field. Unknown outing ids are ignored. Not logged until the edit is committed.
// @Tags outings
// @Accept json
// @Param id path string true "Outing ID"
// @Param update body UpdateOutingRequest true "Field and value"
// @Success 204 "Updated"
// @Failure 400 {object} ErrorResponse "Unknown field"
// @Security BearerAuth
// @Router /outings/{id} [patch]
func (h *OutingHandler) UpdateOuting(c *gin.Context) {
	var req UpdateOutingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.Update(c.Param("id"), req.Field, req.Value); err != nil {
		respondError(c, err, "Failed to update outing")
		return
	}
	c.Status(http.StatusNoContent)
}

// CommitOuting handles POST /api/v1/outings/:id/commit
// @Summary Commit a field edit
// @Description Log exactly one update entry when the value differs from the value before editing
// @Tags outings
// @Accept json
// @Produce json
// @Param id path string true "Outing ID"
// @Param commit body CommitOutingRequest true "Field, new value and previous value"
// @Success 200 {object} CommitOutingResponse
// @Failure 400 {object} ErrorResponse "Unknown field"
// @Security BearerAuth
// @Router /outings/{id}/commit [post]
func (h *OutingHandler) CommitOuting(c *gin.Context) {
	var req CommitOutingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	logged, err := h.service.CommitIfChanged(c.Param("id"), req.Field, req.Value, req.Previous)
	if err != nil {
		respondError(c, err, "Failed to commit outing edit")
		return
	}
	c.JSON(http.StatusOK, CommitOutingResponse{Logged: logged})
}

// DeleteOuting handles DELETE /api/v1/outings/:id
// @Summary Delete an outing
// @Description Remove an outing when confirm=true. Without confirmation nothing changes.
// @Tags outings
// @Produce json
// @Param id path string true "Outing ID"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} DeleteOutingResponse
// @Security BearerAuth
// @Router /outings/{id} [delete]
func (h *OutingHandler) DeleteOuting(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	deleted, err := h.service.Delete(c, c.Param("id"), service.Preconfirmed(confirmed))
	if err != nil {
		respondError(c, err, "Failed to delete outing")
		return
	}
	c.JSON(http.StatusOK, DeleteOutingResponse{Deleted: deleted})
}
