package handlers

import (
	"errors"
	"net/http"

	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/models"
	"outing-board-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles the board gate and the edit gate
type SessionHandler struct {
	service service.SessionServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service service.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{service: service}
}

// LoginErrorResponse is returned when a gate rejects the credentials
type LoginErrorResponse struct {
	Error   string              `json:"error" example:"Credenciales incorrectas"`
	Session models.SessionState `json:"session"`
}

// GetSession handles GET /api/v1/session
// @Summary Get gate status
// @Description Report whether the board and edit gates are open
// @Tags session
// @Produce json
// @Success 200 {object} models.SessionState
// @Router /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.State())
}

// Login handles POST /api/v1/session/login
// @Summary Open the board gate
// @Description Check the shared board credentials. The username is case-insensitive and both values are trimmed. Success is remembered across restarts.
// @Tags session
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Board credentials"
// @Success 200 {object} models.SessionState
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} LoginErrorResponse "Invalid credentials"
// @Router /session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	state, err := h.service.LoginBoard(c, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, LoginErrorResponse{Error: "Credenciales incorrectas", Session: state})
			return
		}
		respondError(c, err, "Failed to open board")
		return
	}

	c.JSON(http.StatusOK, state)
}

// UnlockEditor handles POST /api/v1/session/editor
// @Summary Open the edit gate
// @Description Check the editor credentials exactly and issue a bearer token valid until the editor is locked, the board is saved or the server restarts
// @Tags session
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Editor credentials"
// @Success 200 {object} service.EditorTokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /session/editor [post]
func (h *SessionHandler) UnlockEditor(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.service.UnlockEditor(c, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Usuario o contraseña incorrectos"})
			return
		}
		respondError(c, err, "Failed to unlock editor")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LockEditor handles DELETE /api/v1/session/editor
// @Summary Close the edit gate
// @Description Revoke every outstanding editor token
// @Tags session
// @Security BearerAuth
// @Success 204 "Editor locked"
// @Failure 401 {object} ErrorResponse "Board or editor token missing"
// @Failure 403 {object} ErrorResponse "Editor token invalid"
// @Router /session/editor [delete]
func (h *SessionHandler) LockEditor(c *gin.Context) {
	h.service.LockEditor()
	c.Status(http.StatusNoContent)
}
