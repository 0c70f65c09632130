package handlers

import (
	"context"
	"net/http"
	"time"

	"outing-board-backend/internal/repository"
	"outing-board-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store       repository.KeyValueRepositoryInterface
	suggestions service.SuggestionServiceInterface
	backend     string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store repository.KeyValueRepositoryInterface, suggestions service.SuggestionServiceInterface, backend string) *HealthHandler {
	return &HealthHandler{
		store:       store,
		suggestions: suggestions,
		backend:     backend,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

func (h *HealthHandler) pingStore(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return h.store.Ping(ctx)
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status including the key-value store and the suggestion generator
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  make(map[string]string),
	}

	if err := h.pingStore(c.Request.Context()); err != nil {
		response.Status = "unhealthy"
		response.Services["store"] = "error: " + err.Error()
	} else {
		response.Services["store"] = h.backend + ": healthy"
	}

	// suggestions degrade to the fallback, so a missing generator is not unhealthy
	if h.suggestions.GeneratorConfigured() {
		response.Services["suggestions"] = "configured"
	} else {
		response.Services["suggestions"] = "fallback only"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the key-value store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	if err := h.pingStore(c.Request.Context()); err != nil {
		ready = false
		services["store"] = "not ready: " + err.Error()
	} else {
		services["store"] = "ready"
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
