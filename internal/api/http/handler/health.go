package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/service"
)

// HealthService runs named dependency checks.
type HealthService interface {
	Check(ctx context.Context, name string) error
}

// Health serves the welcome and health endpoints.
type Health struct {
	projectName string
	health      HealthService
	logger      *logger.Logger
}

func NewHealth(projectName string, health HealthService, logger *logger.Logger) *Health {
	return &Health{
		projectName: projectName,
		health:      health,
		logger:      logger,
	}
}

// Root godoc
// @Summary      Welcome message
// @Tags         root
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       / [get]
func (h *Health) Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Welcome to " + h.projectName})
}

// Live godoc
// @Summary      Service liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *Health) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Message: "Service is running"})
}

// Database godoc
// @Summary      Database connectivity
// @Description  Always answers 200; a failed ping is reported in the body.
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health/db [get]
func (h *Health) Database(c *gin.Context) {
	if err := h.health.Check(c.Request.Context(), service.DatabaseCheck); err != nil {
		h.logger.WarnContext(c.Request.Context(), "Health handler: database check failed",
			"error", err.Error())
		c.JSON(http.StatusOK, HealthResponse{Status: "error", Message: fmt.Sprintf("Database error: %s", err)})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Message: "Database connection is healthy"})
}
