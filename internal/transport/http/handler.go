// Package handler provides HTTP handlers for the advisor engine.
package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/biashara-ai/advisor/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/query", h.Query)
	e.GET("/api/history", h.GetHistory)
	e.GET("/api/profile", h.GetProfile)
	e.POST("/api/profile", h.UpdateProfile)
	e.POST("/api/reset", h.Reset)
	e.POST("/api/export", h.Export)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// writeError maps service error codes to HTTP statuses.
func writeError(c echo.Context, err error) error {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		log.Printf("ERROR: unclassified failure: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	status := http.StatusInternalServerError
	switch svcErr.Code {
	case service.ErrorInvalidInput, service.ErrorInvalidField, service.ErrorInvalidEnum:
		status = http.StatusBadRequest
	case service.ErrorPolicyBlocked:
		status = http.StatusUnprocessableEntity
	case service.ErrorNotFound:
		status = http.StatusNotFound
	case service.ErrorGeneration:
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError || status == http.StatusBadGateway {
		log.Printf("ERROR: %v", svcErr)
	}

	return c.JSON(status, map[string]string{
		"error": svcErr.Reason,
		"code":  string(svcErr.Code),
	})
}
