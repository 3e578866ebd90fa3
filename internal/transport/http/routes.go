package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// QueryRequest is the body of a submitted turn.
type QueryRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Query runs one conversational turn.
// POST /api/query
func (h *Handler) Query(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := h.service.SubmitTurn(c.Request().Context(), req.SessionID, req.Message)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetHistory returns the message history for a session.
// GET /api/history?session_id=...
func (h *Handler) GetHistory(c echo.Context) error {
	messages, err := h.service.History(c.Request().Context(), c.QueryParam("session_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

// GetProfile returns the profile snapshot for a session.
// GET /api/profile?session_id=...
func (h *Handler) GetProfile(c echo.Context) error {
	profile, err := h.service.GetProfile(c.Request().Context(), c.QueryParam("session_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfileRequest is the body of a partial profile update. Any field
// not supplied is left untouched.
type UpdateProfileRequest struct {
	SessionID string            `json:"session_id"`
	Fields    map[string]string `json:"fields"`
}

// UpdateProfile applies a partial profile update.
// POST /api/profile
func (h *Handler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	profile, err := h.service.UpdateProfile(c.Request().Context(), req.SessionID, req.Fields)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// SessionRequest is the body of reset and export calls.
type SessionRequest struct {
	SessionID string `json:"session_id"`
}

// Reset clears all state for a session.
// POST /api/reset
func (h *Handler) Reset(c echo.Context) error {
	var req SessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.service.Reset(c.Request().Context(), req.SessionID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Session reset successfully."})
}

// Export renders the transcript as a single text block.
// POST /api/export
func (h *Handler) Export(c echo.Context) error {
	var req SessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	text, err := h.service.Export(c.Request().Context(), req.SessionID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"text": text})
}
