package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Readiness reports whether the generative client came up at startup.
type Readiness interface {
	Ready() bool
	Reason() string
}

type HealthHandler struct {
	ai   Readiness
	mode string
}

func NewHealthHandler(ai Readiness, mode string) *HealthHandler {
	return &HealthHandler{ai: ai, mode: mode}
}

type HealthResponse struct {
	OK            bool   `json:"ok"`
	AIReady       bool   `json:"ai_ready"`
	AIReason      string `json:"ai_reason,omitempty"`
	TransformMode string `json:"transform_mode"`
}

func (h *HealthHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		OK:            true,
		AIReady:       h.ai.Ready(),
		AIReason:      h.ai.Reason(),
		TransformMode: h.mode,
	})
}
