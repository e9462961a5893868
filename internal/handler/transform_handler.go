package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shinyyama/street-transform/internal/model"
	"github.com/shinyyama/street-transform/internal/reqctx"
	"github.com/shinyyama/street-transform/internal/service"
)

type TransformHandler struct {
	svc service.TransformService
}

func NewTransformHandler(svc service.TransformService) *TransformHandler {
	return &TransformHandler{svc: svc}
}

type TransformResponse struct {
	Status   string `json:"status"`
	ImageURL string `json:"image_url"`
	Preset   string `json:"preset,omitempty"`
}

func (h *TransformHandler) Transform(c echo.Context) error {
	rid := c.Response().Header().Get(echo.HeaderXRequestID)
	ctx := reqctx.WithRID(c.Request().Context(), rid)

	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid_input", "No image uploaded"))
	}
	if fh.Filename == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid_input", "Invalid file"))
	}
	f, err := fh.Open()
	if err != nil {
		log.Printf("[transform] rid=%s stage=read_upload err=%v", rid, err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("storage_error", err.Error()))
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		log.Printf("[transform] rid=%s stage=read_upload err=%v", rid, err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("storage_error", err.Error()))
	}

	req := model.TransformRequest{
		Filename:     fh.Filename,
		Image:        data,
		CustomPrompt: c.FormValue("custom_prompt"),
		PresetKey:    strings.TrimSpace(c.FormValue("preset_key")),
		PromptType:   model.PromptType(strings.TrimSpace(c.FormValue("prompt_type"))),
	}
	res, err := h.svc.Transform(ctx, req)
	if err != nil {
		status, code := classify(err)
		return c.JSON(status, NewErrorResponse(code, errorMessage(err)))
	}
	return c.JSON(http.StatusOK, TransformResponse{
		Status:   "success",
		ImageURL: res.ImageURL,
		Preset:   res.PresetKey,
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusInternalServerError, "unavailable"
	case errors.Is(err, service.ErrStorage):
		return http.StatusInternalServerError, "storage_error"
	case errors.Is(err, service.ErrGeneration):
		return http.StatusInternalServerError, "generation_failed"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrUnavailable):
		return "Backend API Client not initialized. Check server logs."
	case errors.Is(err, service.ErrGeneration):
		return "API Error: " + err.Error()
	default:
		return err.Error()
	}
}
