package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shinyyama/street-transform/internal/preset"
)

type PresetLister interface {
	Listings() []preset.Listing
}

type PresetHandler struct {
	presets PresetLister
}

func NewPresetHandler(presets PresetLister) *PresetHandler {
	return &PresetHandler{presets: presets}
}

type PresetResponse struct {
	Key             string `json:"key"`
	EnglishName     string `json:"englishName"`
	Typology        string `json:"typology"`
	Description     string `json:"description"`
	ManualReference string `json:"manualReference,omitempty"`
	Catalog         string `json:"catalog"`
}

type PresetListResponse struct {
	Presets []PresetResponse `json:"presets"`
	Total   int              `json:"total"`
}

func (h *PresetHandler) List(c echo.Context) error {
	listings := h.presets.Listings()
	resp := PresetListResponse{
		Presets: make([]PresetResponse, 0, len(listings)),
		Total:   len(listings),
	}
	for _, l := range listings {
		resp.Presets = append(resp.Presets, PresetResponse{
			Key:             l.Key,
			EnglishName:     l.EnglishName,
			Typology:        string(l.Typology),
			Description:     l.Description,
			ManualReference: l.ManualReference,
			Catalog:         l.Catalog,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
