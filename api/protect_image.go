package api

import (
	"artdisrupt/pkg/disruptor"
	"artdisrupt/pkg/model"
)

type ProtectImageRequest struct {
	Image  []byte `json:"image" binding:"required"`
	Preset string `json:"preset" example:"balanced"`
	Seed   *int64 `json:"seed" example:"1337"`
}

type ProtectImageResponse struct {
	ProtectedImage []byte                 `json:"protected_image"`
	Result         model.ProcessingResult `json:"result"`
}

type PresetsResponse struct {
	Presets []disruptor.PresetInfo `json:"presets"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}
