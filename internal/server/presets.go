package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artdisrupt/api"
	"artdisrupt/pkg/disruptor"
)

// PresetsHandler godoc
//
// @Summary List protection presets
// @Description Lists every protection preset with its stages and static effectiveness scores
// @Tags presets
// @Produce json
// @Success 200 {object} api.PresetsResponse
// @Router /presets [get]
func PresetsHandler(ctx *gin.Context) {
	presets := make([]disruptor.PresetInfo, 0, len(disruptor.Presets()))
	for _, preset := range disruptor.Presets() {
		info, err := disruptor.Describe(preset)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, api.Error{Error: err.Error()})
			return
		}
		presets = append(presets, info)
	}
	ctx.JSON(http.StatusOK, api.PresetsResponse{Presets: presets})
}

// HealthHandler godoc
//
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} api.HealthResponse
// @Router /healthz [get]
func HealthHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}
