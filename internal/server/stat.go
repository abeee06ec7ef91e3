package server

import (
	"artdisrupt/pkg/model"
)

type humanizedProtectStats struct {
	model.ProtectStats
	DecodeHuman              string `json:"decode_human"`
	DisruptionHuman          string `json:"disruption_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
}

func toHumanizedProtectStats(protectStats model.ProtectStats) humanizedProtectStats {
	return humanizedProtectStats{
		ProtectStats:             protectStats,
		DecodeHuman:              protectStats.Decode.String(),
		DisruptionHuman:          protectStats.Disruption.String(),
		OutputImageEncodingHuman: protectStats.OutputImageEncoding.String(),
	}
}
