package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"artdisrupt/pkg/model"
)

var (
	imagesProtected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artdisrupt_images_protected_total",
		Help: "Images run through the disruption pipeline, by preset",
	}, []string{"preset"})

	protectFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artdisrupt_protect_failures_total",
		Help: "Failed protect requests, by reason",
	}, []string{"reason"})

	processingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "artdisrupt_processing_duration_seconds",
		Help:    "Time spent applying the pipeline and computing PSNR",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"preset"})

	psnr = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "artdisrupt_psnr_db",
		Help:    "PSNR between original and protected image",
		Buckets: []float64{15, 20, 25, 30, 35, 40, 45, 50},
	}, []string{"preset"})

	hashDistance = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "artdisrupt_phash_distance",
		Help:    "Perception hash Hamming distance between original and protected image",
		Buckets: []float64{0, 1, 2, 4, 8, 12, 16, 24, 32},
	})
)

func ObserveResult(result model.ProcessingResult) {
	imagesProtected.WithLabelValues(result.Preset).Inc()
	processingDuration.WithLabelValues(result.Preset).Observe(result.ProcessingTimeMs / 1000)
	if !result.PSNR.IsInf() {
		psnr.WithLabelValues(result.Preset).Observe(float64(result.PSNR))
	}
	hashDistance.Observe(float64(result.HashDistance))
}

func ObserveFailure(reason string) {
	protectFailures.WithLabelValues(reason).Inc()
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
