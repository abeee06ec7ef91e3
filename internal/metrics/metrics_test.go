package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"artdisrupt/pkg/model"
)

func TestObserveResult(t *testing.T) {
	before := testutil.ToFloat64(imagesProtected.WithLabelValues("strong"))

	ObserveResult(model.ProcessingResult{Preset: "strong", PSNR: 31.5, ProcessingTimeMs: 12, HashDistance: 4})

	assert.Equal(t, before+1, testutil.ToFloat64(imagesProtected.WithLabelValues("strong")))
}

func TestObserveFailure(t *testing.T) {
	before := testutil.ToFloat64(protectFailures.WithLabelValues("decode_error"))
	ObserveFailure("decode_error")
	assert.Equal(t, before+1, testutil.ToFloat64(protectFailures.WithLabelValues("decode_error")))
}
