package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artdisrupt/api"
	"artdisrupt/api/artdisrupt/ProtectImage"
	"artdisrupt/internal/logging"
	"artdisrupt/pkg/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestServer(t *testing.T, mutate func(*config.ServerConfig)) http.Handler {
	t.Helper()
	cfg := config.DefaultServerConfig()
	cfg.SwaggerEnabled = false
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewServer(cfg, logging.BuildLogger(logging.Options{Level: "error"}))
	require.NoError(t, err)
	return s.Router()
}

func generateTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(rand.Intn(256)), G: uint8(x), B: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func postJSON(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/protect/image", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProtectImageHandler(t *testing.T) {
	router := setupTestServer(t, nil)
	raw := generateTestPNG(t, 64, 48)
	seed := int64(99)

	w := postJSON(t, router, api.ProtectImageRequest{Image: raw, Preset: "Strong", Seed: &seed})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	var resp api.ProtectImageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "strong", resp.Result.Preset)
	assert.Equal(t, int64(99), resp.Result.Seed)
	assert.Equal(t, 64, resp.Result.Width)
	assert.Equal(t, 48, resp.Result.Height)
	assert.Equal(t, int64(len(raw)), resp.Result.OriginalSize)
	assert.Equal(t, int64(len(resp.ProtectedImage)), resp.Result.ProcessedSize)
	assert.Equal(t, 0.95, resp.Result.Effectiveness.GoogleReverseImage)
	assert.Equal(t, 0.90, resp.Result.Effectiveness.AIModelTraining)
	assert.Equal(t, 0.925, resp.Result.Effectiveness.Overall)

	decoded, err := png.Decode(bytes.NewReader(resp.ProtectedImage))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 48), decoded.Bounds())
}

func TestProtectImageHandlerIsDeterministic(t *testing.T) {
	router := setupTestServer(t, nil)
	raw := generateTestPNG(t, 32, 32)

	var outputs [][]byte
	for i := 0; i < 2; i++ {
		w := postJSON(t, router, api.ProtectImageRequest{Image: raw})
		require.Equal(t, http.StatusOK, w.Code)
		var resp api.ProtectImageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "balanced", resp.Result.Preset)
		assert.Equal(t, int64(1337), resp.Result.Seed)
		outputs = append(outputs, resp.ProtectedImage)
	}
	assert.Equal(t, outputs[0], outputs[1])
}

func TestProtectImageHandlerErrors(t *testing.T) {
	router := setupTestServer(t, func(cfg *config.ServerConfig) {
		cfg.MaxPixels = 100
	})

	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{name: "missing image", body: map[string]string{"preset": "minimal"}, status: http.StatusBadRequest, code: "invalid_request"},
		{name: "unknown preset", body: api.ProtectImageRequest{Image: generateTestPNG(t, 5, 5), Preset: "ultra"}, status: http.StatusBadRequest, code: "invalid_preset"},
		{name: "not an image", body: api.ProtectImageRequest{Image: []byte("hello there, this is text")}, status: http.StatusBadRequest, code: "invalid_image"},
		{name: "too many pixels", body: api.ProtectImageRequest{Image: generateTestPNG(t, 20, 20)}, status: http.StatusRequestEntityTooLarge, code: "image_too_large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, tt.body)
			assert.Equal(t, tt.status, w.Code)

			var resp api.Error
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestProtectImageHandlerBodyLimit(t *testing.T) {
	router := setupTestServer(t, func(cfg *config.ServerConfig) {
		cfg.MaxImageBytes = 64
	})

	w := postJSON(t, router, api.ProtectImageRequest{Image: generateTestPNG(t, 30, 30)})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestPresetsHandler(t *testing.T) {
	router := setupTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.PresetsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Presets, 4)
	assert.Equal(t, "minimal", resp.Presets[0].Name)
	assert.Equal(t, []string{"grain_noise", "color_shift", "grid_pattern", "adversarial_pattern"}, resp.Presets[1].Stages)
	assert.Equal(t, 0.80, resp.Presets[1].Effectiveness.Overall)
	assert.Contains(t, resp.Presets[3].Stages, "watermark")
}

func TestHealthAndMetrics(t *testing.T) {
	router := setupTestServer(t, nil)

	for _, path := range []string{"/healthz", "/api/v1/healthz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	router := setupTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func buildFlatbufferRequest(rawImage []byte, preset string, seed *int64) []byte {
	builder := flatbuffers.NewBuilder(len(rawImage) + 64)
	imageOffset := builder.CreateByteVector(rawImage)
	presetOffset := builder.CreateString(preset)

	ProtectImage.ProtectImageRequestStart(builder)
	ProtectImage.ProtectImageRequestAddImage(builder, imageOffset)
	ProtectImage.ProtectImageRequestAddPreset(builder, presetOffset)
	if seed != nil {
		ProtectImage.ProtectImageRequestAddSeed(builder, *seed)
		ProtectImage.ProtectImageRequestAddHasSeed(builder, true)
	}
	builder.Finish(ProtectImage.ProtectImageRequestEnd(builder))
	return builder.FinishedBytes()
}

func TestProtectImageFlatbuffersHandler(t *testing.T) {
	router := setupTestServer(t, nil)
	raw := generateTestPNG(t, 40, 30)
	seed := int64(7)

	req := httptest.NewRequest(http.MethodPost, "/fb/protect/image", bytes.NewReader(buildFlatbufferRequest(raw, "maximum", &seed)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))

	resp := ProtectImage.GetRootAsProtectImageResponse(w.Body.Bytes(), 0)
	assert.Equal(t, "maximum", string(resp.Preset()))
	assert.Equal(t, int64(7), resp.Seed())
	assert.Equal(t, int32(40), resp.Width())
	assert.Equal(t, int32(30), resp.Height())
	assert.Equal(t, int64(len(raw)), resp.OriginalSize())
	assert.Equal(t, int64(resp.ProtectedImageLength()), resp.ProcessedSize())
	assert.Equal(t, 0.925, resp.Overall())
	assert.Greater(t, resp.Psnr(), 0.0)

	_, err := png.Decode(bytes.NewReader(resp.ProtectedImageBytes()))
	assert.NoError(t, err)
}

func TestProtectImageFlatbuffersHandlerRejectsGarbage(t *testing.T) {
	router := setupTestServer(t, nil)

	for _, body := range [][]byte{{1, 2}, {0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0}} {
		req := httptest.NewRequest(http.MethodPost, "/fb/protect/image", bytes.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func waitForServerResult(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after its context was cancelled")
		return nil
	}
}

func TestServeStopsWhenContextIsCancelled(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.SwaggerEnabled = false
	s, err := NewServer(cfg, logging.BuildLogger(logging.Options{Level: "error"}))
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, ln)
	}()

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", ln.Addr().String()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	assert.NoError(t, waitForServerResult(t, done))

	_, err = http.Get(fmt.Sprintf("http://%s/healthz", ln.Addr().String()))
	assert.Error(t, err, "server should no longer accept connections")
}

func TestStartServerReturnsOnCancelledContext(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.Port = "0"
	cfg.SwaggerEnabled = false

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- StartServer(ctx, cfg, logging.BuildLogger(logging.Options{Level: "error"}))
	}()
	cancel()

	assert.NoError(t, waitForServerResult(t, done))
}
