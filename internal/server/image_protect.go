package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"

	"artdisrupt/api"
	"artdisrupt/api/artdisrupt/ProtectImage"
	"artdisrupt/internal/logging"
	"artdisrupt/internal/metrics"
	"artdisrupt/pkg/config"
	"artdisrupt/pkg/disruptor"
	artImage "artdisrupt/pkg/image"
	"artdisrupt/pkg/model"
)

// ProtectImageHandler godoc
//
// @Summary Protect an image
// @Description Applies the disruption pipeline of the requested preset to the supplied image and returns the protected PNG together with PSNR and effectiveness figures
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.ProtectImageRequest true "Base64 image, preset and optional seed"
// @Success 200 {object} api.ProtectImageResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /protect/image [post]
func (s *Server) ProtectImageHandler(ctx *gin.Context) {
	var requestBody api.ProtectImageRequest

	logger := logging.FromCtx(ctx, s.logger)
	logger.Debug("Processing image protect request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		status, body := protectErrorResponse(err)
		if status == http.StatusInternalServerError {
			status, body = http.StatusBadRequest, errRequestBodyDecode
		}
		metrics.ObserveFailure(body.Code)
		ctx.AbortWithStatusJSON(status, body)
		return
	}

	protectedImage, result, err := s.protect(logger, requestBody.Image, requestBody.Preset, requestBody.Seed)
	if err != nil {
		s.abortWithProtectError(ctx, logger, err)
		return
	}

	ctx.JSON(http.StatusOK, api.ProtectImageResponse{ProtectedImage: protectedImage, Result: result})
}

// ProtectImageFlatbuffersHandler accepts a ProtectImageRequest flatbuffer and answers with a
// ProtectImageResponse flatbuffer. Errors are returned as JSON.
func (s *Server) ProtectImageFlatbuffersHandler(ctx *gin.Context) {
	logger := logging.FromCtx(ctx, s.logger)

	requestBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		logger.WithError(err).Error("Error reading request body")
		status, body := protectErrorResponse(err)
		if status == http.StatusInternalServerError {
			status, body = http.StatusBadRequest, errRequestBodyDecode
		}
		metrics.ObserveFailure(body.Code)
		ctx.AbortWithStatusJSON(status, body)
		return
	}
	if len(requestBody) < flatbuffers.SizeUOffsetT {
		metrics.ObserveFailure(errRequestBodyDecode.Code)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	request, err := readFlatbufferRequest(requestBody)
	if err != nil {
		logger.WithError(err).Error("Malformed flatbuffer request")
		metrics.ObserveFailure(errRequestBodyDecode.Code)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	protectedImage, result, err := s.protect(logger, request.Image, request.Preset, request.Seed)
	if err != nil {
		s.abortWithProtectError(ctx, logger, err)
		return
	}

	ctx.Data(http.StatusOK, "application/octet-stream", buildFlatbufferResponse(protectedImage, result))
}

func (s *Server) protect(logger *logging.Logger, rawImage []byte, preset string, seed *int64) ([]byte, model.ProcessingResult, error) {
	if int64(len(rawImage)) > s.config.MaxImageBytes {
		return nil, model.ProcessingResult{}, &http.MaxBytesError{Limit: s.config.MaxImageBytes}
	}

	protectConfig, err := s.requestProtectConfig(preset, seed)
	if err != nil {
		return nil, model.ProcessingResult{}, err
	}

	protector, err := artImage.NewImageProtector(protectConfig)
	if err != nil {
		return nil, model.ProcessingResult{}, err
	}

	// pre allocate with size of original, since it should be similar
	output := bytes.NewBuffer(make([]byte, 0, len(rawImage)))
	result, err := protector.Protect(rawImage, output)
	if err != nil {
		return nil, model.ProcessingResult{}, err
	}

	metrics.ObserveResult(result)
	logger.With("result", result, "stats", toHumanizedProtectStats(protector.Stats())).Info("Image protection was successful")
	return output.Bytes(), result, nil
}

func (s *Server) requestProtectConfig(preset string, seed *int64) (config.ProtectConfig, error) {
	protectConfig := s.protectConfig
	if strings.TrimSpace(preset) != "" {
		parsed, err := disruptor.ParsePreset(preset)
		if err != nil {
			return config.ProtectConfig{}, err
		}
		protectConfig.Preset = parsed
	}
	if seed != nil {
		protectConfig.Seed = seed
	}
	return protectConfig, nil
}

func (s *Server) abortWithProtectError(ctx *gin.Context, logger *logging.Logger, err error) {
	status, body := protectErrorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.WithError(err).Error("Error protecting image")
	} else {
		logger.WithError(err).Warn("Rejected image protect request")
	}
	metrics.ObserveFailure(body.Code)
	ctx.AbortWithStatusJSON(status, body)
}

type flatbufferRequest struct {
	Image  []byte
	Preset string
	Seed   *int64
}

// readFlatbufferRequest copies the fields out of the request table, turning out of range offsets
// in malformed input into an error instead of a panic.
func readFlatbufferRequest(raw []byte) (req flatbufferRequest, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errMalformedFlatbuffer
		}
	}()

	fbRequest := ProtectImage.GetRootAsProtectImageRequest(raw, 0)
	req.Image = fbRequest.ImageBytes()
	req.Preset = string(fbRequest.Preset())
	if fbRequest.HasSeed() {
		seed := fbRequest.Seed()
		req.Seed = &seed
	}
	return req, nil
}

func buildFlatbufferResponse(protectedImage []byte, result model.ProcessingResult) []byte {
	builder := flatbuffers.NewBuilder(len(protectedImage) + 256)

	imageOffset := builder.CreateByteVector(protectedImage)
	presetOffset := builder.CreateString(result.Preset)

	ProtectImage.ProtectImageResponseStart(builder)
	ProtectImage.ProtectImageResponseAddProtectedImage(builder, imageOffset)
	ProtectImage.ProtectImageResponseAddPreset(builder, presetOffset)
	ProtectImage.ProtectImageResponseAddSeed(builder, result.Seed)
	ProtectImage.ProtectImageResponseAddWidth(builder, int32(result.Width))
	ProtectImage.ProtectImageResponseAddHeight(builder, int32(result.Height))
	ProtectImage.ProtectImageResponseAddOriginalSize(builder, result.OriginalSize)
	ProtectImage.ProtectImageResponseAddProcessedSize(builder, result.ProcessedSize)
	ProtectImage.ProtectImageResponseAddPsnr(builder, float64(result.PSNR))
	ProtectImage.ProtectImageResponseAddProcessingTimeMs(builder, result.ProcessingTimeMs)
	ProtectImage.ProtectImageResponseAddHashDistance(builder, int32(result.HashDistance))
	ProtectImage.ProtectImageResponseAddGoogleReverseImage(builder, result.Effectiveness.GoogleReverseImage)
	ProtectImage.ProtectImageResponseAddAiModelTraining(builder, result.Effectiveness.AIModelTraining)
	ProtectImage.ProtectImageResponseAddOverall(builder, result.Effectiveness.Overall)
	response := ProtectImage.ProtectImageResponseEnd(builder)
	builder.Finish(response)

	return builder.FinishedBytes()
}
