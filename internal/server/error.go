package server

import (
	"errors"
	"net/http"

	"artdisrupt/api"
	"artdisrupt/pkg/disruptor"
	artImage "artdisrupt/pkg/image"
)

var (
	errMalformedFlatbuffer = errors.New("malformed flatbuffer request")

	errRequestBodyDecode = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errRequestTooLarge   = api.Error{Code: "request_too_large", Error: "Request body exceeds the configured limit"}
	errInvalidPreset     = api.Error{Code: "invalid_preset", Error: "Unknown preset, options are minimal, balanced, strong, maximum"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errImageTooLarge     = api.Error{Code: "image_too_large", Error: "Supplied image has too many pixels"}
	errProtect           = api.Error{Code: "protect_error", Error: "An error occurred while protecting the image"}
)

// protectErrorResponse maps an error from the protect flow to a status code and response body.
func protectErrorResponse(err error) (int, api.Error) {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, errRequestTooLarge
	case errors.Is(err, disruptor.ErrInvalidPreset):
		return http.StatusBadRequest, errInvalidPreset
	case errors.Is(err, artImage.ErrNotAnImage), errors.Is(err, artImage.ErrDecode):
		return http.StatusBadRequest, errInvalidImage
	case errors.Is(err, artImage.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, errImageTooLarge
	default:
		return http.StatusInternalServerError, errProtect
	}
}
