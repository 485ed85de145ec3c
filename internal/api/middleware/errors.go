package middleware

import (
	"errors"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyImage      = errors.New("image upload is empty")
	ErrImageTooLarge   = errors.New("image exceeds the upload limit")
	ErrEmptyReportText = errors.New("report text is required")
	ErrInvalidTopK     = errors.New("top_k must be a positive integer")
)

type ErrorResponse struct {
	Error   string `json:"error" description:"Error message"`
	Code    int    `json:"code" description:"HTTP status code"`
	Details string `json:"details,omitempty" description:"Additional error details"`
}

func HandleError(resp *restful.Response, err error, status int) {
	errResp := ErrorResponse{
		Error: err.Error(),
		Code:  status,
	}
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		errResp.Error = unwrapped.Error()
		errResp.Details = err.Error()
	}

	if status >= 500 {
		log.Error().Err(err).Int("status", status).Msg("Request failed")
	}

	if writeErr := resp.WriteHeaderAndEntity(status, errResp); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}
