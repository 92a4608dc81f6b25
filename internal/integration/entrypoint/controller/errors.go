// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/color3/backend/internal/domain/error"
	"github.com/color3/backend/internal/integration/entrypoint/dto"
)

// handleDomainError writes the coded domain error carried by err, or a generic 500.
func handleDomainError(ctx *gin.Context, err error) {
	var (
		colorErr      *domainerror.ColorError
		submissionErr *domainerror.SubmissionError
		triColorErr   *domainerror.TriColorError
		aggregateErr  *domainerror.AggregateError
	)

	switch {
	case errors.As(err, &colorErr):
		writeError(ctx, err, getStatusCodeForColorError(colorErr.Code), colorErr.Message, string(colorErr.Code))
	case errors.As(err, &submissionErr):
		writeError(ctx, err, getStatusCodeForSubmissionError(submissionErr.Code), submissionErr.Message, string(submissionErr.Code))
	case errors.As(err, &triColorErr):
		writeError(ctx, err, http.StatusBadRequest, triColorErr.Message, string(triColorErr.Code))
	case errors.As(err, &aggregateErr):
		writeError(ctx, err, getStatusCodeForAggregateError(aggregateErr.Code), aggregateErr.Message, string(aggregateErr.Code))
	default:
		writeError(ctx, err, http.StatusInternalServerError, "An internal error occurred", "")
	}
}

func writeError(ctx *gin.Context, err error, status int, message, code string) {
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed",
			"error", err,
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
		)
		message = "An internal error occurred"
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// getStatusCodeForColorError maps color error codes to HTTP status codes.
func getStatusCodeForColorError(code domainerror.ColorErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidHexColor,
		domainerror.ErrCodeFamilyMismatch,
		domainerror.ErrCodeUnknownColorFamily,
		domainerror.ErrCodeMissingHex:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForSubmissionError maps submission error codes to HTTP status codes.
func getStatusCodeForSubmissionError(code domainerror.SubmissionErrorCode) int {
	switch code {
	case domainerror.ErrCodeSubmissionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidArrayLengths,
		domainerror.ErrCodeInvalidColorValue,
		domainerror.ErrCodeInvalidSubmissionID,
		domainerror.ErrCodeInvalidSubmissionPayload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForAggregateError maps aggregate error codes to HTTP status codes.
func getStatusCodeForAggregateError(code domainerror.AggregateErrorCode) int {
	switch code {
	case domainerror.ErrCodeSnapshotNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
