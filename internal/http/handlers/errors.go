package handlers

import (
	"net/http"

	"fleetrecord/internal/domain"
	"fleetrecord/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Rejections and
// persistence failures keep their original message so the caller can tell
// "nothing happened" from "partially happened".
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_rejected", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConfig(err):
		respondError(c, http.StatusInternalServerError, "config_malformed", err.Error())
	case domain.IsPersistence(err):
		respondError(c, http.StatusInternalServerError, "persistence_failure", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
