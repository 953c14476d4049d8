package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"content-site-api/internal/domain"
	"content-site-api/internal/logger"
	"content-site-api/internal/middleware"
	"content-site-api/internal/validator"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse acknowledges an operation that has no record to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps err to a status: validation failures to 400, missing
// records to 404 and everything else to 500. The error is logged with the
// request id; internal details never reach the client.
func respondError(c *gin.Context, err error, resource string) {
	log := logger.WithFields(
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("resource", resource),
	)

	switch {
	case validator.IsValidationError(err):
		log.Warn("Rejected invalid input", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		log.Warn("Record not found", "path", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, ErrorResponse{Message: resource + " not found"})
	default:
		log.Error("Request failed", "method", c.Request.Method,
			"path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}
