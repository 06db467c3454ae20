package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VistorGiese/accounts-service/internal/apperrors"
	"github.com/VistorGiese/accounts-service/internal/logger"
)

// respondError writes the uniform failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// respondServiceError maps a service error to its status code and
// user-facing message. Internal errors are logged; the caller only sees a
// generic message.
func respondServiceError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusBadRequest, "username already exists")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "user not found")
	default:
		log.Error("request failed", "path", c.FullPath(), "error", err.Error())
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
