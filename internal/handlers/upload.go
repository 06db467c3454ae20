package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VistorGiese/accounts-service/internal/logger"
	"github.com/VistorGiese/accounts-service/internal/middleware"
	"github.com/VistorGiese/accounts-service/internal/storage"
)

// UploadHandler handles authenticated file uploads.
type UploadHandler struct {
	store    storage.FileStore
	maxBytes int64
	logger   *logger.Logger
}

// NewUploadHandler creates a new UploadHandler instance.
func NewUploadHandler(store storage.FileStore, maxBytes int64, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		store:    store,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Upload godoc
// @Summary Upload a file
// @Description Store a multipart file; requires a valid bearer token
// @Tags files
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		// RequireAuth aborts unauthenticated requests before this handler;
		// reaching here without an identity is a wiring mistake.
		respondError(c, http.StatusUnauthorized, "authorization token missing")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file is required")
		return
	}
	if fileHeader.Size > h.maxBytes {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("file exceeds the %d byte limit", h.maxBytes))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "unable to read uploaded file")
		return
	}
	defer f.Close()

	key := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	if err := h.store.Save(c.Request.Context(), key, f, fileHeader.Size); err != nil {
		h.logger.Error("failed to store upload", "key", key, "user_id", userID, "error", err.Error())
		respondError(c, http.StatusInternalServerError, "failed to store file")
		return
	}

	h.logger.Info("file uploaded", "key", key, "user_id", userID, "size", fileHeader.Size)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "file uploaded successfully",
		"file": gin.H{
			"name":       fileHeader.Filename,
			"size":       fileHeader.Size,
			"key":        key,
			"uploadedBy": userID,
		},
	})
}
