package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VistorGiese/accounts-service/internal/logger"
	"github.com/VistorGiese/accounts-service/internal/repository"
)

// UserHandler serves read-only views over the user store.
type UserHandler struct {
	userRepo repository.UserRepository
	logger   *logger.Logger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userRepo repository.UserRepository, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
		logger:   logger,
	}
}

// List godoc
// @Summary List users
// @Description List all registered users without password hashes
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userRepo.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(users),
		"users":   users,
	})
}

// GetByID godoc
// @Summary Get user by id
// @Description Look up a single user by numeric id
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	// Non-numeric ids resolve like any other absent record.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user.Public(),
	})
}
