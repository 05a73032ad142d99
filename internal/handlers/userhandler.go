package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type UserService interface {
	Create(ctx context.Context, req dtos.UserCreationRequest) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, username string, req dtos.UserUpdateRequest) (*models.User, error)
	Delete(ctx context.Context, username string) error
	Apply(ctx context.Context, username string, jobID int64) error
}

type UserHandler struct {
	Service UserService
}

func NewUserHandler(s UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// CreateUser is the POST /users endpoint (admin only); unlike
// registration it may create admin accounts.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dtos.UserCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	user, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// ListUsers is the GET /users endpoint (admin only).
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser is the GET /users/:username endpoint (self or admin).
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.Service.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUser is the PATCH /users/:username endpoint (self or admin).
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dtos.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	user, err := h.Service.Update(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser is the DELETE /users/:username endpoint (self or admin).
func (h *UserHandler) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	if err := h.Service.Delete(c.Request.Context(), username); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": username})
}

// Apply is the POST /users/:username/jobs/:id endpoint (self or admin).
func (h *UserHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job id must be an integer"})
		return
	}
	if err := h.Service.Apply(c.Request.Context(), c.Param("username"), jobID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"applied": jobID})
}
