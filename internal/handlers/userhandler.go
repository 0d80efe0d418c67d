package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasijobz/backend/internal/dtos"
	"github.com/kasijobz/backend/internal/services"
)

type UserHandler struct {
	UserService *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{UserService: users}
}

// CreateUser is the POST /users endpoint. The response never carries
// the password hash.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dtos.UserCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and password are required", "error": err.Error()})
		return
	}
	user, err := h.UserService.Create(&req)
	if err != nil {
		respondError(c, "Error saving user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User created successfully", "user": user})
}

// GetUsers is the GET /users endpoint
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.UserService.List()
	if err != nil {
		respondError(c, "Error fetching users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}
