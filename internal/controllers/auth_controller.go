package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"waypath-be/internal/common"
	"waypath-be/internal/models"
	"waypath-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := ac.authService.Register(c.Request.Context(), &req); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) || errors.Is(err, common.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, models.RegisterResponse{OK: true})
}

// Login handles POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	profile, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{OK: true, User: *profile})
}
