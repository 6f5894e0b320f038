package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/services"
)

// AuthController handles registration, verification and token endpoints.
type AuthController struct {
	authService services.AuthService
}

func NewAuthController(svc services.AuthService) *AuthController {
	return &AuthController{authService: svc}
}

// Register handles POST /auth/register
func (ac *AuthController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := ac.authService.Register(ctx.Request.Context(), req); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Verification code sent to your email"})
}

// VerifyOTP handles POST /auth/verify
func (ac *AuthController) VerifyOTP(ctx *gin.Context) {
	var req models.VerifyOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := ac.authService.VerifyOTP(ctx.Request.Context(), req.Email, req.Code); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Account verified"})
}

// Login handles POST /auth/login
func (ac *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	tokens, user, svcErr := ac.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tokens": tokens, "user": user})
}

// Refresh handles POST /auth/refresh
func (ac *AuthController) Refresh(ctx *gin.Context) {
	var req models.RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	tokens, svcErr := ac.authService.Refresh(ctx.Request.Context(), req.RefreshToken)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tokens": tokens})
}
