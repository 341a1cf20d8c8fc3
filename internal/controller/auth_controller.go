package controller

import (
	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/service"
	"cyber_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterRequest defines model for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines model for login
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    model.UserSummary `json:"user"`
}

// Register godoc
// @Summary Register a new account
// @Description Creates a member account and returns a session token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "Account details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} util.ErrorResponse "Invalid input or duplicate email/username"
// @Failure 500 {object} util.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}

	result, err := c.AuthService.Register(ctx.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, AuthResponse{
		Message: "User registered successfully",
		Token:   result.Token,
		User:    result.User.Summary(),
	})
}

// Login godoc
// @Summary Log in
// @Description Exchanges email and password for a session token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 401 {object} util.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}

	result, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, AuthResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User.Summary(),
	})
}
