package controllers

import (
	"net/http"

	"github.com/Serdar-Sara/FitnessTracker/services"
	"github.com/Serdar-Sara/FitnessTracker/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	Mailer utils.EmailSender
	Log    *zap.Logger
}

func NewAuthController(mailer utils.EmailSender, log *zap.Logger) *AuthController {
	return &AuthController{Mailer: mailer, Log: log}
}

type RegisterInput struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
	FullName string `json:"full_name" form:"full_name" binding:"required"`
}

func (h *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	user, err := services.RegisterUser(input.Email, input.Password, input.FullName)
	if err != nil {
		h.Log.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	if err := h.Mailer.Send(user.Email, "Welcome to Fitness Tracker",
		"Your account is ready. Log your first workout today."); err != nil {
		h.Log.Warn("welcome email failed", zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (h *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	token, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
