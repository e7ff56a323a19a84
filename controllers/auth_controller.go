package controllers

import (
	"net/http"

	"github.com/diploma-nedashkivska/pet-care-service/services"
	"github.com/diploma-nedashkivska/pet-care-service/utils"
	"github.com/gin-gonic/gin"
)

type SignUpInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignInInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func SignUp(c *gin.Context) {
	var input SignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(input.Email, input.FullName, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	tokens, err := services.IssueTokens(user)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusCreated, "RegistrationResponseDto", tokens)
}

func SignIn(c *gin.Context) {
	var input SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	tokens, err := services.IssueTokens(user)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "LoginResponseDto", tokens)
}

func RefreshToken(c *gin.Context) {
	var input RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := services.RefreshTokens(input.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Payload(c, http.StatusOK, "TokenRefreshDto", tokens)
}

func Logout(c *gin.Context) {
	var input RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.RevokeRefreshToken(input.RefreshToken); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
