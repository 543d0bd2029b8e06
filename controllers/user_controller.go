package controllers

import (
	"net/http"

	"github.com/Serdar-Sara/FitnessTracker/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.GetString("email")

	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
	})
}
