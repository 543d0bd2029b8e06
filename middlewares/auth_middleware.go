// middlewares/auth_middleware.go
package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/Serdar-Sara/FitnessTracker/config"
	"github.com/Serdar-Sara/FitnessTracker/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CurrentUser resolves the bearer token into a user id on the gin
// context when one is present. It never aborts; each handler decides
// whether an anonymous request is acceptable.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, email, ok := resolveUser(c); ok {
			c.Set("userID", userID)
			c.Set("email", email)
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless the request carries a valid token.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, email, ok := resolveUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("userID", userID)
		c.Set("email", email)
		c.Next()
	}
}

func resolveUser(c *gin.Context) (uint, string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return 0, "", false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	email, _ := claims["email"].(string)

	// Prefer the userId claim when the token includes it
	if v, ok := claims["userId"].(float64); ok {
		return uint(v), email, true
	}

	// Fallback: use the email claim and look the user up
	if email == "" {
		return 0, "", false
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return 0, "", false
	}
	return user.ID, email, true
}
