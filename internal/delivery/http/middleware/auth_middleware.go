package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminAuth guards the mutating endpoints. This is a single-owner API,
// so there is no user table: a valid HS256 token signed with the admin
// secret is the whole story.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if cfg.AdminJWTSecret == "" {
			response.Error(c, http.StatusUnauthorized, "Admin access is not configured", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.AdminJWTSecret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}
		sub, _ := claims["sub"].(string)
		c.Set(string(domain.KeyAdminSubject), sub)

		c.Next()
	}
}
