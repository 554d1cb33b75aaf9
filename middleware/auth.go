package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"eldercare/config"
	"eldercare/models"
	"eldercare/response"
	"eldercare/services"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// AdminAuthMiddleware accepts only admin tokens whose account is still
// active, and stores adminID on the context.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		info, err := services.ParseToken(tokenString)
		if err != nil || info.Type != "admin" {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		var admin models.Admin
		if err := config.DB.Where("id = ? AND is_active = ?", info.ID, true).First(&admin).Error; err != nil {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set("adminID", admin.ID)
		c.Set("adminRole", admin.Role)
		c.Next()
	}
}

// AuthMiddleware accepts user tokens, optionally restricted to roles,
// and stores userID and userRole on the context.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		info, err := services.ParseToken(tokenString)
		if err != nil || info.Type != "user" {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == info.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c, "")
				c.Abort()
				return
			}
		}

		c.Set("userID", info.ID)
		c.Set("userRole", info.Role)
		c.Next()
	}
}
