// Package middleware provides gin middleware for the priceboard API:
// bearer-token authentication, role gating and CORS.
package middleware

import (
	"net/http"
	"strings"

	"github.com/aurify/priceboard/web/entity"
	"github.com/aurify/priceboard/web/service"

	"github.com/gin-gonic/gin"
)

const (
	claimsKey = "user"
	roleKey   = "role"
)

func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// JWTAuth rejects requests without a valid bearer token and attaches the
// decoded claims to the context.
func JWTAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Msg{
				Success: false,
				Message: "Access denied. No token provided.",
			})
			return
		}

		claims, err := authService.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Msg{
				Success: false,
				Message: "Invalid or expired token. Please login again.",
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// OptionalJWTAuth attaches claims when a valid bearer token is present and
// silently continues otherwise. It never rejects a request.
func OptionalJWTAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := extractBearerToken(c); ok {
			if claims, err := authService.VerifyToken(token); err == nil {
				c.Set(claimsKey, claims)
				c.Set(roleKey, claims.Role)
			}
		}
		c.Next()
	}
}

// GetClaims returns the claims attached by JWTAuth, or nil when the request
// is unauthenticated.
func GetClaims(c *gin.Context) *service.Claims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*service.Claims)
	return claims
}
