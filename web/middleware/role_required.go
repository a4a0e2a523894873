package middleware

import (
	"net/http"

	"github.com/aurify/priceboard/web/entity"

	"github.com/gin-gonic/gin"
)

// RoleRequired gates a route to the given roles. Requests without attached
// claims, or with a role outside the set, are rejected with 403. Must run
// after JWTAuth in the chain.
func RoleRequired(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		roleVal, exists := c.Get(roleKey)
		role, ok := roleVal.(string)
		if !exists || !ok || !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, entity.Msg{
				Success: false,
				Message: "Access denied. You do not have permission to perform this action.",
			})
			return
		}
		c.Next()
	}
}
