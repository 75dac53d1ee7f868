package middleware

import (
	"net/http"

	"github.com/carbyfah/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
)

// RequireWrite rejects CONSULTA accounts on mutating endpoints
func RequireWrite() gin.HandlerFunc {
	return requireLevel(func(level identity.AccessLevel) bool {
		return level == identity.AccessAdmin || level == identity.AccessOperator
	})
}

// RequireAdmin restricts an endpoint to ADMINISTRADOR accounts
func RequireAdmin() gin.HandlerFunc {
	return requireLevel(func(level identity.AccessLevel) bool {
		return level == identity.AccessAdmin
	})
}

func requireLevel(allowed func(identity.AccessLevel) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		level := identity.AccessLevel(GetAccessLevel(c))
		if level == "" || !allowed(level) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Insufficient access level for this operation",
				},
			})
			return
		}
		c.Next()
	}
}
