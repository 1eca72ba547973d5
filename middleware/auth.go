package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/utils"
)

const principalKey = "principal"

// Authenticate checks the bearer token and stores the claims on the context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Authorization token required")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(authz, "Bearer "))
		if err != nil || claims.Scope != utils.ScopeAccess {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(principalKey, claims)
		c.Next()
	}
}

// Principal returns the claims set by Authenticate, or nil.
func Principal(c *gin.Context) *utils.Claims {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*utils.Claims)
	return claims
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := Principal(c)
		if p == nil || (p.Role != "admin" && p.Role != "superadmin") {
			utils.JSONError(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := Principal(c)
		if p == nil || p.Role != "superadmin" {
			utils.JSONError(c, http.StatusForbidden, "Super admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
