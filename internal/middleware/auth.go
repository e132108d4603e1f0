// Package middleware provides HTTP middleware for the trails service.
package middleware

import (
	"net/http"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/permissions"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/service"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/session"
	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the session token cookie.
const SessionCookie = "session_id"

// callerKey is the gin context key under which the resolved caller is stored.
const callerKey = "caller"

// RequirePermission resolves the caller from the session cookie and checks
// that the caller's role grants the permission. On success the caller is
// stored in the context for the handler.
func RequirePermission(auth service.AuthService, perm permissions.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookie)

		caller, ok := auth.ResolveCaller(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "User is not logged in.",
			})
			return
		}

		if !permissions.RoleHas(caller.Role, perm) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Forbidden. You do not have permission to access this resource.",
			})
			return
		}

		c.Set(callerKey, caller)
		c.Next()
	}
}

// CallerFrom returns the caller stored by RequirePermission.
func CallerFrom(c *gin.Context) (*session.Session, bool) {
	value, exists := c.Get(callerKey)
	if !exists {
		return nil, false
	}
	caller, ok := value.(*session.Session)
	return caller, ok
}
