package handlers

import (
	"net/http"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CookieHelper manages the session cookie.
type CookieHelper struct {
	secure bool
}

// NewCookieHelper creates a new cookie helper. secure controls the Secure
// attribute and should only be disabled for local development.
func NewCookieHelper(secure bool) *CookieHelper {
	return &CookieHelper{secure: secure}
}

// SetSessionCookie stores the session token as an HTTP-only cookie.
// The cookie has no max-age: sessions live until logout or restart.
func (h *CookieHelper) SetSessionCookie(c *gin.Context, token string) {
	h.setCookie(c, token, 0)
}

// ClearSessionCookie removes the session cookie.
func (h *CookieHelper) ClearSessionCookie(c *gin.Context) {
	h.setCookie(c, "", -1)
}

// GetSessionToken retrieves the session token from the cookie, or "" if
// no cookie was presented.
func (h *CookieHelper) GetSessionToken(c *gin.Context) string {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

func (h *CookieHelper) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		value,
		maxAge,
		"/",
		"",
		h.secure,
		true, // httpOnly - always true for session cookies
	)
}
