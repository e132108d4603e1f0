package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	cookies     *CookieHelper
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, cookies *CookieHelper) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary User login
// @Description Verify credentials with the identity provider and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "User not found.")
		default:
			logAndRespondError(c, http.StatusInternalServerError, err, "login failed")
		}
		return
	}

	h.cookies.SetSessionCookie(c, sess.Token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    sess,
	})
}

// Logout godoc
// @Summary User logout
// @Description Close the caller's session and clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := h.cookies.GetSessionToken(c)

	email, err := h.authService.Logout(token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingToken):
			respondError(c, http.StatusBadRequest, "Missing session ID.")
		case errors.Is(err, service.ErrNoActiveSession):
			respondError(c, http.StatusNotFound, "No active session found.")
		default:
			logAndRespondError(c, http.StatusInternalServerError, err, "logout failed")
		}
		return
	}

	h.cookies.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User %s logged out successfully.", email),
	})
}

// AuthStatus godoc
// @Summary Check authentication status
// @Description Report whether the given email has an active session
// @Tags auth
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /auth-status [get]
func (h *AuthHandler) AuthStatus(c *gin.Context) {
	email := c.Query("email")

	sess, ok := h.authService.AuthStatus(email)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "authenticated",
		"user":   sess,
	})
}
