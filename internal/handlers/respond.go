// Package handlers contains HTTP request handlers for the trails service.
package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// respondError writes a JSON error body with the given status.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// logAndRespondError logs the underlying error and writes a sanitized
// message to the client.
func logAndRespondError(c *gin.Context, status int, err error, message string) {
	slog.Error(message, "error", err, "path", c.FullPath(), "method", c.Request.Method)
	respondError(c, status, message)
}
