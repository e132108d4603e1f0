package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCSRF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	allowedOrigins := []string{
		"http://localhost:3000",
		"https://trails.example.com",
	}

	tests := []struct {
		name       string
		method     string
		origin     string
		referer    string
		wantStatus int
	}{
		// Safe methods pass without validation
		{
			name:       "GET request passes without headers",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
		{
			name:       "HEAD request passes without headers",
			method:     http.MethodHead,
			wantStatus: http.StatusOK,
		},
		{
			name:       "OPTIONS request passes without headers",
			method:     http.MethodOptions,
			wantStatus: http.StatusOK,
		},
		// Origin header validation
		{
			name:       "POST with allowed origin passes",
			method:     http.MethodPost,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with allowed origin trailing slash passes",
			method:     http.MethodPost,
			origin:     "http://localhost:3000/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with allowed origin case insensitive passes",
			method:     http.MethodPost,
			origin:     "HTTP://LOCALHOST:3000",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with disallowed origin blocked",
			method:     http.MethodPost,
			origin:     "https://evil.example.com",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "DELETE with disallowed origin blocked",
			method:     http.MethodDelete,
			origin:     "https://evil.example.com",
			wantStatus: http.StatusForbidden,
		},
		// Referer fallback when Origin is absent
		{
			name:       "POST with allowed referer passes",
			method:     http.MethodPost,
			referer:    "https://trails.example.com/trails/1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST with disallowed referer blocked",
			method:     http.MethodPost,
			referer:    "https://evil.example.com/page",
			wantStatus: http.StatusForbidden,
		},
		// Non-browser clients carry neither header
		{
			name:       "POST without browser context passes",
			method:     http.MethodPost,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CSRF(allowedOrigins))
			router.Any("/resource", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/resource", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
