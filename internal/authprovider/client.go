// Package authprovider talks to the external identity provider that owns
// credential verification. The service never stores passwords locally.
package authprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Verifier checks a credential pair against the identity provider.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (bool, error)
}

// Client is the HTTP implementation of Verifier.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a provider client for the given endpoint.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Verify posts the credentials to the provider. The provider signals a
// valid pair with HTTP 200; any other status means rejection.
func (c *Client) Verify(ctx context.Context, email, password string) (bool, error) {
	body, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return false, fmt.Errorf("failed to marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return false, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
