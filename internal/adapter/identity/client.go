package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"
)

// Client talks to the managed users service that owns OAuth and sessions.
// Every call is authenticated with the service API key; user/device tokens
// are forwarded per request and never cached here.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  ports.LoggerPort
}

func NewClient(baseURL, apiKey string, logger ports.LoggerPort) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type redirectURLResponse struct {
	RedirectURL string `json:"redirect_url"`
}

type exchangeRequest struct {
	Code string `json:"code"`
}

type exchangeResponse struct {
	SessionToken string `json:"session_token"`
}

type userResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	GoogleUserData struct {
		Name    string `json:"name"`
		Picture string `json:"picture"`
	} `json:"google_user_data"`
}

func (c *Client) OAuthRedirectURL(ctx context.Context, provider string) (string, error) {
	var out redirectURLResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/oauth/%s/redirect_url", provider), "", nil, &out)
	if err != nil {
		return "", err
	}
	return out.RedirectURL, nil
}

func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	var out exchangeResponse
	err := c.do(ctx, http.MethodPost, "/sessions", "", &exchangeRequest{Code: code}, &out)
	if err != nil {
		return "", err
	}
	return out.SessionToken, nil
}

func (c *Client) GetCurrentUser(ctx context.Context, token string) (*domain.Identity, error) {
	var out userResponse
	err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &out)
	if err != nil {
		return nil, err
	}
	return &domain.Identity{
		ID:          out.ID,
		Email:       out.Email,
		DisplayName: out.GoogleUserData.Name,
		Picture:     out.GoogleUserData.Picture,
	}, nil
}

func (c *Client) DeleteSession(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/sessions/current", token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, bearer string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("identity service unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.ErrUnauthenticated
	case resp.StatusCode >= 400:
		c.logger.Error("Identity service returned an error", map[string]interface{}{
			"status": resp.StatusCode,
			"path":   path,
		})
		return fmt.Errorf("identity service error: status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
