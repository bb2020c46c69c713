package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dentalflow/clinic-backend/internal/domain/providers"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

// Client is an HTTP client for the remote auth subsystem. It implements
// providers.AuthProvider against a GoTrue-style API: password grant,
// signup and current-user resolution, all guarded by the service key.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewClient creates a new auth API client
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn exchanges email and password for a token
func (c *Client) SignIn(ctx context.Context, email, password string) (*providers.Token, error) {
	token := &providers.Token{}
	err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/token?grant_type=password", "",
		credentials{Email: email, Password: password}, token)
	if err != nil {
		return nil, err
	}
	return token, nil
}

// SignUp registers a new account
func (c *Client) SignUp(ctx context.Context, email, password string) (*providers.Token, error) {
	token := &providers.Token{}
	err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/signup", "",
		credentials{Email: email, Password: password}, token)
	if err != nil {
		return nil, err
	}
	return token, nil
}

// GetUser resolves the principal behind a token. A rejected or unknown
// token is an absence, not an error.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*providers.Principal, error) {
	if accessToken == "" {
		return nil, nil
	}

	principal := &providers.Principal{}
	err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/user", accessToken, nil, principal)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Type == apperrors.ErrorTypeUnauthorized {
			return nil, nil
		}
		return nil, err
	}
	if principal.ID == "" {
		return nil, nil
	}
	return principal, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint, bearer string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError("failed to encode auth request", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apperrors.NewInternalError("failed to build auth request", err)
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewExternalError("auth service unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized ||
		resp.StatusCode == http.StatusForbidden ||
		resp.StatusCode == http.StatusNotFound:
		// 404 here means the token's subject no longer exists, which is
		// a rejected credential to callers, not a backend fault.
		return apperrors.NewUnauthorizedError("auth service rejected the credential")
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperrors.NewExternalError(
			fmt.Sprintf("auth service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), nil)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.NewExternalError("failed to decode auth response", err)
		}
	}
	return nil
}
