package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/common"
)

// AuthClient talks to the /auth endpoints. It deliberately bypasses the
// Gateway: auth calls never enter the 401-refresh path, so a rejected
// login or an expired refresh token surfaces directly.
type AuthClient struct {
	baseURL string
	http    *http.Client

	// bearer supplies the current access token for the best-effort
	// logout call. May be nil.
	bearer func() string
}

func NewAuthClient(baseURL string, timeout time.Duration, bearer func() string) *AuthClient {
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		bearer:  bearer,
	}
}

// Login exchanges credentials for a token pair and user profile.
func (c *AuthClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return c.postAuth(ctx, "/auth/login", req)
}

// Register creates an account and returns the initial token pair.
func (c *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return c.postAuth(ctx, "/auth/register", req)
}

// Refresh exchanges a refresh token for a fresh token pair.
func (c *AuthClient) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	return c.postAuth(ctx, "/auth/refresh", map[string]string{"refreshToken": refreshToken})
}

// Logout notifies the server that the session ends. The caller treats
// any error as non-fatal; logout is a local operation.
func (c *AuthClient) Logout(ctx context.Context) error {
	_, _, err := c.send(ctx, "/auth/logout", nil)
	return err
}

func (c *AuthClient) postAuth(ctx context.Context, path string, body any) (*models.AuthResponse, error) {
	status, respBody, err := c.send(ctx, path, body)
	if err != nil {
		return nil, err
	}
	if err := mapStatus(status, respBody); err != nil {
		return nil, err
	}

	var auth models.AuthResponse
	if err := json.Unmarshal(respBody, &auth); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	return &auth, nil
}

func (c *AuthClient) send(ctx context.Context, path string, body any) (int, []byte, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return 0, nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != nil {
		if token := c.bearer(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: POST %s: %v", common.ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading response: %v", common.ErrUnavailable, err)
	}
	return resp.StatusCode, respBody, nil
}
