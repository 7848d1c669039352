package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pablomagana/recomenzar/internal/common"
	"github.com/pablomagana/recomenzar/internal/logging"
)

// TokenProvider supplies the session's tokens to the gateway. Refresh
// must be single-flight: concurrent callers share one in-flight refresh
// and receive the same result. HandleRefreshFailure is invoked when a
// refresh fails, so the session can clear itself and tear down local
// notifications.
type TokenProvider interface {
	AccessToken() string
	Refresh(ctx context.Context) (string, error)
	HandleRefreshFailure(ctx context.Context)
}

// Gateway is the authenticated HTTP transport for the backend contract.
// It owns the only retry policy in the client: one replay after a
// successful token refresh on a 401.
type Gateway struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
	log     logging.Logger
}

func NewGateway(baseURL string, timeout time.Duration, tokens TokenProvider, log logging.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "gateway"),
	}
}

// do performs one JSON request against the backend. body and out may be
// nil. On a 401 for a not-yet-replayed request it drives the session's
// refresh and replays once with the new token; every other failure
// propagates unchanged.
func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}

	status, respBody, err := g.send(ctx, method, path, query, payload, g.tokens.AccessToken())
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		token, refreshErr := g.tokens.Refresh(ctx)
		if refreshErr != nil {
			g.log.Warn(ctx, "token refresh failed, clearing session", "error", refreshErr)
			g.tokens.HandleRefreshFailure(ctx)
			return refreshErr
		}

		// Replay once with the new token. A second 401 propagates.
		status, respBody, err = g.send(ctx, method, path, query, payload, token)
		if err != nil {
			return err
		}
	}

	if err := mapStatus(status, respBody); err != nil {
		return err
	}
	return decodeBody(respBody, out)
}

// send issues a single HTTP round trip. Transport failures are wrapped
// as common.ErrUnavailable.
func (g *Gateway) send(ctx context.Context, method, path string, query url.Values, payload []byte, token string) (int, []byte, error) {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s %s: %v", common.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading response: %v", common.ErrUnavailable, err)
	}
	return resp.StatusCode, respBody, nil
}

func (g *Gateway) get(ctx context.Context, path string, query url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, query, nil, out)
}

func (g *Gateway) post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, path, nil, body, out)
}

func (g *Gateway) put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, path, nil, body, out)
}

func (g *Gateway) patch(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (g *Gateway) delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return payload, nil
}

func decodeBody(respBody []byte, out any) error {
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
