package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/common"
)

func TestAuthLogin_ReturnsTokenPairAndUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "ana@example.com", req.Email)

		json.NewEncoder(w).Encode(models.AuthResponse{
			AccessToken:  "acc",
			RefreshToken: "ref",
			User:         models.User{ID: "u1", Email: req.Email},
		})
	}))
	defer server.Close()

	c := NewAuthClient(server.URL, time.Second, nil)
	resp, err := c.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "secreto"})
	require.NoError(t, err)

	assert.Equal(t, "acc", resp.AccessToken)
	assert.Equal(t, "ref", resp.RefreshToken)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestAuthLogin_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"credenciales incorrectas"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewAuthClient(server.URL, time.Second, nil)
	_, err := c.Login(context.Background(), models.LoginRequest{Email: "x", Password: "y"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAuthLogout_SendsBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewAuthClient(server.URL, time.Second, func() string { return "tok" })
	require.NoError(t, c.Logout(context.Background()))
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestAuthRefresh_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewAuthClient(server.URL, time.Second, nil)
	_, err := c.Refresh(context.Background(), "ref")
	assert.ErrorIs(t, err, common.ErrUnavailable)
}
