package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestTokenNeedsRefresh(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "plenty of time left",
			token: signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}),
			want:  false,
		},
		{
			name:  "inside the leeway window",
			token: signedToken(t, jwt.MapClaims{"exp": now.Add(30 * time.Second).Unix()}),
			want:  true,
		},
		{
			name:  "already expired",
			token: signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}),
			want:  true,
		},
		{
			name:  "no exp claim",
			token: signedToken(t, jwt.MapClaims{"userId": "u1"}),
			want:  true,
		},
		{
			name:  "not a jwt",
			token: "garbage",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenNeedsRefresh(tt.token, now))
		})
	}
}
