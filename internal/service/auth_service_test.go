package service_test

import (
	"testing"
	"time"

	"github.com/audwofla/Aramalyze/internal/service"
	"github.com/audwofla/Aramalyze/internal/testutil"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_IssueAndRequireAdmin(t *testing.T) {
	cfg := testutil.TestConfig(t.TempDir())
	authService := service.NewAuthService(cfg, time.Now)

	token, err := authService.IssueAdminToken("ops", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := authService.RequireAdmin(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", subject)
}

func TestAuthService_RequireAdmin_Rejects(t *testing.T) {
	cfg := testutil.TestConfig(t.TempDir())
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	authService := service.NewAuthService(cfg, clock)

	sign := func(claims jwt.MapClaims, secret string) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name: "non-admin role",
			token: sign(jwt.MapClaims{
				"sub":  "viewer",
				"role": "viewer",
				"exp":  now.Add(time.Hour).Unix(),
			}, cfg.JWTSecret),
			wantErr: service.ErrNotAdmin,
		},
		{
			name: "expired",
			token: sign(jwt.MapClaims{
				"sub":  "ops",
				"role": "admin",
				"exp":  now.Add(-time.Minute).Unix(),
			}, cfg.JWTSecret),
			wantErr: jwt.ErrTokenExpired,
		},
		{
			name: "wrong secret",
			token: sign(jwt.MapClaims{
				"sub":  "ops",
				"role": "admin",
				"exp":  now.Add(time.Hour).Unix(),
			}, "some-other-secret"),
			wantErr: jwt.ErrTokenSignatureInvalid,
		},
		{
			name:    "garbage",
			token:   "not-a-token",
			wantErr: jwt.ErrTokenMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authService.RequireAdmin(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_IssuedTokenExpires(t *testing.T) {
	cfg := testutil.TestConfig(t.TempDir())
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	authService := service.NewAuthService(cfg, func() time.Time { return now })

	token, err := authService.IssueAdminToken("ops", time.Minute)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = authService.RequireAdmin(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestAuthService_DisabledWithoutSecret(t *testing.T) {
	cfg := testutil.TestConfig(t.TempDir())
	cfg.JWTSecret = ""
	authService := service.NewAuthService(cfg, time.Now)

	_, err := authService.IssueAdminToken("ops", time.Hour)
	assert.ErrorIs(t, err, service.ErrAuthDisabled)

	_, err = authService.RequireAdmin("anything")
	assert.ErrorIs(t, err, service.ErrAuthDisabled)
}
