package service

import (
	"errors"
	"time"

	"github.com/audwofla/Aramalyze/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

const adminRole = "admin"

var (
	ErrAuthDisabled = errors.New("admin auth is disabled: no JWT secret configured")
	ErrInvalidToken = errors.New("invalid token")
	ErrNotAdmin     = errors.New("admin role required")
)

type AuthService struct {
	cfg *config.Config
	now func() time.Time
}

func NewAuthService(cfg *config.Config, now func() time.Time) *AuthService {
	return &AuthService{cfg: cfg, now: now}
}

// IssueAdminToken signs a token allowed to trigger loads.
func (s *AuthService) IssueAdminToken(subject string, ttl time.Duration) (string, error) {
	if s.cfg.JWTSecret == "" {
		return "", ErrAuthDisabled
	}

	claims := jwt.MapClaims{
		"sub":  subject,
		"role": adminRole,
		"exp":  s.now().Add(ttl).Unix(),
		"iat":  s.now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) ValidateToken(tokenString string) (*jwt.MapClaims, error) {
	if s.cfg.JWTSecret == "" {
		return nil, ErrAuthDisabled
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, ErrInvalidToken
}

// RequireAdmin validates tokenString and returns its subject.
func (s *AuthService) RequireAdmin(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	if role, _ := (*claims)["role"].(string); role != adminRole {
		return "", ErrNotAdmin
	}

	sub, _ := (*claims)["sub"].(string)
	return sub, nil
}
