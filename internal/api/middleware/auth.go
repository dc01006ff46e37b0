package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/audwofla/Aramalyze/internal/logger"
	"github.com/audwofla/Aramalyze/internal/service"
)

type contextKey string

const (
	SubjectKey contextKey = "subject"
)

// AdminAuth admits requests carrying a bearer token with the admin role.
func AdminAuth(authService *service.AuthService, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Warn("[middleware.AdminAuth] missing authorization header")
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("[middleware.AdminAuth] invalid authorization header format")
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}

			subject, err := authService.RequireAdmin(parts[1])
			if err != nil {
				log.Warn("[middleware.AdminAuth] token rejected", "error", err)
				if errors.Is(err, service.ErrNotAdmin) {
					http.Error(w, "Admin role required", http.StatusForbidden)
					return
				}
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok
}
