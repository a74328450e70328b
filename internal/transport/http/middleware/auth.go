package middleware

import (
	"context"
	"net/http"
	"strings"

	"payweek/internal/auth"
	"payweek/internal/transport/http/api"
)

const subjectKey ctxKey = "subject"

// RequireAuth rejects requests that do not carry a valid bearer token
// signed with secret. An empty secret disables the check.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "bearer token required", GetRequestID(r.Context()))
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid token", GetRequestID(r.Context()))
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSubject(ctx context.Context) string {
	if value, ok := ctx.Value(subjectKey).(string); ok {
		return value
	}
	return ""
}
