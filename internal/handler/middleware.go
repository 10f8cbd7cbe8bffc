package handler

import (
	"context"
	"net/http"

	"github.com/vasapolrittideah/real-estate-api/internal/auth"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "access_token"

type contextKey struct{}

var userIDKey contextKey

// RequireAuth verifies the session cookie and injects the authenticated
// account id into the request context. Protected routes trust the token's
// embedded identity claim; there is no server-side session lookup.
func RequireAuth(jwtAuth auth.JWTAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			var claims auth.SessionClaims
			if err := jwtAuth.ValidateToken(cookie.Value, &claims); err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDFromContext returns the authenticated account id set by RequireAuth.
func userIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
