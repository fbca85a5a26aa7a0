package httputil

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

// CORSMiddleware creates CORS middleware that handles preflight requests
// and adds appropriate CORS headers to responses.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	originsSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originsSet[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if originsSet[origin] || originsSet["*"] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Max-Age", "86400")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type contextKey string

// EmailKey stores the verified subject email of the request.
const EmailKey contextKey = "email"

// TokenVerifier checks a bearer token and returns the subject email.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (email string, err error)
}

// AdminChecker reports whether the given email belongs to an admin user.
// The lookup goes to the user store on every call; tokens carry no role
// claim, so a role change takes effect on the next request.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AuthMiddleware verifies the Authorization header and attaches the
// subject email to the request context.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				Error(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				Error(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			email, err := verifier.VerifyToken(r.Context(), parts[1])
			if err != nil {
				Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), EmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route on the caller's stored role. Must run after
// AuthMiddleware.
func RequireAdmin(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := GetEmail(r.Context())
			if email == "" {
				Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			admin, err := checker.IsAdmin(r.Context(), email)
			if err != nil {
				HandleError(r.Context(), w, err, nil)
				return
			}
			if !admin {
				Error(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetEmail extracts the verified email from context.
func GetEmail(ctx context.Context) string {
	if email, ok := ctx.Value(EmailKey).(string); ok {
		return email
	}
	return ""
}

// RateLimitMiddleware applies a process-wide token bucket to a route.
func RateLimitMiddleware(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				Error(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
