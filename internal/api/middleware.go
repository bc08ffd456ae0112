/**
 * @description
 * This file contains custom middleware for the HTTP router: bearer token
 * authentication backed by the auth service, and distributed rate limiting on
 * the command surface.
 *
 * @dependencies
 * - context, net/http, strings: Standard Go libraries.
 * - internal/app: Token validation and rate limiter.
 */

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/corebank/ledger-service/internal/app"
)

// usernameContextKey is a custom type for the context key to avoid collisions.
type usernameContextKey string

const authenticatedUsernameKey usernameContextKey = "authenticatedUsername"

// AuthenticatedUsername returns the username placed in the context by
// AuthMiddleware.
func AuthenticatedUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(authenticatedUsernameKey).(string)
	return username, ok && username != ""
}

// AuthMiddleware validates the bearer token on every request and stores the
// authenticated username in the request context.
func AuthMiddleware(auth *app.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeMiddlewareError(w, http.StatusUnauthorized, "authorization header required")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				writeMiddlewareError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			username, err := auth.ValidateToken(tokenString)
			if err != nil {
				writeMiddlewareError(w, http.StatusUnauthorized, "not authorized")
				return
			}

			ctx := context.WithValue(r.Context(), authenticatedUsernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RateLimitMiddleware throttles the command surface per authenticated
// username within a one minute window. A nil limiter or a non-positive limit
// disables throttling.
func RateLimitMiddleware(limiter app.CommandRateLimiter, limitPerMinute int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || limitPerMinute <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			subject, ok := AuthenticatedUsername(r.Context())
			if !ok {
				// Unauthenticated requests never reach here; fall back to the
				// caller address rather than letting them share one bucket.
				subject = remoteAddr(r)
			}

			count, retryAfter, err := limiter.ConsumeRateLimit(r.Context(), "command", subject, limitPerMinute, time.Minute)
			if err != nil {
				log.Printf("level=warn component=rate_limit msg=\"limiter unavailable; allowing request\" subject=%s err=%v", subject, err)
				next.ServeHTTP(w, r)
				return
			}
			if count > limitPerMinute {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeMiddlewareError(w, http.StatusTooManyRequests, "too many commands; slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CommandLogMiddleware logs every incoming command body before handling and
// restores it for the handler. Bodies are capped at 1 MiB.
func CommandLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			writeMiddlewareError(w, http.StatusBadRequest, "unable to read request body")
			return
		}
		r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		username, _ := AuthenticatedUsername(r.Context())
		log.Printf("level=info component=api msg=\"command received\" path=%s username=%s body=%s",
			r.URL.Path, username, bytes.TrimSpace(body))

		next.ServeHTTP(w, r)
	})
}

func remoteAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeMiddlewareError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
