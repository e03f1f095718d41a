// middleware.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements CORS handling and bearer-token admin auth, in
// the idiom of the teacher's go-app/main.go validate() function,
// re-expressed as HMAC-signed JWTs instead of a bare shared secret so
// that the admin route can carry a subject and expiry.

package httpserver

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// cors sets the Access-Control-Allow-* headers and short-circuits
// preflight OPTIONS requests.
func cors(allowedOrigins string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowedOrigins)
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireAdminToken rejects requests whose Authorization header does
// not carry a JWT signed with secret. If secret is empty, the admin
// route is left open (matching the teacher's "no ACCESS_KEY means no
// auth required" convention).
func requireAdminToken(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
