package transport

import (
	"context"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
)

type contextKey int

const authTokenKey contextKey = iota

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}

// authMiddleware verifies the bearer token and stores the resolved identity
// in the request context. The token subject becomes the caller's userId.
func authMiddleware(provider model.IdentityProvider) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization header not provided"})
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: `invalid authorization format, expected "Bearer <token>"`})
				return
			}

			token, err := provider.VerifyToken(r.Context(), parts[1])
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), authTokenKey, token)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// callerID returns the authenticated uid, or "" on unauthenticated routes.
func callerID(r *http.Request) string {
	token, ok := r.Context().Value(authTokenKey).(*model.AuthToken)
	if !ok {
		return ""
	}
	return token.UID
}
