package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/utils"
)

// authSchemes lists the accepted "Authorization" schemes, compared
// case-insensitively.
var authSchemes = []string{"bearer", "token"}

// auth is an HTTP middleware that enforces token authentication.
//
// It extracts the key from the "Authorization" header, resolves it via
// [service.AuthService.Resolve], and stores the user in the request context
// under [utils.UserCtxKey]. Requests are rejected with 401 when the header
// is absent, malformed, or the key does not resolve to an active user.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			w.Header().Set("WWW-Authenticate", "Token")
			writeDetail(w, msgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		key, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			w.Header().Set("WWW-Authenticate", "Token")
			writeDetail(w, msgInvalidHeader, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Resolve(ctx, key)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the key from a raw "Authorization" header
// value of the form "<scheme> <key>", where scheme is Bearer or Token.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) == 0 {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme := strings.ToLower(parts[0])
	known := false
	for _, s := range authSchemes {
		if scheme == s {
			known = true
			break
		}
	}
	if !known {
		return "", ErrUnsupportedAuthScheme
	}

	if len(parts) != 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
