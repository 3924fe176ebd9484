// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not consist of a known scheme and a single token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedAuthScheme is returned when the scheme is neither
	// "Bearer" nor "Token".
	ErrUnsupportedAuthScheme = errors.New("unsupported `Authorization` scheme")
)

// Messages returned in the "detail" field of error responses.
const (
	msgNotAuthenticated   = "Authentication credentials were not provided."
	msgInvalidToken       = "Invalid token."
	msgInvalidHeader      = "Invalid token header."
	msgNotFound           = "Not found."
	msgServerError        = "A server error occurred."
	msgInvalidCredentials = "Unable to authenticate with provided credentials."
	msgMethodNotAllowed   = "Method \"%s\" not allowed."
	msgJSONParseError     = "JSON parse error - %s"
)
