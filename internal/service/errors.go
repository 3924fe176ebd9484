package service

import "errors"

var (
	// ErrAuthentication is returned when a token is missing, malformed,
	// unknown or belongs to an inactive user.
	ErrAuthentication = errors.New("invalid token")

	// ErrInvalidCredentials is returned when an email and password pair
	// does not authenticate an active user.
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")

	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
