package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/store"
	"github.com/MKhiriev/go-recipe-catalog/internal/utils"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

// authService is the concrete implementation of AuthService.
//
// Tokens are opaque random keys stored in the database, one per user. The
// key is created on the first successful authentication and returned
// unchanged afterwards.
type authService struct {
	userService     UserService
	userRepository  store.UserRepository
	tokenRepository store.TokenRepository

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. Credentials are checked through
// userService.
func NewAuthService(userService UserService, userRepository store.UserRepository, tokenRepository store.TokenRepository, logger *logger.Logger) AuthService {
	return &authService{
		userService:     userService,
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		logger:          logger,
	}
}

// IssueToken authenticates the pair and returns the token of the user,
// creating it on first use. The last login time is updated on success.
//
// Returns ErrInvalidCredentials when the pair does not authenticate an
// active user.
func (a *authService) IssueToken(ctx context.Context, email, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, ok, err := a.userService.Authenticate(ctx, email, password)
	if err != nil {
		return models.Token{}, err
	}
	if !ok {
		return models.Token{}, ErrInvalidCredentials
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		log.Err(err).Str("func", "authService.IssueToken").Msg("error generating token key")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := a.tokenRepository.GetOrCreateToken(ctx, user.UserID, key)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error storing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.userRepository.SetLastLogin(ctx, user.UserID); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error updating last login")
		return models.Token{}, fmt.Errorf("error updating last login: %w", err)
	}

	return token, nil
}

// Resolve returns the active user owning key.
//
// Any failure to authenticate is normalised to ErrAuthentication so that
// callers do not need to inspect storage errors; only unexpected storage
// failures are returned as is.
func (a *authService) Resolve(ctx context.Context, key string) (models.User, error) {
	if !utils.IsValidTokenKey(key) {
		return models.User{}, ErrAuthentication
	}

	user, err := a.tokenRepository.GetUserByToken(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrAuthentication
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.Resolve").Msg("token lookup failed")
		return models.User{}, fmt.Errorf("token lookup failed: %w", err)
	}

	if !user.IsActive {
		return models.User{}, fmt.Errorf("%w: user inactive or deleted", ErrAuthentication)
	}

	return user, nil
}
