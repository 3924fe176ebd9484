package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

// tokenRepository is the SQL implementation of [TokenRepository] over the
// "auth_tokens" table. A user owns at most one token.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateToken inserts key for userID unless the user already has a
// token, then reads back whichever token is stored. Concurrent callers for
// the same user therefore all observe the same key.
func (r *tokenRepository) GetOrCreateToken(ctx context.Context, userID int64, key string) (models.Token, error) {
	log := logger.FromContext(ctx)

	insertQuery, insertArgs, err := buildInsertTokenQuery(userID, key)
	if err != nil {
		log.Err(err).Str("func", "tokenRepository.GetOrCreateToken").Msg("failed to build insert query")
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	selectQuery, selectArgs, err := buildSelectTokenQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "tokenRepository.GetOrCreateToken").Msg("failed to build select query")
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return models.Token{}, ErrNotFound
		}

		log.Err(err).Str("func", "tokenRepository.GetOrCreateToken").Int64("user_id", userID).Msg("failed to insert token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var token models.Token
	err = r.db.QueryRowContext(ctx, selectQuery, selectArgs...).Scan(&token.Key, &token.UserID, &token.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Token{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "tokenRepository.GetOrCreateToken").Int64("user_id", userID).Msg("failed to select token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

// GetUserByToken returns the user the token key is bound to.
func (r *tokenRepository) GetUserByToken(ctx context.Context, key string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByTokenQuery(key)
	if err != nil {
		log.Err(err).Str("func", "tokenRepository.GetUserByToken").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "tokenRepository.GetUserByToken").Msg("failed to select token owner")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
