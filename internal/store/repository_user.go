package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation, lookup and profile updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Name,
		&user.Password,
		&user.IsActive,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.LastLogin,
		&user.CreatedAt,
	)
	return user, err
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt). Timestamps
// are read back with a plain SELECT, which lets the SQLite driver parse them
// by their declared column type.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var userID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&userID); err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetUserByID(ctx, userID)
}

// GetUserByEmail retrieves the user with exactly the given (normalized) email.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, "userRepository.GetUserByEmail", sq.Eq{"email": email})
}

// GetUserByID retrieves the user with the given identifier.
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.getUser(ctx, "userRepository.GetUserByID", sq.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to select user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of update and returns the stored
// user. An empty update returns the user unchanged.
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.GetUserByID(ctx, userID)
	}

	query, args, err := buildUpdateUserQuery(userID, update)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Int64("user_id", userID).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "userRepository.UpdateUser").Int64("user_id", userID).Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.User{}, ErrNotFound
	}

	return r.GetUserByID(ctx, userID)
}

// SetLastLogin records the current time as the last login of the user.
func (r *userRepository) SetLastLogin(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetLastLoginQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "userRepository.SetLastLogin").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.SetLastLogin").Int64("user_id", userID).Msg("failed to update last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}
