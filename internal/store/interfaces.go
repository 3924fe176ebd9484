package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-recipe-catalog/models"
)

// ErrorClassificator maps dialect specific driver errors to an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user. user.Password must already be hashed.
	// Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// GetUserByEmail returns [ErrNotFound] when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	// GetUserByID returns [ErrNotFound] when the user does not exist.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateUser applies the non-nil fields of update. update.Password must
	// already be hashed.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	// SetLastLogin stamps the current time as the last login of the user.
	SetLastLogin(ctx context.Context, userID int64) error
}

// TokenRepository persists authentication tokens.
type TokenRepository interface {
	// GetOrCreateToken returns the token of userID, storing key as the new
	// token when the user has none yet.
	GetOrCreateToken(ctx context.Context, userID int64, key string) (models.Token, error)
	// GetUserByToken returns the owner of the token or [ErrNotFound].
	GetUserByToken(ctx context.Context, key string) (models.User, error)
}

// LabelRepository persists the labels (tags or ingredients) of users.
// Every method is scoped by the owner; records of other users are reported
// as [ErrNotFound].
type LabelRepository interface {
	List(ctx context.Context, userID int64) ([]models.Label, error)
	Create(ctx context.Context, userID int64, name string) (models.Label, error)
	Get(ctx context.Context, userID, labelID int64) (models.Label, error)
	Update(ctx context.Context, userID, labelID int64, update models.LabelUpdate) (models.Label, error)
	Delete(ctx context.Context, userID, labelID int64) error
	// GetOrCreate returns the label of userID named exactly name, creating
	// it when there is none. The flag reports whether a row was inserted.
	GetOrCreate(ctx context.Context, userID int64, name string) (models.Label, bool, error)
}

// RecipeRepository persists recipes with their tag and ingredient
// associations. Writes resolve nested labels and link them in a single
// transaction.
type RecipeRepository interface {
	List(ctx context.Context, userID int64) ([]models.Recipe, error)
	Get(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	Create(ctx context.Context, userID int64, input models.RecipeInput) (models.Recipe, error)
	Update(ctx context.Context, userID, recipeID int64, update models.RecipeUpdate) (models.Recipe, error)
	Delete(ctx context.Context, userID, recipeID int64) error
}

// HealthChecker reports whether the storage is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
