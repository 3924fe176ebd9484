package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-catalog/models"
)

// UserService manages user accounts.
type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	CreateSuperuser(ctx context.Context, user models.User) (models.User, error)
	// Authenticate reports ok == false for unknown emails, wrong passwords
	// and inactive users. Only storage failures are returned as errors.
	Authenticate(ctx context.Context, email, password string) (user models.User, ok bool, err error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
}

// AuthService exchanges credentials for tokens and tokens for users.
type AuthService interface {
	IssueToken(ctx context.Context, email, password string) (models.Token, error)
	Resolve(ctx context.Context, key string) (models.User, error)
}

// LabelService manages the labels of one kind (tags or ingredients).
// Labels of other users are reported as store.ErrNotFound.
type LabelService interface {
	List(ctx context.Context, userID int64) ([]models.Label, error)
	Create(ctx context.Context, userID int64, input models.LabelInput) (models.Label, error)
	Get(ctx context.Context, userID, labelID int64) (models.Label, error)
	// Update renames the label. With partial == false the name is required.
	Update(ctx context.Context, userID, labelID int64, update models.LabelUpdate, partial bool) (models.Label, error)
	Delete(ctx context.Context, userID, labelID int64) error
}

// RecipeService manages recipes with their nested tags and ingredients.
type RecipeService interface {
	List(ctx context.Context, userID int64) ([]models.Recipe, error)
	Get(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	Create(ctx context.Context, userID int64, input models.RecipeInput) (models.Recipe, error)
	// Update applies update. With partial == false title, time_minutes and
	// price are required.
	Update(ctx context.Context, userID, recipeID int64, update models.RecipeUpdate, partial bool) (models.Recipe, error)
	Delete(ctx context.Context, userID, recipeID int64) error
}

// AppInfoService reports build and health information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// LabelServiceWrapper defines middleware composition for LabelService.
type LabelServiceWrapper interface {
	Wrap(LabelService) LabelService
}

// RecipeServiceWrapper defines middleware composition for RecipeService.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService
}
