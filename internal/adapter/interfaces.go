// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed Go client of the recipe catalog REST API.
//
// The primary abstraction is [ServerAdapter], which hides the HTTP transport
// from its callers. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-recipe-catalog/models"
)

// ServerAdapter defines communication with the recipe catalog server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the token attached to all subsequent authenticated
	// requests. Login calls it automatically.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string if no token has been set yet.
	Token() string

	// Health reports the server status and version. A server whose database
	// is down answers with [ErrServiceUnavailable] (wrapped).
	Health(ctx context.Context) (HealthStatus, error)

	// Register creates an account from user's email, name and password.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges credentials for the user's token and stores it via
	// SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// Profile returns the authenticated user.
	Profile(ctx context.Context) (models.User, error)

	// UpdateProfile applies a partial update to the authenticated user.
	UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error)

	// ListLabels returns the caller's tags or ingredients.
	ListLabels(ctx context.Context, kind models.LabelKind) ([]models.Label, error)

	// CreateLabel creates a tag or an ingredient.
	CreateLabel(ctx context.Context, kind models.LabelKind, input models.LabelInput) (models.Label, error)

	// DeleteLabel removes a tag or an ingredient.
	DeleteLabel(ctx context.Context, kind models.LabelKind, labelID int64) error

	// ListRecipes returns the caller's recipes without description and link.
	ListRecipes(ctx context.Context) ([]models.Recipe, error)

	// GetRecipe returns one recipe with all of its fields.
	GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error)

	// CreateRecipe creates a recipe, resolving tags and ingredients by name.
	CreateRecipe(ctx context.Context, input models.RecipeInput) (models.Recipe, error)

	// UpdateRecipe sends a PATCH when partial is set and a PUT otherwise.
	UpdateRecipe(ctx context.Context, recipeID int64, update models.RecipeUpdate, partial bool) (models.Recipe, error)

	// DeleteRecipe removes a recipe.
	DeleteRecipe(ctx context.Context, recipeID int64) error
}
