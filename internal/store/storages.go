package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-catalog/internal/config"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

// Storages groups every repository of the service over one database.
type Storages struct {
	UserRepository       UserRepository
	TokenRepository      TokenRepository
	TagRepository        LabelRepository
	IngredientRepository LabelRepository
	RecipeRepository     RecipeRepository
	HealthChecker        HealthChecker

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	storages, err := NewStoragesFromDB(db, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return storages, nil
}

// NewStoragesFromDB builds the repositories over an already migrated database.
func NewStoragesFromDB(db *DB, log *logger.Logger) (*Storages, error) {
	tags, err := NewLabelRepository(db, models.TagLabel, log)
	if err != nil {
		return nil, fmt.Errorf("error creating tag repository: %w", err)
	}

	ingredients, err := NewLabelRepository(db, models.IngredientLabel, log)
	if err != nil {
		return nil, fmt.Errorf("error creating ingredient repository: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		TokenRepository:      NewTokenRepository(db, log),
		TagRepository:        tags,
		IngredientRepository: ingredients,
		RecipeRepository:     NewRecipeRepository(db, log),
		HealthChecker:        db,
		db:                   db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
