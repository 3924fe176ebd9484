package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/store"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

type recipeService struct {
	recipeRepository store.RecipeRepository

	logger *logger.Logger
}

func NewRecipeService(recipeRepository store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		logger:           logger,
	}
}

func (s *recipeService) List(ctx context.Context, userID int64) ([]models.Recipe, error) {
	recipes, err := s.recipeRepository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}

	return recipes, nil
}

func (s *recipeService) Get(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	recipe, err := s.recipeRepository.Get(ctx, userID, recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("error getting recipe: %w", err)
	}

	return recipe, nil
}

// Create stores the recipe. Nested tags and ingredients are nil-safe: a
// missing list means no associations.
func (s *recipeService) Create(ctx context.Context, userID int64, input models.RecipeInput) (models.Recipe, error) {
	recipe, err := s.recipeRepository.Create(ctx, userID, input)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("recipe creation ended with error")
		return models.Recipe{}, fmt.Errorf("error creating recipe: %w", err)
	}

	return recipe, nil
}

func (s *recipeService) Update(ctx context.Context, userID, recipeID int64, update models.RecipeUpdate, _ bool) (models.Recipe, error) {
	recipe, err := s.recipeRepository.Update(ctx, userID, recipeID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", userID).
			Int64("recipe_id", recipeID).
			Msg("recipe update ended with error")
		return models.Recipe{}, fmt.Errorf("error updating recipe: %w", err)
	}

	return recipe, nil
}

func (s *recipeService) Delete(ctx context.Context, userID, recipeID int64) error {
	if err := s.recipeRepository.Delete(ctx, userID, recipeID); err != nil {
		return fmt.Errorf("error deleting recipe: %w", err)
	}

	return nil
}
