package service

import (
	"fmt"

	"github.com/MKhiriev/go-recipe-catalog/internal/config"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/store"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

type Services struct {
	UserService       UserService
	AuthService       AuthService
	TagService        LabelService
	IngredientService LabelService
	RecipeService     RecipeService
	AppInfoService    AppInfoService
}

// NewServices builds every service over storages. Services that accept
// client input are wrapped with validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	userService := NewUserValidationService().Wrap(NewUserService(storages.UserRepository, cfg.App, logger))
	authService := NewAuthService(userService, storages.UserRepository, storages.TokenRepository, logger)

	return &Services{
		UserService: userService,
		AuthService: NewAuthValidationService().Wrap(authService),
		TagService: NewLabelValidationService().
			Wrap(NewLabelService(storages.TagRepository, models.TagLabel, logger)),
		IngredientService: NewLabelValidationService().
			Wrap(NewLabelService(storages.IngredientRepository, models.IngredientLabel, logger)),
		RecipeService:  NewRecipeValidationService().Wrap(NewRecipeService(storages.RecipeRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
