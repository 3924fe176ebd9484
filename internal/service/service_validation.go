package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-catalog/internal/validators"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

// UserValidationService validates user input before it reaches the wrapped
// UserService. Validation failures are returned as *validators.ValidationError.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewModelValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) CreateSuperuser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	return v.inner.CreateSuperuser(ctx, user)
}

func (v *UserValidationService) Authenticate(ctx context.Context, email, password string) (models.User, bool, error) {
	return v.inner.Authenticate(ctx, email, password)
}

func (v *UserValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	return v.inner.UpdateProfile(ctx, userID, update)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// AuthValidationService requires both credentials before a token is issued.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewModelValidator(),
	}
}

func (v *AuthValidationService) IssueToken(ctx context.Context, email, password string) (models.Token, error) {
	if err := v.validator.Validate(ctx, models.Credentials{Email: email, Password: password}); err != nil {
		return models.Token{}, err
	}

	return v.inner.IssueToken(ctx, email, password)
}

func (v *AuthValidationService) Resolve(ctx context.Context, key string) (models.User, error) {
	return v.inner.Resolve(ctx, key)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// LabelValidationService validates label names. A full update requires the
// name, a partial one accepts an empty body.
type LabelValidationService struct {
	inner     LabelService
	validator validators.Validator
}

func NewLabelValidationService() LabelServiceWrapper {
	return &LabelValidationService{
		validator: validators.NewModelValidator(),
	}
}

func (v *LabelValidationService) List(ctx context.Context, userID int64) ([]models.Label, error) {
	return v.inner.List(ctx, userID)
}

func (v *LabelValidationService) Create(ctx context.Context, userID int64, input models.LabelInput) (models.Label, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Label{}, err
	}

	return v.inner.Create(ctx, userID, input)
}

func (v *LabelValidationService) Get(ctx context.Context, userID, labelID int64) (models.Label, error) {
	return v.inner.Get(ctx, userID, labelID)
}

func (v *LabelValidationService) Update(ctx context.Context, userID, labelID int64, update models.LabelUpdate, partial bool) (models.Label, error) {
	var required []string
	if !partial {
		required = []string{validators.FieldName}
	}

	if err := v.validator.Validate(ctx, update, required...); err != nil {
		return models.Label{}, err
	}

	return v.inner.Update(ctx, userID, labelID, update, partial)
}

func (v *LabelValidationService) Delete(ctx context.Context, userID, labelID int64) error {
	return v.inner.Delete(ctx, userID, labelID)
}

func (v *LabelValidationService) Wrap(wrapped LabelService) LabelService {
	v.inner = wrapped
	return v
}

// RecipeValidationService validates recipe payloads including nested labels.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService() RecipeServiceWrapper {
	return &RecipeValidationService{
		validator: validators.NewModelValidator(),
	}
}

func (v *RecipeValidationService) List(ctx context.Context, userID int64) ([]models.Recipe, error) {
	return v.inner.List(ctx, userID)
}

func (v *RecipeValidationService) Get(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	return v.inner.Get(ctx, userID, recipeID)
}

func (v *RecipeValidationService) Create(ctx context.Context, userID int64, input models.RecipeInput) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Recipe{}, err
	}

	return v.inner.Create(ctx, userID, input)
}

func (v *RecipeValidationService) Update(ctx context.Context, userID, recipeID int64, update models.RecipeUpdate, partial bool) (models.Recipe, error) {
	var required []string
	if !partial {
		required = []string{validators.FieldTitle, validators.FieldTimeMinutes, validators.FieldPrice}
	}

	if err := v.validator.Validate(ctx, update, required...); err != nil {
		return models.Recipe{}, err
	}

	return v.inner.Update(ctx, userID, recipeID, update, partial)
}

func (v *RecipeValidationService) Delete(ctx context.Context, userID, recipeID int64) error {
	return v.inner.Delete(ctx, userID, recipeID)
}

func (v *RecipeValidationService) Wrap(wrapped RecipeService) RecipeService {
	v.inner = wrapped
	return v
}
