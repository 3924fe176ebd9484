package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/mock"
	"github.com/MKhiriev/go-recipe-catalog/internal/store"
	"github.com/MKhiriev/go-recipe-catalog/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRecipeSvc(t *testing.T) (RecipeService, *mock.MockRecipeRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRecipeRepository(ctrl)

	svc := NewRecipeValidationService().Wrap(NewRecipeService(repo, logger.Nop()))
	return svc, repo
}

func ptr[T any](v T) *T { return &v }

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRecipeService_Create(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	input := models.RecipeInput{
		Title:       "Curry",
		TimeMinutes: ptr(30),
		Price:       price("5.50"),
		Tags:        []models.LabelInput{{Name: "Thai"}},
	}
	repo.EXPECT().Create(gomock.Any(), int64(1), input).Return(models.Recipe{ID: 10, Title: "Curry"}, nil)

	recipe, err := svc.Create(context.Background(), 1, input)
	require.NoError(t, err)
	assert.Equal(t, int64(10), recipe.ID)
}

func TestRecipeService_Create_Invalid(t *testing.T) {
	svc, _ := newTestRecipeSvc(t)

	_, err := svc.Create(context.Background(), 1, models.RecipeInput{
		Title:       "Curry",
		TimeMinutes: ptr(30),
		Price:       price("5.555"),
		Tags:        []models.LabelInput{{Name: ""}},
	})

	fields := validationFields(t, err)
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "tags[0].name")
}

func TestRecipeService_Update_FullRequiresFields(t *testing.T) {
	svc, _ := newTestRecipeSvc(t)

	_, err := svc.Update(context.Background(), 1, 2, models.RecipeUpdate{Title: ptr("Only title")}, false)

	assert.Equal(t, map[string][]string{
		"time_minutes": {"This field is required."},
		"price":        {"This field is required."},
	}, validationFields(t, err))
}

func TestRecipeService_Update_Partial(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	update := models.RecipeUpdate{Title: ptr("New title")}
	repo.EXPECT().Update(gomock.Any(), int64(1), int64(2), update).Return(models.Recipe{ID: 2, Title: "New title"}, nil)

	recipe, err := svc.Update(context.Background(), 1, 2, update, true)
	require.NoError(t, err)
	assert.Equal(t, "New title", recipe.Title)
}

func TestRecipeService_NotFoundPassesThrough(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	repo.EXPECT().Get(gomock.Any(), int64(1), int64(2)).Return(models.Recipe{}, store.ErrNotFound)
	repo.EXPECT().Delete(gomock.Any(), int64(1), int64(2)).Return(store.ErrNotFound)
	repo.EXPECT().Update(gomock.Any(), int64(1), int64(2), gomock.Any()).Return(models.Recipe{}, store.ErrNotFound)

	_, err := svc.Get(context.Background(), 1, 2)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1, 2), store.ErrNotFound)

	_, err = svc.Update(context.Background(), 1, 2, models.RecipeUpdate{}, true)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecipeService_List_StorageError(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	repo.EXPECT().List(gomock.Any(), int64(1)).Return(nil, errStorage)

	_, err := svc.List(context.Background(), 1)
	assert.ErrorIs(t, err, errStorage)
}
