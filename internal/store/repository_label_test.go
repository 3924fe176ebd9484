package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabelRepository_UnknownKind(t *testing.T) {
	_, err := NewLabelRepository(&DB{}, models.LabelKind("spice"), logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownLabelKind)
}

func TestLabelRepository_SQLite(t *testing.T) {
	for _, kind := range []models.LabelKind{models.TagLabel, models.IngredientLabel} {
		t.Run(string(kind), func(t *testing.T) {
			s := newTestStorages(t)
			ctx := context.Background()
			repo := s.TagRepository
			if kind == models.IngredientLabel {
				repo = s.IngredientRepository
			}

			alice := createTestUser(t, s, "alice@example.com")
			bob := createTestUser(t, s, "bob@example.com")

			for _, name := range []string{"Breakfast", "Vegan", "Dessert"} {
				_, err := repo.Create(ctx, alice.UserID, name)
				require.NoError(t, err)
			}
			bobsLabel, err := repo.Create(ctx, bob.UserID, "Secret")
			require.NoError(t, err)

			t.Run("list is scoped and ordered by name descending", func(t *testing.T) {
				labels, err := repo.List(ctx, alice.UserID)
				require.NoError(t, err)
				assert.Equal(t, []string{"Vegan", "Dessert", "Breakfast"}, labelNames(labels))
				for _, l := range labels {
					assert.Equal(t, alice.UserID, l.UserID)
				}
			})

			t.Run("create permits duplicate names", func(t *testing.T) {
				dup, err := repo.Create(ctx, alice.UserID, "Vegan")
				require.NoError(t, err)

				labels, err := repo.List(ctx, alice.UserID)
				require.NoError(t, err)
				assert.Len(t, labels, 4)
				// ties on name resolve by id descending
				assert.Equal(t, dup.ID, labels[0].ID)
			})

			t.Run("foreign ids are not found", func(t *testing.T) {
				_, err := repo.Get(ctx, alice.UserID, bobsLabel.ID)
				assert.ErrorIs(t, err, ErrNotFound)

				_, err = repo.Update(ctx, alice.UserID, bobsLabel.ID, models.LabelUpdate{Name: ptr("Mine")})
				assert.ErrorIs(t, err, ErrNotFound)

				assert.ErrorIs(t, repo.Delete(ctx, alice.UserID, bobsLabel.ID), ErrNotFound)

				still, err := repo.Get(ctx, bob.UserID, bobsLabel.ID)
				require.NoError(t, err)
				assert.Equal(t, "Secret", still.Name)
			})

			t.Run("update renames", func(t *testing.T) {
				updated, err := repo.Update(ctx, bob.UserID, bobsLabel.ID, models.LabelUpdate{Name: ptr("Public")})
				require.NoError(t, err)
				assert.Equal(t, "Public", updated.Name)

				unchanged, err := repo.Update(ctx, bob.UserID, bobsLabel.ID, models.LabelUpdate{})
				require.NoError(t, err)
				assert.Equal(t, "Public", unchanged.Name)
			})

			t.Run("get or create is idempotent per owner", func(t *testing.T) {
				first, created, err := repo.GetOrCreate(ctx, bob.UserID, "Thai")
				require.NoError(t, err)
				assert.True(t, created)

				second, created, err := repo.GetOrCreate(ctx, bob.UserID, "Thai")
				require.NoError(t, err)
				assert.False(t, created)
				assert.Equal(t, first.ID, second.ID)

				// same name for another owner is a different row
				other, created, err := repo.GetOrCreate(ctx, alice.UserID, "Thai")
				require.NoError(t, err)
				assert.True(t, created)
				assert.NotEqual(t, first.ID, other.ID)
			})

			t.Run("delete", func(t *testing.T) {
				require.NoError(t, repo.Delete(ctx, bob.UserID, bobsLabel.ID))
				_, err := repo.Get(ctx, bob.UserID, bobsLabel.ID)
				assert.ErrorIs(t, err, ErrNotFound)
			})
		})
	}
}

func TestLabelRepository_ListQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo, err := NewLabelRepository(db, models.TagLabel, logger.Nop())
	require.NoError(t, err)

	dbErr := errors.New("db down")
	mock.ExpectQuery("SELECT id, name, user_id FROM tags WHERE user_id = \\$1 ORDER BY name DESC, id DESC").
		WithArgs(int64(1)).
		WillReturnError(dbErr)

	_, err = repo.List(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, dbErr)
}

func TestLabelRepository_DeleteUsesIngredientTable(t *testing.T) {
	db, mock := newMockDB(t)
	repo, err := NewLabelRepository(db, models.IngredientLabel, logger.Nop())
	require.NoError(t, err)

	mock.ExpectExec("DELETE FROM ingredients WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(9), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1, 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}
