package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

// recipeRepository is the SQL implementation of [RecipeRepository].
//
// Create and Update are two-phase writes executed in one transaction:
// nested tag and ingredient names are first resolved to ids with
// get-or-create scoped to the owner, then the recipe row and its
// association rows are written.
type recipeRepository struct {
	logger      *logger.Logger
	db          *DB
	tags        labelTables
	ingredients labelTables
}

func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:          db,
		logger:      logger,
		tags:        labelTablesByKind[models.TagLabel],
		ingredients: labelTablesByKind[models.IngredientLabel],
	}
}

// List returns the recipes of userID, most recent first, with their labels.
func (r *recipeRepository) List(ctx context.Context, userID int64) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecipesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "recipeRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "recipeRepository.List").Int64("user_id", userID).Msg("failed to execute query for listing recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0, 16)
	for rows.Next() {
		recipe, scanErr := scanRecipe(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "recipeRepository.List").Int64("user_id", userID).Msg("failed to scan recipe row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		recipes = append(recipes, recipe)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "recipeRepository.List").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}
	// release the connection before loading labels, SQLite has only one
	rows.Close()

	if err = r.attachLabels(ctx, r.db, recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

// Get returns the recipe when it belongs to userID.
func (r *recipeRepository) Get(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	return r.get(ctx, r.db, userID, recipeID)
}

// Create stores a new recipe with its nested tags and ingredients.
func (r *recipeRepository) Create(ctx context.Context, userID int64, input models.RecipeInput) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	var recipe models.Recipe
	err := r.db.inTx(ctx, "recipeRepository.Create", func(tx *sql.Tx) error {
		tagIDs, err := resolveLabels(ctx, tx, r.tags, userID, input.Tags)
		if err != nil {
			return err
		}
		ingredientIDs, err := resolveLabels(ctx, tx, r.ingredients, userID, input.Ingredients)
		if err != nil {
			return err
		}

		query, args, err := buildInsertRecipeQuery(userID, input)
		if err != nil {
			log.Err(err).Str("func", "recipeRepository.Create").Msg("failed to build query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var recipeID int64
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&recipeID); err != nil {
			log.Err(err).Str("func", "recipeRepository.Create").Int64("user_id", userID).Msg("failed to insert recipe")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = linkLabels(ctx, tx, r.tags, recipeID, tagIDs); err != nil {
			return err
		}
		if err = linkLabels(ctx, tx, r.ingredients, recipeID, ingredientIDs); err != nil {
			return err
		}

		recipe, err = r.get(ctx, tx, userID, recipeID)
		return err
	})
	if err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// Update applies the non-nil fields of update. Non-nil label lists replace
// the current associations; labels that are no longer linked are kept.
func (r *recipeRepository) Update(ctx context.Context, userID, recipeID int64, update models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	var recipe models.Recipe
	err := r.db.inTx(ctx, "recipeRepository.Update", func(tx *sql.Tx) error {
		query, args, err := buildUpdateRecipeQuery(userID, recipeID, update)
		if err != nil {
			log.Err(err).Str("func", "recipeRepository.Update").Msg("failed to build query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "recipeRepository.Update").
				Int64("user_id", userID).
				Int64("recipe_id", recipeID).
				Msg("failed to update recipe")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrNotFound
		}

		if update.Tags != nil {
			if err = replaceLabels(ctx, tx, r.tags, userID, recipeID, *update.Tags); err != nil {
				return err
			}
		}
		if update.Ingredients != nil {
			if err = replaceLabels(ctx, tx, r.ingredients, userID, recipeID, *update.Ingredients); err != nil {
				return err
			}
		}

		recipe, err = r.get(ctx, tx, userID, recipeID)
		return err
	})
	if err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// Delete removes the recipe and its association rows.
func (r *recipeRepository) Delete(ctx context.Context, userID, recipeID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecipeQuery(userID, recipeID)
	if err != nil {
		log.Err(err).Str("func", "recipeRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.Delete").
			Int64("user_id", userID).
			Int64("recipe_id", recipeID).
			Msg("failed to delete recipe")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *recipeRepository) get(ctx context.Context, q querier, userID, recipeID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecipeQuery(userID, recipeID)
	if err != nil {
		log.Err(err).Str("func", "recipeRepository.get").Msg("failed to build query")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	recipe, err := scanRecipe(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.get").
			Int64("user_id", userID).
			Int64("recipe_id", recipeID).
			Msg("failed to scan recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	recipes := []models.Recipe{recipe}
	if err = r.attachLabels(ctx, q, recipes); err != nil {
		return models.Recipe{}, err
	}

	return recipes[0], nil
}

// attachLabels loads tags and ingredients for all recipes with one query
// per kind.
func (r *recipeRepository) attachLabels(ctx context.Context, q querier, recipes []models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	recipeIDs := make([]int64, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID)
	}

	tags, err := loadLabels(ctx, q, r.tags, recipeIDs)
	if err != nil {
		return err
	}
	ingredients, err := loadLabels(ctx, q, r.ingredients, recipeIDs)
	if err != nil {
		return err
	}

	for i := range recipes {
		recipes[i].Tags = orEmpty(tags[recipes[i].ID])
		recipes[i].Ingredients = orEmpty(ingredients[recipes[i].ID])
	}

	return nil
}

func loadLabels(ctx context.Context, q querier, tables labelTables, recipeIDs []int64) (map[int64][]models.Label, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecipeLabelsQuery(tables, recipeIDs)
	if err != nil {
		log.Err(err).Str("func", "loadLabels").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "loadLabels").Str("table", tables.table).Msg("failed to execute query for recipe labels")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	byRecipe := make(map[int64][]models.Label, len(recipeIDs))
	for rows.Next() {
		var recipeID int64
		var label models.Label
		if scanErr := rows.Scan(&recipeID, &label.ID, &label.Name, &label.UserID); scanErr != nil {
			log.Err(scanErr).Str("func", "loadLabels").Msg("failed to scan label row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		byRecipe[recipeID] = append(byRecipe[recipeID], label)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "loadLabels").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return byRecipe, nil
}

// resolveLabels turns the names of inputs into label ids of userID. Repeated
// names resolve once, so a request never creates the same label twice.
func resolveLabels(ctx context.Context, q querier, tables labelTables, userID int64, inputs []models.LabelInput) ([]int64, error) {
	ids := make([]int64, 0, len(inputs))
	seenNames := make(map[string]struct{}, len(inputs))
	seenIDs := make(map[int64]struct{}, len(inputs))

	for _, input := range inputs {
		if _, ok := seenNames[input.Name]; ok {
			continue
		}
		seenNames[input.Name] = struct{}{}

		label, _, err := getOrCreateLabel(ctx, q, tables, userID, input.Name)
		if err != nil {
			return nil, err
		}

		if _, ok := seenIDs[label.ID]; ok {
			continue
		}
		seenIDs[label.ID] = struct{}{}
		ids = append(ids, label.ID)
	}

	return ids, nil
}

func linkLabels(ctx context.Context, q querier, tables labelTables, recipeID int64, labelIDs []int64) error {
	if len(labelIDs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildLinkLabelsQuery(tables, recipeID, labelIDs)
	if err != nil {
		log.Err(err).Str("func", "linkLabels").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "linkLabels").
			Str("table", tables.assocTable).
			Int64("recipe_id", recipeID).
			Msg("failed to link labels")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func replaceLabels(ctx context.Context, q querier, tables labelTables, userID, recipeID int64, inputs []models.LabelInput) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUnlinkLabelsQuery(tables, recipeID)
	if err != nil {
		log.Err(err).Str("func", "replaceLabels").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "replaceLabels").
			Str("table", tables.assocTable).
			Int64("recipe_id", recipeID).
			Msg("failed to unlink labels")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	ids, err := resolveLabels(ctx, q, tables, userID, inputs)
	if err != nil {
		return err
	}

	return linkLabels(ctx, q, tables, recipeID, ids)
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var recipe models.Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.UserID,
		&recipe.Title,
		&recipe.TimeMinutes,
		&recipe.Price,
		&recipe.Description,
		&recipe.Link,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	return recipe, err
}

func orEmpty(labels []models.Label) []models.Label {
	if labels == nil {
		return []models.Label{}
	}
	return labels
}
