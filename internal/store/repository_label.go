package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

// labelRepository is the SQL implementation of [LabelRepository]. One
// implementation serves both tags and ingredients, the kind only selects
// the table.
type labelRepository struct {
	logger *logger.Logger
	db     *DB
	kind   models.LabelKind
	tables labelTables
}

// NewLabelRepository constructs a [LabelRepository] for the given kind.
func NewLabelRepository(db *DB, kind models.LabelKind, logger *logger.Logger) (LabelRepository, error) {
	tables, err := tablesForKind(kind)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("kind", string(kind)).Msg("creating label repository")
	return &labelRepository{
		db:     db,
		logger: logger,
		kind:   kind,
		tables: tables,
	}, nil
}

// List returns the labels of userID ordered by name descending.
func (r *labelRepository) List(ctx context.Context, userID int64) ([]models.Label, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListLabelsQuery(r.tables, userID)
	if err != nil {
		log.Err(err).Str("func", "labelRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "labelRepository.List").
			Str("kind", string(r.kind)).
			Int64("user_id", userID).
			Msg("failed to execute query for listing labels")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	labels := make([]models.Label, 0, 16)
	for rows.Next() {
		var label models.Label
		if scanErr := rows.Scan(&label.ID, &label.Name, &label.UserID); scanErr != nil {
			log.Err(scanErr).Str("func", "labelRepository.List").Int64("user_id", userID).Msg("failed to scan label row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		labels = append(labels, label)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "labelRepository.List").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return labels, nil
}

// Create always inserts a new label, even if one with the same name exists.
func (r *labelRepository) Create(ctx context.Context, userID int64, name string) (models.Label, error) {
	return insertLabel(ctx, r.db, r.tables, userID, name)
}

// Get returns the label when it belongs to userID.
func (r *labelRepository) Get(ctx context.Context, userID, labelID int64) (models.Label, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLabelQuery(r.tables, userID, labelID)
	if err != nil {
		log.Err(err).Str("func", "labelRepository.Get").Msg("failed to build query")
		return models.Label{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return scanLabel(ctx, "labelRepository.Get", r.db.QueryRowContext(ctx, query, args...))
}

// Update renames the label. An update without fields returns the label as is.
func (r *labelRepository) Update(ctx context.Context, userID, labelID int64, update models.LabelUpdate) (models.Label, error) {
	log := logger.FromContext(ctx)

	if update.Name == nil {
		return r.Get(ctx, userID, labelID)
	}

	query, args, err := buildUpdateLabelQuery(r.tables, userID, labelID, update)
	if err != nil {
		log.Err(err).Str("func", "labelRepository.Update").Msg("failed to build query")
		return models.Label{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return scanLabel(ctx, "labelRepository.Update", r.db.QueryRowContext(ctx, query, args...))
}

// Delete removes the label. Recipes keep existing, only their association
// rows go away through the cascade.
func (r *labelRepository) Delete(ctx context.Context, userID, labelID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteLabelQuery(r.tables, userID, labelID)
	if err != nil {
		log.Err(err).Str("func", "labelRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "labelRepository.Delete").
			Int64("user_id", userID).
			Int64("label_id", labelID).
			Msg("failed to delete label")
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

// GetOrCreate resolves name for userID outside of any transaction.
func (r *labelRepository) GetOrCreate(ctx context.Context, userID int64, name string) (models.Label, bool, error) {
	return getOrCreateLabel(ctx, r.db, r.tables, userID, name)
}

// getOrCreateLabel returns the oldest label of userID named exactly name or
// inserts a new one. q may be a transaction.
func getOrCreateLabel(ctx context.Context, q querier, tables labelTables, userID int64, name string) (models.Label, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindLabelByNameQuery(tables, userID, name)
	if err != nil {
		log.Err(err).Str("func", "getOrCreateLabel").Msg("failed to build query")
		return models.Label{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	label, err := scanLabel(ctx, "getOrCreateLabel", q.QueryRowContext(ctx, query, args...))
	if err == nil {
		return label, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.Label{}, false, err
	}

	label, err = insertLabel(ctx, q, tables, userID, name)
	if err != nil {
		return models.Label{}, false, err
	}

	return label, true, nil
}

func insertLabel(ctx context.Context, q querier, tables labelTables, userID int64, name string) (models.Label, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLabelQuery(tables, userID, name)
	if err != nil {
		log.Err(err).Str("func", "insertLabel").Msg("failed to build query")
		return models.Label{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var label models.Label
	if err = q.QueryRowContext(ctx, query, args...).Scan(&label.ID, &label.Name, &label.UserID); err != nil {
		log.Err(err).
			Str("func", "insertLabel").
			Str("table", tables.table).
			Int64("user_id", userID).
			Msg("failed to insert label")
		return models.Label{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return label, nil
}

func scanLabel(ctx context.Context, funcName string, row *sql.Row) (models.Label, error) {
	var label models.Label

	err := row.Scan(&label.ID, &label.Name, &label.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Label{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to scan label")
		return models.Label{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return label, nil
}
