package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/store"
	"github.com/MKhiriev/go-recipe-catalog/models"
)

// labelService serves one label kind. Tags and ingredients get their own
// instance over their own repository.
type labelService struct {
	labelRepository store.LabelRepository
	kind            models.LabelKind

	logger *logger.Logger
}

func NewLabelService(labelRepository store.LabelRepository, kind models.LabelKind, logger *logger.Logger) LabelService {
	return &labelService{
		labelRepository: labelRepository,
		kind:            kind,
		logger:          logger,
	}
}

func (s *labelService) List(ctx context.Context, userID int64) ([]models.Label, error) {
	labels, err := s.labelRepository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing %ss: %w", s.kind, err)
	}

	return labels, nil
}

func (s *labelService) Create(ctx context.Context, userID int64, input models.LabelInput) (models.Label, error) {
	label, err := s.labelRepository.Create(ctx, userID, input.Name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", string(s.kind)).Int64("user_id", userID).Msg("label creation ended with error")
		return models.Label{}, fmt.Errorf("error creating %s: %w", s.kind, err)
	}

	return label, nil
}

func (s *labelService) Get(ctx context.Context, userID, labelID int64) (models.Label, error) {
	label, err := s.labelRepository.Get(ctx, userID, labelID)
	if err != nil {
		return models.Label{}, fmt.Errorf("error getting %s: %w", s.kind, err)
	}

	return label, nil
}

// Update renames the label. Presence of required fields is checked by the
// validation wrapper, so partial is not used here.
func (s *labelService) Update(ctx context.Context, userID, labelID int64, update models.LabelUpdate, _ bool) (models.Label, error) {
	label, err := s.labelRepository.Update(ctx, userID, labelID, update)
	if err != nil {
		return models.Label{}, fmt.Errorf("error updating %s: %w", s.kind, err)
	}

	return label, nil
}

func (s *labelService) Delete(ctx context.Context, userID, labelID int64) error {
	if err := s.labelRepository.Delete(ctx, userID, labelID); err != nil {
		return fmt.Errorf("error deleting %s: %w", s.kind, err)
	}

	return nil
}
