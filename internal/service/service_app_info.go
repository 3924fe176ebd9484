package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-catalog/internal/config"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/store"
)

type appInfoService struct {
	appVersion    string
	healthChecker store.HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, healthChecker store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:    cfg.Version,
		healthChecker: healthChecker,
		logger:        logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// CheckHealth pings the database.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if err := s.healthChecker.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "appInfoService.CheckHealth").Msg("database is unreachable")
		return fmt.Errorf("database is unreachable: %w", err)
	}

	return nil
}
