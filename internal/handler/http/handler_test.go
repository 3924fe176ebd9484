package http

import (
	"testing"

	"github.com/MKhiriev/go-recipe-catalog/internal/config"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	cfg := config.Server{CORSAllowedOrigins: []string{"https://example.com"}}
	log := logger.Nop()

	h := NewHandler(svc, cfg, log)

	assert.Same(t, svc, h.services)
	assert.Equal(t, cfg, h.cfg)
	assert.Same(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// Init
// ─────────────────────────────────────────────

func TestInit_ReturnsRouter(t *testing.T) {
	h := NewHandler(newTestServices(), config.Server{}, logger.Nop())

	require.NotNil(t, h.Init())
}
