package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-catalog/internal/config"
	"github.com/MKhiriev/go-recipe-catalog/internal/handler"
	httphandler "github.com/MKhiriev/go-recipe-catalog/internal/handler/http"
	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/MKhiriev/go-recipe-catalog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(cfg config.Server) *handler.Handlers {
	return &handler.Handlers{HTTP: httphandler.NewHandler(&service.Services{}, cfg, logger.Nop())}
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
		wantErr  error
	}{
		{
			name:     "http server",
			handlers: newTestHandlers(config.Server{}),
			cfg:      config.Server{HTTPAddress: "127.0.0.1:0"},
		},
		{
			name:     "no address",
			handlers: newTestHandlers(config.Server{}),
			wantErr:  errNoServersAreCreated,
		},
		{
			name:    "no handlers",
			cfg:     config.Server{HTTPAddress: "127.0.0.1:0"},
			wantErr: errNoServersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestNewHTTPServer(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	srv := newHTTPServer(h, config.Server{HTTPAddress: "127.0.0.1:8081"}, logger.Nop())

	assert.Equal(t, "127.0.0.1:8081", srv.server.Addr)
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
