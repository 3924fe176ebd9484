package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		healthErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "database answers",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","version":"test-version"}`,
		},
		{
			name:       "database down",
			healthErr:  errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","version":"test-version"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AppInfoService = &mockAppInfoSvc{healthErr: tt.healthErr}

			rec := doRequest(t, newTestRouter(t, services), http.MethodGet, "/health", nil, false)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	rec := doRequest(t, newTestRouter(t, newTestServices()), http.MethodGet, "/api/version", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "test-version", rec.Body.String())
}
