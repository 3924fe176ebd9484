package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeLoggedRequest creates a request whose context logger writes to buf.
func makeLoggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		handler    http.HandlerFunc
		wantStatus int
		wantSize   int
	}{
		{
			name:   "explicit status with body",
			method: http.MethodPost,
			path:   "/recipes",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"id":1}`))
			},
			wantStatus: http.StatusCreated,
			wantSize:   8,
		},
		{
			name:   "implicit 200",
			method: http.MethodGet,
			path:   "/tags",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte("[]"))
			},
			wantStatus: http.StatusOK,
			wantSize:   2,
		},
		{
			name:       "nothing written",
			method:     http.MethodGet,
			path:       "/health",
			handler:    func(http.ResponseWriter, *http.Request) {},
			wantStatus: http.StatusOK,
		},
		{
			name:   "no content",
			method: http.MethodDelete,
			path:   "/recipes/1",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			h := &Handler{logger: logger.Nop()}
			rec := httptest.NewRecorder()

			h.withLogging(tt.handler).ServeHTTP(rec, makeLoggedRequest(tt.method, tt.path, buf))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log: %s", buf.String())
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.EqualValues(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}
