package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-recipe-catalog/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTraceHandler creates a Handler whose logger writes to buf.
func newTraceHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, capturedReq
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
		wantValidUUID   bool
	}{
		{
			name:            "trace ID from request header is reused",
			requestTraceID:  "my-custom-trace-id",
			wantSameTraceID: true,
		},
		{
			name:          "missing trace ID is generated",
			wantValidUUID: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, req := executeWithTraceID(&Handler{logger: logger.Nop()}, tt.requestTraceID)

			require.NotNil(t, req, "next handler must be called")
			assert.Equal(t, http.StatusOK, rec.Code)

			got := rec.Header().Get(traceIDHeader)
			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, got)
			}
			if tt.wantValidUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	buf := &bytes.Buffer{}
	_, req := executeWithTraceID(newTraceHandler(buf), "trace-123")

	require.NotNil(t, req)
	logger.FromRequest(req).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
}

func TestWithTraceID_DoesNotMutateParentLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	h := newTraceHandler(buf)

	executeWithTraceID(h, "trace-123")
	h.logger.Info().Msg("parent")

	assert.NotContains(t, buf.String(), "trace-123")
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rec1, _ := executeWithTraceID(h, "")
	rec2, _ := executeWithTraceID(h, "")

	assert.NotEqual(t, rec1.Header().Get(traceIDHeader), rec2.Header().Get(traceIDHeader))
}
