package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contacts-book/internal/config"
	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/internal/service"
)

func newTestHandler(l *logger.Logger) *Handler {
	return NewHandler(&service.Services{}, config.Server{}, l)
}

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	h := newTestHandler(logger.Nop())
	req := newRequest(http.MethodGet, "/")
	req.Header.Set(traceIDHeader, "my-trace")
	rec := httptest.NewRecorder()

	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, "my-trace", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := newTestHandler(logger.Nop())
	seen := make(map[string]struct{})

	for range 5 {
		rec := httptest.NewRecorder()
		h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
			ServeHTTP(rec, newRequest(http.MethodGet, "/"))

		id := rec.Header().Get(traceIDHeader)
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 5)
}

func TestWithTraceID_LoggerInContextCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&logger.Logger{Logger: zerolog.New(&buf)})
	req := newRequest(http.MethodGet, "/")
	req.Header.Set(traceIDHeader, "trace-42")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}
