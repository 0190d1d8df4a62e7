package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contacts-book/internal/logger"
)

func TestNewHandler(t *testing.T) {
	h := newTestHandler(logger.Nop())
	require.NotNil(t, h)
	assert.NotNil(t, h.traceIDs)
	assert.Zero(t, h.requestTimeout)
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodDelete, "/api/auth/me"},
		{http.MethodGet, "/api/contacts/"},
		{http.MethodPost, "/api/contacts/"},
		{http.MethodGet, "/api/contacts/find/1"},
		{http.MethodGet, "/api/contacts/search"},
		{http.MethodGet, "/api/contacts/upcoming-birthdays"},
		{http.MethodPatch, "/api/contacts/1"},
		{http.MethodDelete, "/api/contacts/1"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := do(t, router, rt.method, rt.path, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, ErrEmptyAuthorizationHeader.Error(), detailOf(t, rec))
		})
	}
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/", "/api", "/api/contacts/find", "/api/users/"} {
		rec := do(t, router, http.MethodGet, path, "", testAccessToken)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct{ method, path string }{
		{http.MethodPut, "/api/contacts/"},
		{http.MethodGet, "/api/auth/login"},
		{http.MethodDelete, "/api/version/"},
	}

	for _, tt := range tests {
		rec := do(t, router, tt.method, tt.path, "", testAccessToken)
		assert.Equal(t, http.StatusNotFound, rec.Code, tt.method+" "+tt.path)
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/contacts/", "", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := newRequest(http.MethodGet, "/api/contacts/")
	req.Header.Set(traceIDHeader, "abc")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(traceIDHeader))
}
