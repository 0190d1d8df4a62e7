package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-contacts-book/internal/config"
	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/internal/mock"
	"github.com/MKhiriev/go-contacts-book/internal/service"
	"github.com/MKhiriev/go-contacts-book/models"
)

const (
	testAccessToken = "good-token"
	testUserID      = int64(1)
)

type testServices struct {
	contacts *mock.MockContactService
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
}

// newTestRouter builds the full router over gomock services. The auth
// service accepts testAccessToken as user testUserID.
func newTestRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		contacts: mock.NewMockContactService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	mocks.auth.EXPECT().
		CurrentUser(gomock.Any(), testAccessToken).
		Return(models.User{ID: testUserID, Username: "ann"}, nil).
		AnyTimes()

	h := NewHandler(&service.Services{
		ContactService: mocks.contacts,
		AuthService:    mocks.auth,
		AppInfoService: mocks.appInfo,
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	return h.Init(), mocks
}

// do sends a request through router. A non-empty token is sent as a bearer
// token.
func do(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func sampleContact() models.Contact {
	return models.Contact{
		ID:          7,
		Name:        "Ann",
		Surename:    "Lee",
		Email:       "a@x.com",
		PhoneNumber: "123",
		DateOfBirth: models.NewDate(1990, time.May, 1),
		UserID:      testUserID,
	}
}
