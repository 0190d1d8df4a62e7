package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-contacts-book/internal/config"
	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/internal/service"
	"github.com/MKhiriev/go-contacts-book/internal/store"
	"github.com/MKhiriev/go-contacts-book/models"
)

// newSQLiteRouter wires the real stack over an in-memory SQLite database.
func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:         "scenario-key",
			TokenIssuer:          "scenario",
			AccessTokenDuration:  time.Minute,
			RefreshTokenDuration: time.Hour,
			PasswordHashCost:     bcrypt.MinCost,
			BirthdayWindowDays:   7,
			Version:              "scenario",
		},
		Storage: config.Storage{DB: config.DB{DSN: "file::memory:"}},
	}

	db, err := store.NewDB(ctx, cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	services, err := service.NewServices(store.NewStorages(db, logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg.Server, logger.Nop()).Init()
}

func registerAndLogin(t *testing.T, router http.Handler, username string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":"secret"}`, username)

	rec := do(t, router, http.MethodPost, "/api/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var pair models.TokenPair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	return pair.AccessToken
}

func TestScenario_OwnershipAcrossUsers(t *testing.T) {
	router := newSQLiteRouter(t)
	tokenA := registerAndLogin(t, router, "alice")
	tokenB := registerAndLogin(t, router, "bob")

	rec := do(t, router, http.MethodPost, "/api/contacts/", `{"name":"Ann","surename":"Lee","email":"a@x.com",
		"phone_number":"123","date_of_birth":"1990-05-01","description":null,"user_id":999}`, tokenA)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, int64(999), created.UserID)
	path := fmt.Sprintf("/api/contacts/%d", created.ID)
	findPath := fmt.Sprintf("/api/contacts/find/%d", created.ID)

	rec = do(t, router, http.MethodGet, findPath, "", tokenA)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, findPath, "", tokenB)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, router, http.MethodPatch, path, `{"name":"Eve"}`, tokenB)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, router, http.MethodDelete, path, "", tokenB)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/contacts/search?name=Ann", "", tokenB)
	assert.JSONEq(t, `[]`, rec.Body.String())
	rec = do(t, router, http.MethodGet, "/api/contacts/search?name=Ann", "", tokenA)
	var found []models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	assert.Len(t, found, 1)

	// partial update keeps every other field
	rec = do(t, router, http.MethodPatch, path, `{"email":"b@x.com"}`, tokenA)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	want := created
	want.Email = "b@x.com"
	assert.Equal(t, want.ID, updated.ID)
	assert.Equal(t, want.Name, updated.Name)
	assert.Equal(t, want.Surename, updated.Surename)
	assert.Equal(t, want.Email, updated.Email)
	assert.Equal(t, want.PhoneNumber, updated.PhoneNumber)
	assert.Equal(t, want.DateOfBirth.String(), updated.DateOfBirth.String())
	assert.Equal(t, want.Description, updated.Description)
	assert.Equal(t, want.UserID, updated.UserID)

	rec = do(t, router, http.MethodDelete, path, "", tokenA)
	assert.JSONEq(t, `{"message":"Contact deleted"}`, rec.Body.String())
	rec = do(t, router, http.MethodGet, findPath, "", tokenA)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScenario_DuplicateUsernameAndAccountDeletion(t *testing.T) {
	router := newSQLiteRouter(t)
	token := registerAndLogin(t, router, "alice")

	rec := do(t, router, http.MethodPost, "/api/auth/register", `{"username":"alice","password":"secret"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/contacts/", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
