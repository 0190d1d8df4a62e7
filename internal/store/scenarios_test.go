package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/internal/utils"
	"github.com/MKhiriev/go-contacts-book/models"
)

// runRepositoryScenarios exercises both repositories against a migrated
// database. It is shared by the SQLite and PostgreSQL tests.
func runRepositoryScenarios(t *testing.T, db *DB) {
	ctx := context.Background()
	storages := NewStorages(db, logger.Nop())
	users := storages.UserRepository
	contacts := storages.ContactRepository

	newUser := func(t *testing.T, name string) models.User {
		t.Helper()
		u, err := users.CreateUser(ctx, models.User{Username: name, HashPassword: "hash"})
		require.NoError(t, err)
		return u
	}

	t.Run("duplicate username", func(t *testing.T) {
		newUser(t, "dup")
		_, err := users.CreateUser(ctx, models.User{Username: "dup", HashPassword: "hash"})
		assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	})

	t.Run("refresh token round trip", func(t *testing.T) {
		u := newUser(t, "tokens")

		require.NoError(t, users.UpdateRefreshToken(ctx, u.ID, "tok"))
		found, err := users.FindUserByUsername(ctx, "tokens")
		require.NoError(t, err)
		assert.Equal(t, "tok", found.RefreshToken)

		require.NoError(t, users.UpdateRefreshToken(ctx, u.ID, ""))
		found, err = users.FindUserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Empty(t, found.RefreshToken)
	})

	t.Run("issued refresh token digest round trip", func(t *testing.T) {
		u := newUser(t, "issued")

		refresh, err := utils.GenerateJWTToken(utils.TokenParams{
			Issuer:   "https://contacts.example.com/api/v1",
			Audience: models.RefreshTokenAudience,
			UserID:   u.ID,
			Duration: 24 * time.Hour,
			SignKey:  "scenario-sign-key",
		})
		require.NoError(t, err)
		digest := utils.DigestToken(refresh.String())
		require.LessOrEqual(t, len(digest), 255)

		require.NoError(t, users.UpdateRefreshToken(ctx, u.ID, digest))
		found, err := users.FindUserByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, digest, found.RefreshToken)
		assert.True(t, utils.MatchTokenDigest(refresh.String(), found.RefreshToken))
	})

	t.Run("contacts are isolated per owner", func(t *testing.T) {
		a := newUser(t, "owner-a")
		b := newUser(t, "owner-b")

		ann, err := contacts.CreateContact(ctx, sampleContact(a.ID))
		require.NoError(t, err)
		assert.Positive(t, ann.ID)
		assert.Equal(t, a.ID, ann.UserID)
		assert.Equal(t, models.NewDate(1990, time.May, 1), ann.DateOfBirth)

		found, err := contacts.GetContact(ctx, a.ID, ann.ID)
		require.NoError(t, err)
		assert.Equal(t, ann, found)

		_, err = contacts.GetContact(ctx, b.ID, ann.ID)
		assert.ErrorIs(t, err, ErrContactNotFound)

		_, err = contacts.UpdateContact(ctx, b.ID, ann.ID, models.ContactUpdate{Name: models.Some("Eve")})
		assert.ErrorIs(t, err, ErrContactNotFound)

		assert.ErrorIs(t, contacts.DeleteContact(ctx, b.ID, ann.ID), ErrContactNotFound)

		listB, err := contacts.ListContacts(ctx, b.ID)
		require.NoError(t, err)
		assert.Empty(t, listB)

		searchB, err := contacts.SearchContacts(ctx, b.ID, models.ContactFilter{Name: "Ann"})
		require.NoError(t, err)
		assert.Empty(t, searchB)

		// untouched by the foreign attempts
		found, err = contacts.GetContact(ctx, a.ID, ann.ID)
		require.NoError(t, err)
		assert.Equal(t, ann, found)
	})

	t.Run("partial update touches only present fields", func(t *testing.T) {
		u := newUser(t, "updater")
		c := sampleContact(u.ID)
		c.Description = strPtr("friend")
		created, err := contacts.CreateContact(ctx, c)
		require.NoError(t, err)

		updated, err := contacts.UpdateContact(ctx, u.ID, created.ID, models.ContactUpdate{Email: models.Some("new@example.com")})
		require.NoError(t, err)

		expected := created
		expected.Email = "new@example.com"
		assert.Equal(t, expected, updated)

		cleared, err := contacts.UpdateContact(ctx, u.ID, created.ID, models.ContactUpdate{Description: models.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, cleared.Description)
		assert.Equal(t, "new@example.com", cleared.Email)

		same, err := contacts.UpdateContact(ctx, u.ID, created.ID, models.ContactUpdate{})
		require.NoError(t, err)
		assert.Equal(t, cleared, same)
	})

	t.Run("search combines filters", func(t *testing.T) {
		u := newUser(t, "searcher")
		ann := sampleContact(u.ID)
		annSmith := sampleContact(u.ID)
		annSmith.Surename = "Smith"
		annSmith.Email = "smith@example.com"
		bob := sampleContact(u.ID)
		bob.Name = "Bob"

		for _, c := range []models.Contact{ann, annSmith, bob} {
			_, err := contacts.CreateContact(ctx, c)
			require.NoError(t, err)
		}

		all, err := contacts.SearchContacts(ctx, u.ID, models.ContactFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		anns, err := contacts.SearchContacts(ctx, u.ID, models.ContactFilter{Name: "Ann"})
		require.NoError(t, err)
		assert.Len(t, anns, 2)

		smith, err := contacts.SearchContacts(ctx, u.ID, models.ContactFilter{Name: "Ann", Surename: "Smith"})
		require.NoError(t, err)
		require.Len(t, smith, 1)
		assert.Equal(t, "smith@example.com", smith[0].Email)
	})

	t.Run("deleting a user cascades to contacts", func(t *testing.T) {
		u := newUser(t, "leaver")
		created, err := contacts.CreateContact(ctx, sampleContact(u.ID))
		require.NoError(t, err)

		require.NoError(t, users.DeleteUser(ctx, u.ID))

		var remaining int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contacts WHERE user_id = "+placeholder(db), u.ID).Scan(&remaining))
		assert.Zero(t, remaining)

		_, err = contacts.GetContact(ctx, u.ID, created.ID)
		assert.ErrorIs(t, err, ErrContactNotFound)

		_, err = users.FindUserByID(ctx, u.ID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("contact for missing owner", func(t *testing.T) {
		_, err := contacts.CreateContact(ctx, sampleContact(987654))
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func placeholder(db *DB) string {
	if db.Dialect() == "sqlite3" {
		return "?"
	}
	return "$1"
}
