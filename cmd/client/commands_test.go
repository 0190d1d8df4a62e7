package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contacts-book/internal/adapter"
	"github.com/MKhiriev/go-contacts-book/models"
)

// fakeAdapter implements only what the tests call; the embedded interface
// panics on anything else.
type fakeAdapter struct {
	adapter.ServerAdapter

	tokens models.TokenPair

	listCalls   int
	listErrs    []error
	refreshErr  error
	refreshes   int
	lastUpdate  models.ContactUpdate
	lastContact models.Contact
	birthdays   []models.Contact
}

func (f *fakeAdapter) SetTokens(pair models.TokenPair) { f.tokens = pair }
func (f *fakeAdapter) Tokens() models.TokenPair      { return f.tokens }

func (f *fakeAdapter) Refresh(context.Context) (models.TokenPair, error) {
	f.refreshes++
	if f.refreshErr != nil {
		return models.TokenPair{}, f.refreshErr
	}
	f.tokens = models.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	return f.tokens, nil
}

func (f *fakeAdapter) ListContacts(context.Context) ([]models.Contact, error) {
	f.listCalls++
	if len(f.listErrs) > 0 {
		err := f.listErrs[0]
		f.listErrs = f.listErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return []models.Contact{{ID: 1, Name: "Ann"}}, nil
}

func (f *fakeAdapter) AddContact(_ context.Context, contact models.Contact) (models.Contact, error) {
	f.lastContact = contact
	contact.ID = 10
	return contact, nil
}

func (f *fakeAdapter) UpdateContact(_ context.Context, contactID int64, update models.ContactUpdate) (models.Contact, error) {
	f.lastUpdate = update
	return models.Contact{ID: contactID}, nil
}

func (f *fakeAdapter) UpcomingBirthdays(context.Context) ([]models.Contact, error) {
	return f.birthdays, nil
}

func TestRun_UnknownCommand(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), &fakeAdapter{}, []string{"nope"}, &out)

	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.NotContains(t, err.Error(), "nope")
	assert.Contains(t, out.String(), `unknown command "nope"`)
	assert.Contains(t, out.String(), "usage:")

	err = run(context.Background(), &fakeAdapter{}, nil, &out)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCommandName(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no args", args: nil, want: "none"},
		{name: "login with credentials", args: []string{"login", "-u", "ann", "-p", "hunter22"}, want: "login"},
		{name: "register with credentials", args: []string{"register", "-p=hunter22", "-u", "ann"}, want: "register"},
		{name: "update with values", args: []string{"update", "5", "-email", "ann@example.com"}, want: "update"},
		{name: "unknown input", args: []string{"hunter22"}, want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commandName(tt.args)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "hunter22")
		})
	}
}

func TestRun_ListPrintsJSON(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), &fakeAdapter{}, []string{"list"}, &out))

	assert.Contains(t, out.String(), `"name": "Ann"`)
}

func TestAuthed_RefreshesOnceOnUnauthorized(t *testing.T) {
	f := &fakeAdapter{
		tokens:   models.TokenPair{AccessToken: "old", RefreshToken: "old-refresh"},
		listErrs: []error{fmt.Errorf("%w: expired", adapter.ErrUnauthorized)},
	}
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), f, []string{"list"}, &out))

	assert.Equal(t, 1, f.refreshes)
	assert.Equal(t, 2, f.listCalls)
	assert.Equal(t, "new-access", f.tokens.AccessToken)
}

func TestAuthed_NoRefreshTokenReturnsOriginalError(t *testing.T) {
	f := &fakeAdapter{listErrs: []error{adapter.ErrUnauthorized}}

	err := run(context.Background(), f, []string{"list"}, &bytes.Buffer{})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Zero(t, f.refreshes)
	assert.Equal(t, 1, f.listCalls)
}

func TestAuthed_RefreshFailureJoinsErrors(t *testing.T) {
	f := &fakeAdapter{
		tokens:     models.TokenPair{RefreshToken: "revoked"},
		listErrs:   []error{adapter.ErrUnauthorized},
		refreshErr: adapter.ErrNotFound,
	}

	err := run(context.Background(), f, []string{"list"}, &bytes.Buffer{})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, 1, f.listCalls)
}

func TestRunAdd(t *testing.T) {
	f := &fakeAdapter{}
	var out bytes.Buffer

	err := run(context.Background(), f, []string{"add",
		"-name", "Ann", "-surename", "Lee", "-email", "ann@example.com",
		"-phone", "+1555", "-dob", "1990-05-01",
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Ann", f.lastContact.Name)
	assert.Equal(t, models.NewDate(1990, time.May, 1), f.lastContact.DateOfBirth)
	assert.Nil(t, f.lastContact.Description)
	assert.Contains(t, out.String(), `"id": 10`)

	err = run(context.Background(), f, []string{"add", "-dob", "01/05/1990"}, &out)
	assert.Error(t, err)
}

func TestParseUpdateFlags(t *testing.T) {
	update, err := parseUpdateFlags([]string{"-email", "new@example.com", "-no-description"})
	require.NoError(t, err)

	email, ok := update.Email.Get()
	assert.True(t, ok)
	assert.Equal(t, "new@example.com", email)
	assert.True(t, update.Description.IsNull())
	assert.False(t, update.Name.IsSet())
	assert.False(t, update.DateOfBirth.IsSet())

	update, err = parseUpdateFlags([]string{"-name", ""})
	require.NoError(t, err)
	name, ok := update.Name.Get()
	assert.True(t, ok)
	assert.Empty(t, name)

	_, err = parseUpdateFlags([]string{"-description", "x", "-no-description"})
	assert.Error(t, err)
}

func TestRunUpdate_RequiresID(t *testing.T) {
	f := &fakeAdapter{}

	err := run(context.Background(), f, []string{"update", "-name", "Ann"}, &bytes.Buffer{})
	assert.Error(t, err)

	err = run(context.Background(), f, []string{"update", "0"}, &bytes.Buffer{})
	assert.Error(t, err)

	require.NoError(t, run(context.Background(), f, []string{"update", "5", "-surename", "Stone"}, &bytes.Buffer{}))
	surename, _ := f.lastUpdate.Surename.Get()
	assert.Equal(t, "Stone", surename)
}

func TestRunBirthdays(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &fakeAdapter{}, []string{"birthdays"}, &out))
	assert.Equal(t, "no upcoming birthdays\n", out.String())

	out.Reset()
	f := &fakeAdapter{birthdays: []models.Contact{
		{Name: "Ann", Surename: "Lee", DateOfBirth: models.NewDate(1990, time.June, 3)},
	}}
	require.NoError(t, run(context.Background(), f, []string{"birthdays"}, &out))
	assert.Equal(t, "06-03  Ann Lee\n", out.String())
}

func TestTokenStore_RoundTripAndClear(t *testing.T) {
	store := tokenStore{path: filepath.Join(t.TempDir(), "nested", "tokens.json")}

	pair, err := store.load()
	require.NoError(t, err)
	assert.Empty(t, pair)

	want := models.TokenPair{AccessToken: "a", RefreshToken: "r", TokenType: "bearer"}
	require.NoError(t, store.save(want))

	got, err := store.load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.save(models.TokenPair{}))
	got, err = store.load()
	require.NoError(t, err)
	assert.Empty(t, got)
}
