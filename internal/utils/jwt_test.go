package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-contacts-book/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accessParams() TokenParams {
	return TokenParams{
		Issuer:   "test-issuer",
		Audience: models.AccessTokenAudience,
		UserID:   123,
		Duration: time.Hour,
		SignKey:  "secret-key",
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(accessParams())
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, "test-issuer", token.Issuer)
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, jwt.ClaimStrings{models.AccessTokenAudience}, token.Audience)
	assert.NotEmpty(t, token.ID)
}

func TestGenerateJWTToken_UniqueIDs(t *testing.T) {
	first, err := GenerateJWTToken(accessParams())
	require.NoError(t, err)
	second, err := GenerateJWTToken(accessParams())
	require.NoError(t, err)

	assert.NotEqual(t, first.SignedString, second.SignedString)
}

func TestGenerateJWTToken_RefreshTokenLength(t *testing.T) {
	p := accessParams()
	p.Audience = models.RefreshTokenAudience
	p.Issuer = "https://contacts.example.com/api/v1"

	token, err := GenerateJWTToken(p)
	require.NoError(t, err)

	// signed refresh tokens outgrow the users.refresh_token column,
	// only their digest is persisted
	assert.Greater(t, len(token.String()), 255)
	assert.Len(t, DigestToken(token.String()), TokenDigestLength)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *TokenParams)
	}{
		{"empty issuer", func(p *TokenParams) { p.Issuer = "" }},
		{"empty audience", func(p *TokenParams) { p.Audience = "" }},
		{"zero duration", func(p *TokenParams) { p.Duration = 0 }},
		{"empty key", func(p *TokenParams) { p.SignKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := accessParams()
			tt.mutate(&p)
			_, err := GenerateJWTToken(p)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	p := accessParams()
	generated, err := GenerateJWTToken(p)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, p.SignKey, p.Issuer, p.Audience)
	require.NoError(t, err)
	assert.Equal(t, int64(123), parsed.UserID)
	assert.Equal(t, generated.ID, parsed.ID)
	assert.Equal(t, generated.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	p := accessParams()
	generated, err := GenerateJWTToken(p)
	require.NoError(t, err)

	tests := []struct {
		name     string
		key      string
		issuer   string
		audience string
	}{
		{"wrong key", "other-key", p.Issuer, p.Audience},
		{"wrong issuer", p.SignKey, "other-issuer", p.Audience},
		{"refresh audience", p.SignKey, p.Issuer, models.RefreshTokenAudience},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(generated.SignedString, tt.key, tt.issuer, tt.audience)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "1",
		Audience:  jwt.ClaimStrings{models.AccessTokenAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss", models.AccessTokenAudience)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_NonNumericSubject(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "alice",
		Audience:  jwt.ClaimStrings{models.AccessTokenAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss", models.AccessTokenAudience)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "extra parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
