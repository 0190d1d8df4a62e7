package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-contacts-book/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] for
// headers not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// TokenParams describes a token to generate.
type TokenParams struct {
	Issuer   string
	Audience string
	UserID   int64
	Duration time.Duration
	SignKey  string
}

// GenerateJWTToken creates a signed HS256 token carrying the standard claims
// iss, sub (user id), aud, iat, exp and a random jti. The jti makes two
// tokens issued within the same second distinct, which refresh rotation
// relies on.
//
// Returns an error if issuer, audience, duration or sign key is empty.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//		Issuer: "contacts", Audience: models.AccessTokenAudience,
//		UserID: 42, Duration: 15 * time.Minute, SignKey: "secret",
//	})
func GenerateJWTToken(p TokenParams) (models.Token, error) {
	if p.Issuer == "" || p.Audience == "" || p.Duration <= 0 || p.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    p.Issuer,
		Subject:   strconv.FormatInt(p.UserID, 10),
		Audience:  jwt.ClaimStrings{p.Audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(p.Duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		UserID:           p.UserID,
	}, nil
}

// ValidateAndParseJWTToken verifies the signature (HS256 only), issuer,
// audience and expiration of tokenString and extracts the user id from sub.
//
// Expired tokens produce an error matching [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, audience string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, &parsed.RegisteredClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}
	parsed.Token = token
	parsed.SignedString = tokenString

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}
	parsed.UserID = userID

	return *parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
