package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contacts-book/internal/config"
	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/internal/store"
	"github.com/MKhiriev/go-contacts-book/internal/utils"
	"github.com/MKhiriev/go-contacts-book/internal/validators"
	"github.com/MKhiriev/go-contacts-book/models"
)

const tokenTypeBearer = "bearer"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT
// access/refresh token lifecycle using a UserRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks usernames and passwords before registration.
	validator validators.Validator

	// passwordHashCost is the bcrypt cost used at registration.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		validator:            validators.NewCredentialsValidator(),
		passwordHashCost:     cfg.PasswordHashCost,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		logger:               logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the username and password, hashes the password with bcrypt,
// and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided wrapping a validators sentinel.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken, see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("username", credentials.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(credentials.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		HashPassword: hash,
	})
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a new token pair. The
// refresh token of the pair replaces the one stored for the user.
//
// An unknown username and a wrong password both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid user data provided")
		return models.TokenPair{}, fmt.Errorf("%w: username and password are required", ErrInvalidDataProvided)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("username", credentials.Username).Msg("login attempt for unknown user")
		return models.TokenPair{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.TokenPair{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.HashPassword, credentials.Password) {
		log.Info().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("wrong password")
		return models.TokenPair{}, ErrWrongPassword
	}

	return a.issueTokenPair(ctx, foundUser.ID)
}

// Refresh exchanges a valid refresh token for a new token pair.
//
// The token must match the digest stored for its owner. A token that
// verifies but does not match is treated as reused: the stored digest is
// cleared, so the owner has to log in again.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, a.tokenIssuer, models.RefreshTokenAudience)
	if err != nil {
		log.Debug().Err(err).Msg("refresh token rejected")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.findTokenOwner(ctx, token.UserID)
	if err != nil {
		return models.TokenPair{}, err
	}

	if !utils.MatchTokenDigest(refreshToken, user.RefreshToken) {
		log.Warn().Int64("user_id", user.ID).Msg("refresh token does not match the stored one, revoking")
		if err = a.userRepository.UpdateRefreshToken(ctx, user.ID, ""); err != nil {
			log.Err(err).Int64("user_id", user.ID).Msg("revoking refresh token failed")
		}
		return models.TokenPair{}, ErrUnauthorized
	}

	return a.issueTokenPair(ctx, user.ID)
}

// Logout clears the stored refresh token of userID.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	if err := a.userRepository.UpdateRefreshToken(ctx, userID, ""); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("clearing refresh token failed")
		return fmt.Errorf("clearing refresh token failed: %w", err)
	}
	return nil
}

// CurrentUser validates an access token and loads its owner.
//
// Any validation failure (expired, wrong issuer or audience, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid; a token whose owner no longer
// exists yields ErrUnauthorized.
func (a *authService) CurrentUser(ctx context.Context, accessToken string) (models.User, error) {
	token, err := utils.ValidateAndParseJWTToken(accessToken, a.tokenSignKey, a.tokenIssuer, models.AccessTokenAudience)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return a.findTokenOwner(ctx, token.UserID)
}

// DeleteUser removes the account of userID together with its contacts.
func (a *authService) DeleteUser(ctx context.Context, userID int64) error {
	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}
	return nil
}

func (a *authService) findTokenOwner(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Info().Int64("user_id", userID).Msg("token owner does not exist")
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

// issueTokenPair signs a new access/refresh pair for userID and stores the
// digest of the refresh token, replacing the previous one.
func (a *authService) issueTokenPair(ctx context.Context, userID int64) (models.TokenPair, error) {
	accessToken, err := a.createToken(userID, models.AccessTokenAudience, a.accessTokenDuration)
	if err != nil {
		return models.TokenPair{}, err
	}
	refreshToken, err := a.createToken(userID, models.RefreshTokenAudience, a.refreshTokenDuration)
	if err != nil {
		return models.TokenPair{}, err
	}

	if err = a.userRepository.UpdateRefreshToken(ctx, userID, utils.DigestToken(refreshToken.String())); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("storing refresh token failed")
		return models.TokenPair{}, fmt.Errorf("storing refresh token failed: %w", err)
	}

	return models.TokenPair{
		AccessToken:  accessToken.String(),
		RefreshToken: refreshToken.String(),
		TokenType:    tokenTypeBearer,
	}, nil
}

func (a *authService) createToken(userID int64, audience string, duration time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:   a.tokenIssuer,
		Audience: audience,
		UserID:   userID,
		Duration: duration,
		SignKey:  a.tokenSignKey,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}
