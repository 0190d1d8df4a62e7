package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/models"
)

// userRepository is the SQL implementation of [UserRepository].
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user and scans back the stored row.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("failed to create user")
		return models.User{}, r.db.queryError(err, ErrUserNotFound, ErrExecutingQuery)
	}

	return created, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"username": username})
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": userID})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindUserQuery(where)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.findUser").Msg("user lookup failed")
		return models.User{}, r.db.queryError(err, ErrUserNotFound, ErrExecutingQuery)
	}

	return user, nil
}

// UpdateRefreshToken stores refreshToken, or NULL when it is empty.
// A missing user yields [ErrUserNotFound].
func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateRefreshTokenQuery(userID, refreshToken)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateRefreshToken").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*userRepository.UpdateRefreshToken", userID, query, args)
}

// DeleteUser removes the user; contacts go with it via ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteUserQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*userRepository.DeleteUser", userID, query, args)
}

func (r *userRepository) execAffectingOne(ctx context.Context, funcName string, userID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("failed to execute statement")
		return r.db.queryError(err, ErrUserNotFound, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var (
		user         models.User
		refreshToken sql.NullString
	)

	if err := row.Scan(&user.ID, &user.Username, &user.HashPassword, &refreshToken); err != nil {
		return models.User{}, err
	}
	user.RefreshToken = refreshToken.String

	return user, nil
}
