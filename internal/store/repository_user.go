package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createUser,
		user.ID, user.Name, user.AvatarColor, user.Email, user.EmailVerified,
		user.MasterPasswordHash, user.MasterPasswordHint, user.Key, user.PrivateKey, user.PublicKey,
		user.KdfType, user.KdfIterations, user.SecurityStamp, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrEmailAlreadyExists
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// FindUserByEmail retrieves the account whose email matches exactly.
// Callers are expected to lowercase the email before lookup.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// GetUserByID retrieves the account by its primary key.
func (r *userRepository) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getUserByID, userID)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// TouchUser bumps the account's updated_at, which feeds into the
// revision date computation.
func (r *userRepository) TouchUser(ctx context.Context, userID string, updatedAt string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, touchUser, userID, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TouchUser").Msg("error updating user timestamp")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TouchUser").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.AvatarColor, &user.Email, &user.EmailVerified,
		&user.MasterPasswordHash, &user.MasterPasswordHint, &user.Key, &user.PrivateKey, &user.PublicKey,
		&user.KdfType, &user.KdfIterations, &user.SecurityStamp, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
