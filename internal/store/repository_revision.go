package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/olekhv/vaultkeep/internal/logger"
)

// revisionRepository reads the raw timestamps the revision date is computed
// from. It deliberately performs no aggregation across tables: the maximum
// over entity kinds and the parse fallbacks belong to the service layer.
type revisionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRevisionRepository constructs a [RevisionRepository] backed by the
// provided database connection and logger.
func NewRevisionRepository(db *DB, logger *logger.Logger) RevisionRepository {
	logger.Debug().Msg("creating revision repository")
	return &revisionRepository{
		db:     db,
		logger: logger,
	}
}

// GetUserUpdatedAt returns the account's own updated_at. Unlike the
// per-entity maxima this value is mandatory: a missing user or a failed
// query is a hard error.
func (r *revisionRepository) GetUserUpdatedAt(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)

	var updatedAt string
	row := r.db.QueryRowContext(ctx, getUserUpdatedAt, userID)
	if err := row.Scan(&updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}
		log.Err(err).Str("func", "*revisionRepository.GetUserUpdatedAt").Msg("error scanning user timestamp")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updatedAt, nil
}

// GetMaxCipherUpdatedAt returns the latest cipher updated_at for the user,
// or nil when the user owns no ciphers.
func (r *revisionRepository) GetMaxCipherUpdatedAt(ctx context.Context, userID string) (*string, error) {
	return r.queryMax(ctx, "*revisionRepository.GetMaxCipherUpdatedAt", getMaxCipherUpdatedAt, userID)
}

// GetMaxFolderUpdatedAt returns the latest folder updated_at for the user,
// or nil when the user owns no folders.
func (r *revisionRepository) GetMaxFolderUpdatedAt(ctx context.Context, userID string) (*string, error) {
	return r.queryMax(ctx, "*revisionRepository.GetMaxFolderUpdatedAt", getMaxFolderUpdatedAt, userID)
}

func (r *revisionRepository) queryMax(ctx context.Context, caller string, query string, userID string) (*string, error) {
	log := logger.FromContext(ctx)

	// MAX over an empty set yields a single NULL row, not sql.ErrNoRows.
	var max *string
	row := r.db.QueryRowContext(ctx, query, userID)
	if err := row.Scan(&max); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).Str("func", caller).Msg("error scanning max timestamp")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return max, nil
}
