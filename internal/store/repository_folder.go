package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/models"
)

// folderRepository is the PostgreSQL-backed implementation of
// [FolderRepository]. Mutations follow the same single conditional
// statement pattern as ciphers.
type folderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFolderRepository constructs a [FolderRepository] backed by the provided
// database connection and logger.
func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	logger.Debug().Msg("creating folder repository")
	return &folderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createFolder,
		folder.ID, folder.UserID, folder.Name, folder.CreatedAt, folder.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.CreateFolder").Msg("error inserting folder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *folderRepository) GetFolder(ctx context.Context, folderID string, userID string) (models.Folder, error) {
	log := logger.FromContext(ctx)

	var folder models.Folder
	row := r.db.QueryRowContext(ctx, getFolder, folderID, userID)
	if err := row.Scan(&folder.ID, &folder.UserID, &folder.Name, &folder.CreatedAt, &folder.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, ErrFolderNotFound
		}
		log.Err(err).Str("func", "*folderRepository.GetFolder").Msg("error scanning folder row")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return folder, nil
}

func (r *folderRepository) GetAllFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllFolders, userID)
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.GetAllFolders").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0)
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(&folder.ID, &folder.UserID, &folder.Name, &folder.CreatedAt, &folder.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*folderRepository.GetAllFolders").Msg("error scanning folder rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*folderRepository.GetAllFolders").Msg("error iterating folder rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

// UpdateFolder renames the folder in one UPDATE filtered on (id, user_id)
// and returns the refreshed entity. The RETURNING clause yields created_at,
// so no separate read is needed.
func (r *folderRepository) UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateFolder, folder.ID, folder.UserID, folder.Name, folder.UpdatedAt)
	if err := row.Scan(&folder.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Folder{}, ErrFolderNotFound
		}
		log.Err(err).Str("func", "*folderRepository.UpdateFolder").Msg("error scanning returned row")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return folder, nil
}

// DeleteFolder removes the folder and detaches every cipher that referenced
// it, bumping the ciphers' updated_at so clients pick up the change. Both
// statements run in one transaction; the affected-row count of the folder
// delete is reported.
func (r *folderRepository) DeleteFolder(ctx context.Context, folderID string, userID string, updatedAt string) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.DeleteFolder").Msg("error beginning transaction")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, clearFolderReferences, folderID, userID, updatedAt); err != nil {
		log.Err(err).Str("func", "*folderRepository.DeleteFolder").Msg("error detaching ciphers")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteFolder, folderID, userID)
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.DeleteFolder").Msg("error deleting folder")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.DeleteFolder").Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*folderRepository.DeleteFolder").
			Bool("retryable", r.db.errorClassifier.Classify(err) == Retryable).
			Msg("error committing transaction")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
