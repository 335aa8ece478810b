package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/models"
)

// cipherRepository is the PostgreSQL-backed implementation of
// [CipherRepository]. Every mutation is a single conditional statement
// filtered on (id, user_id); a zero affected-row count maps to
// [ErrCipherNotFound].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type cipherRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCipherRepository constructs a [CipherRepository] backed by the provided
// database connection and logger.
func NewCipherRepository(db *DB, logger *logger.Logger) CipherRepository {
	logger.Debug().Msg("creating cipher repository")
	return &cipherRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCipher persists a new cipher row. All server-assigned fields
// (id, timestamps) must already be set by the caller.
func (r *cipherRepository) CreateCipher(ctx context.Context, cipher models.Cipher) error {
	log := logger.FromContext(ctx)

	data, err := cipher.Data.Encode()
	if err != nil {
		log.Err(err).Str("func", "*cipherRepository.CreateCipher").Msg("error encoding cipher data")
		return err
	}

	collectionIDs, err := encodeCollectionIDs(cipher.CollectionIDs)
	if err != nil {
		log.Err(err).Str("func", "*cipherRepository.CreateCipher").Msg("error encoding collection ids")
		return err
	}

	_, err = r.db.ExecContext(ctx, createCipher,
		cipher.ID, cipher.UserID, cipher.OrganizationID, cipher.Type, data, cipher.Favorite,
		cipher.FolderID, collectionIDs, cipher.Key, cipher.DeletedAt, cipher.CreatedAt, cipher.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*cipherRepository.CreateCipher").Msg("error inserting cipher")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetCipher retrieves one cipher owned by the given user. A row owned by
// another user yields [ErrCipherNotFound], same as a missing row.
func (r *cipherRepository) GetCipher(ctx context.Context, cipherID string, userID string) (models.Cipher, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getCipher, cipherID, userID)
	cipher, err := scanCipher(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cipher{}, ErrCipherNotFound
		}
		log.Err(err).Str("func", "*cipherRepository.GetCipher").Msg("error scanning cipher row")
		return models.Cipher{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cipher, nil
}

// GetAllCiphers returns every cipher owned by the user, soft-deleted ones
// included.
func (r *cipherRepository) GetAllCiphers(ctx context.Context, userID string) ([]models.Cipher, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllCiphers, userID)
	if err != nil {
		log.Err(err).Str("func", "*cipherRepository.GetAllCiphers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ciphers := make([]models.Cipher, 0)
	for rows.Next() {
		cipher, err := scanCipher(rows)
		if err != nil {
			log.Err(err).Str("func", "*cipherRepository.GetAllCiphers").Msg("error scanning cipher rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ciphers = append(ciphers, cipher)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*cipherRepository.GetAllCiphers").Msg("error iterating cipher rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ciphers, nil
}

// UpdateCipher replaces all client-controlled fields of the cipher in one
// UPDATE filtered on (id, user_id). The RETURNING clause yields the
// server-controlled deleted_at and created_at, so the caller receives the
// complete refreshed entity without a separate read.
func (r *cipherRepository) UpdateCipher(ctx context.Context, cipher models.Cipher) (models.Cipher, error) {
	log := logger.FromContext(ctx)

	data, err := cipher.Data.Encode()
	if err != nil {
		log.Err(err).Str("func", "*cipherRepository.UpdateCipher").Msg("error encoding cipher data")
		return models.Cipher{}, err
	}

	collectionIDs, err := encodeCollectionIDs(cipher.CollectionIDs)
	if err != nil {
		log.Err(err).Str("func", "*cipherRepository.UpdateCipher").Msg("error encoding collection ids")
		return models.Cipher{}, err
	}

	row := r.db.QueryRowContext(ctx, updateCipher,
		cipher.ID, cipher.UserID, cipher.OrganizationID, cipher.Type, data, cipher.Favorite,
		cipher.FolderID, collectionIDs, cipher.Key, cipher.UpdatedAt)
	if err := row.Scan(&cipher.DeletedAt, &cipher.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cipher{}, ErrCipherNotFound
		}
		log.Err(err).Str("func", "*cipherRepository.UpdateCipher").Msg("error scanning returned row")
		return models.Cipher{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cipher, nil
}

// PatchCipher applies only the fields present in the patch via a dynamically
// built single UPDATE and returns the refreshed row.
func (r *cipherRepository) PatchCipher(ctx context.Context, cipherID string, userID string, patch models.CipherPatch, updatedAt string) (models.Cipher, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCipherPatchQuery(cipherID, userID, patch, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*cipherRepository.PatchCipher").Msg("error building patch query")
		return models.Cipher{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	cipher, err := scanCipher(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cipher{}, ErrCipherNotFound
		}
		log.Err(err).Str("func", "*cipherRepository.PatchCipher").Msg("error scanning returned row")
		return models.Cipher{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cipher, nil
}

// SoftDeleteCipher stamps deleted_at and updated_at with the same timestamp
// in one conditional UPDATE and reports the affected-row count.
func (r *cipherRepository) SoftDeleteCipher(ctx context.Context, cipherID string, userID string, deletedAt string) (int64, error) {
	return r.execConditional(ctx, "*cipherRepository.SoftDeleteCipher", softDeleteCipher, cipherID, userID, deletedAt)
}

// RestoreCipher clears deleted_at and bumps updated_at in one conditional
// UPDATE, returning the refreshed row. A soft-deleted row can always be
// restored; restoring an active row is a no-op apart from the updated_at bump.
func (r *cipherRepository) RestoreCipher(ctx context.Context, cipherID string, userID string, updatedAt string) (models.Cipher, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, restoreCipher, cipherID, userID, updatedAt)
	cipher, err := scanCipher(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cipher{}, ErrCipherNotFound
		}
		log.Err(err).Str("func", "*cipherRepository.RestoreCipher").Msg("error scanning returned row")
		return models.Cipher{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cipher, nil
}

// HardDeleteCipher removes the row permanently and reports the affected-row
// count. Deleting an absent row is not an error at this level.
func (r *cipherRepository) HardDeleteCipher(ctx context.Context, cipherID string, userID string) (int64, error) {
	return r.execConditional(ctx, "*cipherRepository.HardDeleteCipher", hardDeleteCipher, cipherID, userID)
}

func (r *cipherRepository) execConditional(ctx context.Context, caller string, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).
			Bool("retryable", r.db.errorClassifier.Classify(err) == Retryable).
			Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCipher(row rowScanner) (models.Cipher, error) {
	var cipher models.Cipher
	var data string
	var collectionIDs *string

	err := row.Scan(&cipher.ID, &cipher.UserID, &cipher.OrganizationID, &cipher.Type, &data, &cipher.Favorite,
		&cipher.FolderID, &collectionIDs, &cipher.Key, &cipher.DeletedAt, &cipher.CreatedAt, &cipher.UpdatedAt)
	if err != nil {
		return models.Cipher{}, err
	}

	cipher.Data, err = models.DecodeCipherData(data)
	if err != nil {
		return models.Cipher{}, err
	}

	cipher.CollectionIDs, err = decodeCollectionIDs(collectionIDs)
	if err != nil {
		return models.Cipher{}, err
	}

	return cipher, nil
}

func encodeCollectionIDs(ids []string) (*string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	encoded, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}

	value := string(encoded)
	return &value, nil
}

func decodeCollectionIDs(encoded *string) ([]string, error) {
	if encoded == nil || *encoded == "" {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(*encoded), &ids); err != nil {
		return nil, err
	}

	return ids, nil
}
