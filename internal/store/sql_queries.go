package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/olekhv/vaultkeep/models"
)

const cipherColumns = `id, user_id, organization_id, type, data, favorite, folder_id, collection_ids, key, deleted_at, created_at, updated_at`

const (
	createCipher = `INSERT INTO ciphers (` + cipherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	getCipher = `SELECT ` + cipherColumns + `
		FROM ciphers
		WHERE id = $1 AND user_id = $2;`

	getAllCiphers = `SELECT ` + cipherColumns + `
		FROM ciphers
		WHERE user_id = $1;`

	updateCipher = `UPDATE ciphers
		SET organization_id = $3, type = $4, data = $5, favorite = $6, folder_id = $7, collection_ids = $8, key = $9, updated_at = $10
		WHERE id = $1 AND user_id = $2
		RETURNING deleted_at, created_at;`

	softDeleteCipher = `UPDATE ciphers
		SET deleted_at = $3, updated_at = $3
		WHERE id = $1 AND user_id = $2;`

	restoreCipher = `UPDATE ciphers
		SET deleted_at = NULL, updated_at = $3
		WHERE id = $1 AND user_id = $2
		RETURNING ` + cipherColumns + `;`

	hardDeleteCipher = `DELETE FROM ciphers
		WHERE id = $1 AND user_id = $2;`

	createFolder = `INSERT INTO folders (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5);`

	getFolder = `SELECT id, user_id, name, created_at, updated_at
		FROM folders
		WHERE id = $1 AND user_id = $2;`

	getAllFolders = `SELECT id, user_id, name, created_at, updated_at
		FROM folders
		WHERE user_id = $1;`

	updateFolder = `UPDATE folders
		SET name = $3, updated_at = $4
		WHERE id = $1 AND user_id = $2
		RETURNING created_at;`

	deleteFolder = `DELETE FROM folders
		WHERE id = $1 AND user_id = $2;`

	clearFolderReferences = `UPDATE ciphers
		SET folder_id = NULL, updated_at = $3
		WHERE folder_id = $1 AND user_id = $2;`

	createUser = `INSERT INTO users (
			id, name, avatar_color, email, email_verified, master_password_hash, master_password_hint,
			key, private_key, public_key, kdf_type, kdf_iterations, security_stamp, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`

	findUserByEmail = `SELECT id, name, avatar_color, email, email_verified, master_password_hash, master_password_hint,
			key, private_key, public_key, kdf_type, kdf_iterations, security_stamp, created_at, updated_at
		FROM users
		WHERE email = $1;`

	getUserByID = `SELECT id, name, avatar_color, email, email_verified, master_password_hash, master_password_hint,
			key, private_key, public_key, kdf_type, kdf_iterations, security_stamp, created_at, updated_at
		FROM users
		WHERE id = $1;`

	touchUser = `UPDATE users
		SET updated_at = $2
		WHERE id = $1;`

	getUserUpdatedAt = `SELECT updated_at
		FROM users
		WHERE id = $1;`

	getMaxCipherUpdatedAt = `SELECT MAX(updated_at)
		FROM ciphers
		WHERE user_id = $1;`

	getMaxFolderUpdatedAt = `SELECT MAX(updated_at)
		FROM folders
		WHERE user_id = $1;`
)

// buildCipherPatchQuery builds a single UPDATE statement applying only the
// fields present in the patch. The row filter carries both id and user_id,
// so ownership is enforced by the statement itself.
func buildCipherPatchQuery(cipherID string, userID string, patch models.CipherPatch, updatedAt string) (string, []any, error) {
	builder := sq.Update(models.Cipher{}.TableName()).PlaceholderFormat(sq.Dollar)

	if patch.FolderID != nil {
		builder = builder.Set("folder_id", *patch.FolderID)
	}
	if patch.Favorite != nil {
		builder = builder.Set("favorite", *patch.Favorite)
	}

	if patch.Empty() {
		return "", nil, ErrNothingToUpdate
	}

	return builder.
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": cipherID, "user_id": userID}).
		Suffix("RETURNING " + cipherColumns).
		ToSql()
}
