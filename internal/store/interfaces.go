package store

import (
	"context"

	"github.com/olekhv/vaultkeep/models"
)

// CipherRepository persists vault items and enforces ownership on every
// mutation: each statement filters on both id and user_id, so a row owned
// by another user is indistinguishable from a missing one.
type CipherRepository interface {
	CreateCipher(ctx context.Context, cipher models.Cipher) error
	GetCipher(ctx context.Context, cipherID string, userID string) (models.Cipher, error)
	GetAllCiphers(ctx context.Context, userID string) ([]models.Cipher, error)
	UpdateCipher(ctx context.Context, cipher models.Cipher) (models.Cipher, error)
	PatchCipher(ctx context.Context, cipherID string, userID string, patch models.CipherPatch, updatedAt string) (models.Cipher, error)
	SoftDeleteCipher(ctx context.Context, cipherID string, userID string, deletedAt string) (int64, error)
	RestoreCipher(ctx context.Context, cipherID string, userID string, updatedAt string) (models.Cipher, error)
	HardDeleteCipher(ctx context.Context, cipherID string, userID string) (int64, error)
}

// FolderRepository persists folders with the same ownership rules as
// [CipherRepository].
type FolderRepository interface {
	CreateFolder(ctx context.Context, folder models.Folder) error
	GetFolder(ctx context.Context, folderID string, userID string) (models.Folder, error)
	GetAllFolders(ctx context.Context, userID string) ([]models.Folder, error)
	UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	DeleteFolder(ctx context.Context, folderID string, userID string, updatedAt string) (int64, error)
}

// UserRepository handles account creation and lookup.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	TouchUser(ctx context.Context, userID string, updatedAt string) error
}

// RevisionRepository reads the raw timestamps the revision date is computed
// from. The user timestamp is mandatory; the cipher and folder maxima are
// optional and absent for empty vaults.
type RevisionRepository interface {
	GetUserUpdatedAt(ctx context.Context, userID string) (string, error)
	GetMaxCipherUpdatedAt(ctx context.Context, userID string) (*string, error)
	GetMaxFolderUpdatedAt(ctx context.Context, userID string) (*string, error)
}
