package service

import (
	"context"

	"github.com/olekhv/vaultkeep/models"
)

// CipherService implements the cipher lifecycle: create, read, full and
// partial update, soft delete, restore, and hard delete. The owner is always
// taken from the authenticated principal, never from the request body.
type CipherService interface {
	CreateCipher(ctx context.Context, userID string, request models.CipherRequest, collectionIDs []string) (models.Cipher, error)
	GetCipher(ctx context.Context, userID string, cipherID string) (models.Cipher, error)
	GetAllCiphers(ctx context.Context, userID string) ([]models.Cipher, error)
	UpdateCipher(ctx context.Context, userID string, cipherID string, request models.CipherRequest) (models.Cipher, error)
	PatchCipher(ctx context.Context, userID string, cipherID string, patch models.CipherPatch) (models.Cipher, error)
	SoftDeleteCipher(ctx context.Context, userID string, cipherID string) error
	RestoreCipher(ctx context.Context, userID string, cipherID string) (models.Cipher, error)
	HardDeleteCipher(ctx context.Context, userID string, cipherID string) error
	ImportVault(ctx context.Context, userID string, request models.ImportRequest) error
}

// FolderService implements the folder lifecycle.
type FolderService interface {
	CreateFolder(ctx context.Context, userID string, request models.FolderRequest) (models.Folder, error)
	GetFolder(ctx context.Context, userID string, folderID string) (models.Folder, error)
	GetAllFolders(ctx context.Context, userID string) ([]models.Folder, error)
	UpdateFolder(ctx context.Context, userID string, folderID string, request models.FolderRequest) (models.Folder, error)
	DeleteFolder(ctx context.Context, userID string, folderID string) error
}

// RevisionService computes the vault revision date: the most recent
// update instant across the account itself and everything it owns.
type RevisionService interface {
	RevisionDate(ctx context.Context, userID string) (int64, error)
}

// AccountService handles registration, prelogin, credential verification
// and profile retrieval.
type AccountService interface {
	Register(ctx context.Context, request models.RegisterRequest) error
	Prelogin(ctx context.Context, email string) models.PreloginResponse
	Login(ctx context.Context, email string, masterPasswordHash string) (models.TokenResponse, error)
	Profile(ctx context.Context, userID string) (models.Profile, error)
	ValidateToken(tokenString string) (models.Token, error)
}

// SyncService assembles the full vault payload for one user.
type SyncService interface {
	Sync(ctx context.Context, userID string) (models.SyncResponse, error)
}
