package service

import (
	"context"

	"github.com/olekhv/vaultkeep/models"
)

// Hand-rolled repository mocks: each method delegates to a settable
// function field, so a test configures only what it touches.

type mockCipherRepository struct {
	CreateCipherFunc     func(ctx context.Context, cipher models.Cipher) error
	GetCipherFunc        func(ctx context.Context, cipherID string, userID string) (models.Cipher, error)
	GetAllCiphersFunc    func(ctx context.Context, userID string) ([]models.Cipher, error)
	UpdateCipherFunc     func(ctx context.Context, cipher models.Cipher) (models.Cipher, error)
	PatchCipherFunc      func(ctx context.Context, cipherID string, userID string, patch models.CipherPatch, updatedAt string) (models.Cipher, error)
	SoftDeleteCipherFunc func(ctx context.Context, cipherID string, userID string, deletedAt string) (int64, error)
	RestoreCipherFunc    func(ctx context.Context, cipherID string, userID string, updatedAt string) (models.Cipher, error)
	HardDeleteCipherFunc func(ctx context.Context, cipherID string, userID string) (int64, error)
}

func (m *mockCipherRepository) CreateCipher(ctx context.Context, cipher models.Cipher) error {
	return m.CreateCipherFunc(ctx, cipher)
}

func (m *mockCipherRepository) GetCipher(ctx context.Context, cipherID string, userID string) (models.Cipher, error) {
	return m.GetCipherFunc(ctx, cipherID, userID)
}

func (m *mockCipherRepository) GetAllCiphers(ctx context.Context, userID string) ([]models.Cipher, error) {
	return m.GetAllCiphersFunc(ctx, userID)
}

func (m *mockCipherRepository) UpdateCipher(ctx context.Context, cipher models.Cipher) (models.Cipher, error) {
	return m.UpdateCipherFunc(ctx, cipher)
}

func (m *mockCipherRepository) PatchCipher(ctx context.Context, cipherID string, userID string, patch models.CipherPatch, updatedAt string) (models.Cipher, error) {
	return m.PatchCipherFunc(ctx, cipherID, userID, patch, updatedAt)
}

func (m *mockCipherRepository) SoftDeleteCipher(ctx context.Context, cipherID string, userID string, deletedAt string) (int64, error) {
	return m.SoftDeleteCipherFunc(ctx, cipherID, userID, deletedAt)
}

func (m *mockCipherRepository) RestoreCipher(ctx context.Context, cipherID string, userID string, updatedAt string) (models.Cipher, error) {
	return m.RestoreCipherFunc(ctx, cipherID, userID, updatedAt)
}

func (m *mockCipherRepository) HardDeleteCipher(ctx context.Context, cipherID string, userID string) (int64, error) {
	return m.HardDeleteCipherFunc(ctx, cipherID, userID)
}

type mockFolderRepository struct {
	CreateFolderFunc  func(ctx context.Context, folder models.Folder) error
	GetFolderFunc     func(ctx context.Context, folderID string, userID string) (models.Folder, error)
	GetAllFoldersFunc func(ctx context.Context, userID string) ([]models.Folder, error)
	UpdateFolderFunc  func(ctx context.Context, folder models.Folder) (models.Folder, error)
	DeleteFolderFunc  func(ctx context.Context, folderID string, userID string, updatedAt string) (int64, error)
}

func (m *mockFolderRepository) CreateFolder(ctx context.Context, folder models.Folder) error {
	return m.CreateFolderFunc(ctx, folder)
}

func (m *mockFolderRepository) GetFolder(ctx context.Context, folderID string, userID string) (models.Folder, error) {
	return m.GetFolderFunc(ctx, folderID, userID)
}

func (m *mockFolderRepository) GetAllFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	return m.GetAllFoldersFunc(ctx, userID)
}

func (m *mockFolderRepository) UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	return m.UpdateFolderFunc(ctx, folder)
}

func (m *mockFolderRepository) DeleteFolder(ctx context.Context, folderID string, userID string, updatedAt string) (int64, error) {
	return m.DeleteFolderFunc(ctx, folderID, userID, updatedAt)
}

type mockUserRepository struct {
	CreateUserFunc      func(ctx context.Context, user models.User) error
	FindUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	GetUserByIDFunc     func(ctx context.Context, userID string) (models.User, error)
	TouchUserFunc       func(ctx context.Context, userID string, updatedAt string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) error {
	return m.CreateUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.FindUserByEmailFunc(ctx, email)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	return m.GetUserByIDFunc(ctx, userID)
}

func (m *mockUserRepository) TouchUser(ctx context.Context, userID string, updatedAt string) error {
	return m.TouchUserFunc(ctx, userID, updatedAt)
}

type mockRevisionRepository struct {
	GetUserUpdatedAtFunc      func(ctx context.Context, userID string) (string, error)
	GetMaxCipherUpdatedAtFunc func(ctx context.Context, userID string) (*string, error)
	GetMaxFolderUpdatedAtFunc func(ctx context.Context, userID string) (*string, error)
}

func (m *mockRevisionRepository) GetUserUpdatedAt(ctx context.Context, userID string) (string, error) {
	return m.GetUserUpdatedAtFunc(ctx, userID)
}

func (m *mockRevisionRepository) GetMaxCipherUpdatedAt(ctx context.Context, userID string) (*string, error) {
	return m.GetMaxCipherUpdatedAtFunc(ctx, userID)
}

func (m *mockRevisionRepository) GetMaxFolderUpdatedAt(ctx context.Context, userID string) (*string, error) {
	return m.GetMaxFolderUpdatedAtFunc(ctx, userID)
}
