package http

import (
	"context"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/service"
	"github.com/olekhv/vaultkeep/models"
)

// Hand-rolled service mocks: each method delegates to a settable function
// field, so a test configures only what it touches.

type mockCipherService struct {
	CreateCipherFunc     func(ctx context.Context, userID string, request models.CipherRequest, collectionIDs []string) (models.Cipher, error)
	GetCipherFunc        func(ctx context.Context, userID string, cipherID string) (models.Cipher, error)
	GetAllCiphersFunc    func(ctx context.Context, userID string) ([]models.Cipher, error)
	UpdateCipherFunc     func(ctx context.Context, userID string, cipherID string, request models.CipherRequest) (models.Cipher, error)
	PatchCipherFunc      func(ctx context.Context, userID string, cipherID string, patch models.CipherPatch) (models.Cipher, error)
	SoftDeleteCipherFunc func(ctx context.Context, userID string, cipherID string) error
	RestoreCipherFunc    func(ctx context.Context, userID string, cipherID string) (models.Cipher, error)
	HardDeleteCipherFunc func(ctx context.Context, userID string, cipherID string) error
	ImportVaultFunc      func(ctx context.Context, userID string, request models.ImportRequest) error
}

func (m *mockCipherService) CreateCipher(ctx context.Context, userID string, request models.CipherRequest, collectionIDs []string) (models.Cipher, error) {
	return m.CreateCipherFunc(ctx, userID, request, collectionIDs)
}

func (m *mockCipherService) GetCipher(ctx context.Context, userID string, cipherID string) (models.Cipher, error) {
	return m.GetCipherFunc(ctx, userID, cipherID)
}

func (m *mockCipherService) GetAllCiphers(ctx context.Context, userID string) ([]models.Cipher, error) {
	return m.GetAllCiphersFunc(ctx, userID)
}

func (m *mockCipherService) UpdateCipher(ctx context.Context, userID string, cipherID string, request models.CipherRequest) (models.Cipher, error) {
	return m.UpdateCipherFunc(ctx, userID, cipherID, request)
}

func (m *mockCipherService) PatchCipher(ctx context.Context, userID string, cipherID string, patch models.CipherPatch) (models.Cipher, error) {
	return m.PatchCipherFunc(ctx, userID, cipherID, patch)
}

func (m *mockCipherService) SoftDeleteCipher(ctx context.Context, userID string, cipherID string) error {
	return m.SoftDeleteCipherFunc(ctx, userID, cipherID)
}

func (m *mockCipherService) RestoreCipher(ctx context.Context, userID string, cipherID string) (models.Cipher, error) {
	return m.RestoreCipherFunc(ctx, userID, cipherID)
}

func (m *mockCipherService) HardDeleteCipher(ctx context.Context, userID string, cipherID string) error {
	return m.HardDeleteCipherFunc(ctx, userID, cipherID)
}

func (m *mockCipherService) ImportVault(ctx context.Context, userID string, request models.ImportRequest) error {
	return m.ImportVaultFunc(ctx, userID, request)
}

type mockFolderService struct {
	CreateFolderFunc  func(ctx context.Context, userID string, request models.FolderRequest) (models.Folder, error)
	GetFolderFunc     func(ctx context.Context, userID string, folderID string) (models.Folder, error)
	GetAllFoldersFunc func(ctx context.Context, userID string) ([]models.Folder, error)
	UpdateFolderFunc  func(ctx context.Context, userID string, folderID string, request models.FolderRequest) (models.Folder, error)
	DeleteFolderFunc  func(ctx context.Context, userID string, folderID string) error
}

func (m *mockFolderService) CreateFolder(ctx context.Context, userID string, request models.FolderRequest) (models.Folder, error) {
	return m.CreateFolderFunc(ctx, userID, request)
}

func (m *mockFolderService) GetFolder(ctx context.Context, userID string, folderID string) (models.Folder, error) {
	return m.GetFolderFunc(ctx, userID, folderID)
}

func (m *mockFolderService) GetAllFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	return m.GetAllFoldersFunc(ctx, userID)
}

func (m *mockFolderService) UpdateFolder(ctx context.Context, userID string, folderID string, request models.FolderRequest) (models.Folder, error) {
	return m.UpdateFolderFunc(ctx, userID, folderID, request)
}

func (m *mockFolderService) DeleteFolder(ctx context.Context, userID string, folderID string) error {
	return m.DeleteFolderFunc(ctx, userID, folderID)
}

type mockRevisionService struct {
	RevisionDateFunc func(ctx context.Context, userID string) (int64, error)
}

func (m *mockRevisionService) RevisionDate(ctx context.Context, userID string) (int64, error) {
	return m.RevisionDateFunc(ctx, userID)
}

type mockAccountService struct {
	RegisterFunc      func(ctx context.Context, request models.RegisterRequest) error
	PreloginFunc      func(ctx context.Context, email string) models.PreloginResponse
	LoginFunc         func(ctx context.Context, email string, masterPasswordHash string) (models.TokenResponse, error)
	ProfileFunc       func(ctx context.Context, userID string) (models.Profile, error)
	ValidateTokenFunc func(tokenString string) (models.Token, error)
}

func (m *mockAccountService) Register(ctx context.Context, request models.RegisterRequest) error {
	return m.RegisterFunc(ctx, request)
}

func (m *mockAccountService) Prelogin(ctx context.Context, email string) models.PreloginResponse {
	return m.PreloginFunc(ctx, email)
}

func (m *mockAccountService) Login(ctx context.Context, email string, masterPasswordHash string) (models.TokenResponse, error) {
	return m.LoginFunc(ctx, email, masterPasswordHash)
}

func (m *mockAccountService) Profile(ctx context.Context, userID string) (models.Profile, error) {
	return m.ProfileFunc(ctx, userID)
}

func (m *mockAccountService) ValidateToken(tokenString string) (models.Token, error) {
	return m.ValidateTokenFunc(tokenString)
}

type mockSyncService struct {
	SyncFunc func(ctx context.Context, userID string) (models.SyncResponse, error)
}

func (m *mockSyncService) Sync(ctx context.Context, userID string) (models.SyncResponse, error) {
	return m.SyncFunc(ctx, userID)
}

// newTestHandler wires a handler over the given mocks. When no account
// service is supplied, a token validator that accepts any bearer token as
// "user-1" is installed so authenticated routes can be exercised.
func newTestHandler(services *service.Services) *Handler {
	if services.AccountService == nil {
		services.AccountService = &mockAccountService{
			ValidateTokenFunc: func(tokenString string) (models.Token, error) {
				return models.Token{UserID: "user-1"}, nil
			},
		}
	}
	return NewHandler(services, logger.Nop())
}
