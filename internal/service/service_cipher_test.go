package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/store"
	"github.com/olekhv/vaultkeep/internal/utils"
	"github.com/olekhv/vaultkeep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNow = "2025-06-01T12:00:00.000Z"

func newCipherService(cipherRepo *mockCipherRepository, userRepo *mockUserRepository) *cipherService {
	return &cipherService{
		cipherRepository: cipherRepo,
		userRepository:   userRepo,
		uuid:             utils.NewUUIDGenerator(),
		now:              func() string { return testNow },
		logger:           logger.Nop(),
	}
}

func loginRequest() models.CipherRequest {
	return models.CipherRequest{
		Type:  models.CipherTypeLogin,
		Name:  json.RawMessage(`"2.name|iv|mac"`),
		Login: json.RawMessage(`{"username":"2.user|iv|mac","password":"2.pass|iv|mac"}`),
	}
}

func TestCreateCipher_AssignsServerFields(t *testing.T) {
	var stored models.Cipher
	cipherRepo := &mockCipherRepository{
		CreateCipherFunc: func(ctx context.Context, cipher models.Cipher) error {
			stored = cipher
			return nil
		},
	}

	svc := newCipherService(cipherRepo, nil)
	created, err := svc.CreateCipher(context.Background(), "user-1", loginRequest(), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "user-1", *stored.UserID)
	assert.Equal(t, testNow, stored.CreatedAt)
	assert.Equal(t, testNow, stored.UpdatedAt)
	assert.Nil(t, stored.DeletedAt)
	assert.False(t, stored.Favorite)

	assert.Equal(t, "cipher", created.Object)
	assert.True(t, created.Edit)
	assert.True(t, created.ViewPassword)
	assert.False(t, created.OrganizationUseTotp)
}

func TestCreateCipher_BothEntryShapesProduceIdenticalEntities(t *testing.T) {
	var flat, enveloped models.Cipher
	cipherRepo := &mockCipherRepository{}
	svc := newCipherService(cipherRepo, nil)

	request := loginRequest()
	envelope := models.CreateCipherRequest{Cipher: request, CollectionIDs: []string{"col-1"}}

	cipherRepo.CreateCipherFunc = func(ctx context.Context, cipher models.Cipher) error {
		flat = cipher
		return nil
	}
	_, err := svc.CreateCipher(context.Background(), "user-1", request, []string{"col-1"})
	require.NoError(t, err)

	cipherRepo.CreateCipherFunc = func(ctx context.Context, cipher models.Cipher) error {
		enveloped = cipher
		return nil
	}
	_, err = svc.CreateCipher(context.Background(), "user-1", envelope.Cipher, envelope.CollectionIDs)
	require.NoError(t, err)

	// everything except the generated id must match
	enveloped.ID = flat.ID
	assert.Equal(t, flat, enveloped)
}

func TestCreateCipher_UnknownTypeIsStoredVerbatim(t *testing.T) {
	var stored models.Cipher
	cipherRepo := &mockCipherRepository{
		CreateCipherFunc: func(ctx context.Context, cipher models.Cipher) error {
			stored = cipher
			return nil
		},
	}

	svc := newCipherService(cipherRepo, nil)

	// the discriminant is opaque: values outside the known set pass through
	request := loginRequest()
	request.Type = 9

	created, err := svc.CreateCipher(context.Background(), "user-1", request, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CipherType(9), stored.Type)
	assert.Equal(t, models.CipherType(9), created.Type)
}

func TestCreateCipher_StoresItemKey(t *testing.T) {
	itemKey := "2.itemkey|iv|mac"
	var stored models.Cipher
	cipherRepo := &mockCipherRepository{
		CreateCipherFunc: func(ctx context.Context, cipher models.Cipher) error {
			stored = cipher
			return nil
		},
	}

	svc := newCipherService(cipherRepo, nil)

	request := loginRequest()
	request.Key = &itemKey

	created, err := svc.CreateCipher(context.Background(), "user-1", request, nil)
	require.NoError(t, err)
	require.NotNil(t, stored.Key)
	assert.Equal(t, itemKey, *stored.Key)
	require.NotNil(t, created.Key)
	assert.Equal(t, itemKey, *created.Key)
}

func TestUpdateCipher_ClearsAbsentFields(t *testing.T) {
	var updated models.Cipher
	cipherRepo := &mockCipherRepository{
		UpdateCipherFunc: func(ctx context.Context, cipher models.Cipher) (models.Cipher, error) {
			updated = cipher
			cipher.CreatedAt = "2025-01-01T00:00:00.000Z"
			return cipher, nil
		},
	}

	svc := newCipherService(cipherRepo, nil)

	// request without folder or favorite: both reset
	request := loginRequest()
	result, err := svc.UpdateCipher(context.Background(), "user-1", "cipher-1", request)
	require.NoError(t, err)

	assert.Nil(t, updated.FolderID)
	assert.Nil(t, updated.Key)
	assert.False(t, updated.Favorite)
	assert.Equal(t, testNow, updated.UpdatedAt)
	assert.Equal(t, "2025-01-01T00:00:00.000Z", result.CreatedAt)
}

func TestUpdateCipher_CarriesItemKey(t *testing.T) {
	itemKey := "2.itemkey|iv|mac"
	var updated models.Cipher
	cipherRepo := &mockCipherRepository{
		UpdateCipherFunc: func(ctx context.Context, cipher models.Cipher) (models.Cipher, error) {
			updated = cipher
			return cipher, nil
		},
	}

	svc := newCipherService(cipherRepo, nil)

	request := loginRequest()
	request.Key = &itemKey

	_, err := svc.UpdateCipher(context.Background(), "user-1", "cipher-1", request)
	require.NoError(t, err)
	require.NotNil(t, updated.Key)
	assert.Equal(t, itemKey, *updated.Key)
}

func TestPatchCipher_EmptyPatchReturnsCurrentState(t *testing.T) {
	cipherRepo := &mockCipherRepository{
		GetCipherFunc: func(ctx context.Context, cipherID string, userID string) (models.Cipher, error) {
			return models.Cipher{ID: cipherID, UpdatedAt: "2025-01-01T00:00:00.000Z"}, nil
		},
		PatchCipherFunc: func(ctx context.Context, cipherID string, userID string, patch models.CipherPatch, updatedAt string) (models.Cipher, error) {
			t.Fatal("empty patch must not reach the repository")
			return models.Cipher{}, nil
		},
	}

	svc := newCipherService(cipherRepo, nil)
	cipher, err := svc.PatchCipher(context.Background(), "user-1", "cipher-1", models.CipherPatch{})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01T00:00:00.000Z", cipher.UpdatedAt)
}

func TestPatchCipher_FieldsAreIndependent(t *testing.T) {
	favorite := true
	var gotPatch models.CipherPatch

	cipherRepo := &mockCipherRepository{
		PatchCipherFunc: func(ctx context.Context, cipherID string, userID string, patch models.CipherPatch, updatedAt string) (models.Cipher, error) {
			gotPatch = patch
			return models.Cipher{ID: cipherID, Favorite: true}, nil
		},
	}

	svc := newCipherService(cipherRepo, nil)
	_, err := svc.PatchCipher(context.Background(), "user-1", "cipher-1", models.CipherPatch{Favorite: &favorite})
	require.NoError(t, err)

	assert.Nil(t, gotPatch.FolderID)
	require.NotNil(t, gotPatch.Favorite)
	assert.True(t, *gotPatch.Favorite)
}

func TestSoftDeleteCipher_UniformSuccessOnZeroRows(t *testing.T) {
	cipherRepo := &mockCipherRepository{
		SoftDeleteCipherFunc: func(ctx context.Context, cipherID string, userID string, deletedAt string) (int64, error) {
			return 0, nil
		},
	}

	svc := newCipherService(cipherRepo, nil)
	assert.NoError(t, svc.SoftDeleteCipher(context.Background(), "user-1", "missing"))
}

func TestSoftDeleteCipher_StampsDeleteTime(t *testing.T) {
	var gotDeletedAt string
	cipherRepo := &mockCipherRepository{
		SoftDeleteCipherFunc: func(ctx context.Context, cipherID string, userID string, deletedAt string) (int64, error) {
			gotDeletedAt = deletedAt
			return 1, nil
		},
	}

	svc := newCipherService(cipherRepo, nil)
	require.NoError(t, svc.SoftDeleteCipher(context.Background(), "user-1", "cipher-1"))
	assert.Equal(t, testNow, gotDeletedAt)
}

func TestRestoreCipher_MissingItemIsError(t *testing.T) {
	cipherRepo := &mockCipherRepository{
		RestoreCipherFunc: func(ctx context.Context, cipherID string, userID string, updatedAt string) (models.Cipher, error) {
			return models.Cipher{}, store.ErrCipherNotFound
		},
	}

	svc := newCipherService(cipherRepo, nil)
	_, err := svc.RestoreCipher(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, store.ErrCipherNotFound)
}

func TestHardDeleteCipher_BumpsAccountTimestamp(t *testing.T) {
	touched := false
	cipherRepo := &mockCipherRepository{
		HardDeleteCipherFunc: func(ctx context.Context, cipherID string, userID string) (int64, error) {
			return 1, nil
		},
	}
	userRepo := &mockUserRepository{
		TouchUserFunc: func(ctx context.Context, userID string, updatedAt string) error {
			touched = true
			assert.Equal(t, "user-1", userID)
			return nil
		},
	}

	svc := newCipherService(cipherRepo, userRepo)
	require.NoError(t, svc.HardDeleteCipher(context.Background(), "user-1", "cipher-1"))
	assert.True(t, touched)
}

func TestImportVault_LinksCiphersToImportedFolders(t *testing.T) {
	var createdFolders []models.Folder
	var createdCiphers []models.Cipher

	cipherRepo := &mockCipherRepository{
		CreateCipherFunc: func(ctx context.Context, cipher models.Cipher) error {
			createdCiphers = append(createdCiphers, cipher)
			return nil
		},
	}
	folderRepo := &mockFolderRepository{
		CreateFolderFunc: func(ctx context.Context, folder models.Folder) error {
			createdFolders = append(createdFolders, folder)
			return nil
		},
	}

	svc := newCipherService(cipherRepo, nil)
	svc.folderRepository = folderRepo

	itemKey := "2.itemkey|iv|mac"
	keyed := loginRequest()
	keyed.Key = &itemKey

	request := models.ImportRequest{
		Ciphers: []models.CipherRequest{keyed, loginRequest()},
		Folders: []models.FolderRequest{
			{Name: "2.work|iv|mac"},
			{Name: "2.personal|iv|mac"},
		},
		FolderRelationships: []models.ImportRelationship{
			{Key: 0, Value: 1},
			{Key: 1, Value: 0},
		},
	}

	require.NoError(t, svc.ImportVault(context.Background(), "user-1", request))

	require.Len(t, createdFolders, 2)
	assert.Equal(t, "2.work|iv|mac", createdFolders[0].Name)
	assert.Equal(t, "user-1", *createdFolders[0].UserID)
	assert.Equal(t, testNow, createdFolders[0].CreatedAt)

	require.Len(t, createdCiphers, 2)
	require.NotNil(t, createdCiphers[0].FolderID)
	assert.Equal(t, createdFolders[1].ID, *createdCiphers[0].FolderID)
	require.NotNil(t, createdCiphers[1].FolderID)
	assert.Equal(t, createdFolders[0].ID, *createdCiphers[1].FolderID)

	require.NotNil(t, createdCiphers[0].Key)
	assert.Equal(t, itemKey, *createdCiphers[0].Key)
	assert.Equal(t, "user-1", *createdCiphers[0].UserID)
	assert.Equal(t, testNow, createdCiphers[0].UpdatedAt)
}

func TestImportVault_UnrelatedCipherKeepsOwnFolder(t *testing.T) {
	var created models.Cipher
	cipherRepo := &mockCipherRepository{
		CreateCipherFunc: func(ctx context.Context, cipher models.Cipher) error {
			created = cipher
			return nil
		},
	}

	svc := newCipherService(cipherRepo, nil)
	svc.folderRepository = &mockFolderRepository{}

	ownFolder := "folder-preexisting"
	request := loginRequest()
	request.FolderID = &ownFolder

	err := svc.ImportVault(context.Background(), "user-1", models.ImportRequest{
		Ciphers: []models.CipherRequest{request},
	})
	require.NoError(t, err)
	require.NotNil(t, created.FolderID)
	assert.Equal(t, ownFolder, *created.FolderID)
}

func TestImportVault_RelationshipOutsideImportIsRejected(t *testing.T) {
	cipherRepo := &mockCipherRepository{
		CreateCipherFunc: func(ctx context.Context, cipher models.Cipher) error {
			t.Fatal("no cipher may be created for an invalid import")
			return nil
		},
	}
	folderRepo := &mockFolderRepository{
		CreateFolderFunc: func(ctx context.Context, folder models.Folder) error {
			return nil
		},
	}

	svc := newCipherService(cipherRepo, nil)
	svc.folderRepository = folderRepo

	err := svc.ImportVault(context.Background(), "user-1", models.ImportRequest{
		Ciphers:             []models.CipherRequest{loginRequest()},
		Folders:             []models.FolderRequest{{Name: "2.work|iv|mac"}},
		FolderRelationships: []models.ImportRelationship{{Key: 0, Value: 3}},
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestImportVault_UnnamedFolderIsRejected(t *testing.T) {
	svc := newCipherService(&mockCipherRepository{}, nil)
	svc.folderRepository = &mockFolderRepository{}

	err := svc.ImportVault(context.Background(), "user-1", models.ImportRequest{
		Folders: []models.FolderRequest{{Name: ""}},
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
