package service

import (
	"context"
	"fmt"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/store"
	"github.com/olekhv/vaultkeep/internal/utils"
	"github.com/olekhv/vaultkeep/models"
)

// cipherService is the concrete implementation of [CipherService]. It owns
// the server-assigned parts of the entity (id, timestamps, wire constants)
// and delegates persistence to a [store.CipherRepository].
type cipherService struct {
	cipherRepository store.CipherRepository
	folderRepository store.FolderRepository
	userRepository   store.UserRepository
	uuid             *utils.UUIDGenerator
	now              func() string
	logger           *logger.Logger
}

// NewCipherService constructs a [CipherService] over the given repositories.
func NewCipherService(cipherRepository store.CipherRepository, folderRepository store.FolderRepository, userRepository store.UserRepository, logger *logger.Logger) CipherService {
	return &cipherService{
		cipherRepository: cipherRepository,
		folderRepository: folderRepository,
		userRepository:   userRepository,
		uuid:             utils.NewUUIDGenerator(),
		now:              models.NowTimestamp,
		logger:           logger,
	}
}

// CreateCipher builds a fresh entity from the request and persists it. Both
// create entry shapes funnel into this method, so a flat request and an
// enveloped one produce identical stored entities.
//
// The folder reference, if present, is stored without validation against the
// folders table; clients own the consistency of that link. The type
// discriminant is stored verbatim too: payloads are opaque and the server
// never cross-checks them against the type.
func (s *cipherService) CreateCipher(ctx context.Context, userID string, request models.CipherRequest, collectionIDs []string) (models.Cipher, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	cipher := models.Cipher{
		ID:             s.uuid.Generate(),
		UserID:         &userID,
		OrganizationID: request.OrganizationID,
		Type:           request.Type,
		Data:           request.Data(),
		Favorite:       request.Favorite,
		FolderID:       request.FolderID,
		CollectionIDs:  collectionIDs,
		Key:            request.Key,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.cipherRepository.CreateCipher(ctx, cipher); err != nil {
		log.Err(err).Str("func", "*cipherService.CreateCipher").Msg("cipher creation ended with error")
		return models.Cipher{}, fmt.Errorf("cipher creation ended with error: %w", err)
	}

	return decorateCipher(cipher), nil
}

func (s *cipherService) GetCipher(ctx context.Context, userID string, cipherID string) (models.Cipher, error) {
	cipher, err := s.cipherRepository.GetCipher(ctx, cipherID, userID)
	if err != nil {
		return models.Cipher{}, err
	}

	return decorateCipher(cipher), nil
}

func (s *cipherService) GetAllCiphers(ctx context.Context, userID string) ([]models.Cipher, error) {
	ciphers, err := s.cipherRepository.GetAllCiphers(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range ciphers {
		ciphers[i] = decorateCipher(ciphers[i])
	}

	return ciphers, nil
}

// UpdateCipher replaces every client-controlled field with the request's
// values. Fields absent from the request are cleared, not preserved; the
// server-controlled created_at and deleted_at survive untouched.
func (s *cipherService) UpdateCipher(ctx context.Context, userID string, cipherID string, request models.CipherRequest) (models.Cipher, error) {
	cipher := models.Cipher{
		ID:             cipherID,
		UserID:         &userID,
		OrganizationID: request.OrganizationID,
		Type:           request.Type,
		Data:           request.Data(),
		Favorite:       request.Favorite,
		FolderID:       request.FolderID,
		CollectionIDs:  request.CollectionIDs,
		Key:            request.Key,
		UpdatedAt:      s.now(),
	}

	updated, err := s.cipherRepository.UpdateCipher(ctx, cipher)
	if err != nil {
		return models.Cipher{}, err
	}

	return decorateCipher(updated), nil
}

func (s *cipherService) PatchCipher(ctx context.Context, userID string, cipherID string, patch models.CipherPatch) (models.Cipher, error) {
	if patch.Empty() {
		// nothing to apply, return the current state
		return s.GetCipher(ctx, userID, cipherID)
	}

	patched, err := s.cipherRepository.PatchCipher(ctx, cipherID, userID, patch, s.now())
	if err != nil {
		return models.Cipher{}, err
	}

	return decorateCipher(patched), nil
}

// SoftDeleteCipher tombstones the cipher. The write is a filtered update
// that reports uniform success: deleting an already-deleted or absent item
// is indistinguishable from the first delete, only the affected-row count
// in the logs differs.
func (s *cipherService) SoftDeleteCipher(ctx context.Context, userID string, cipherID string) error {
	log := logger.FromContext(ctx)

	affected, err := s.cipherRepository.SoftDeleteCipher(ctx, cipherID, userID, s.now())
	if err != nil {
		return err
	}
	log.Debug().Int64("affected", affected).Str("cipher_id", cipherID).Msg("cipher soft delete")

	return nil
}

// RestoreCipher clears the tombstone and returns the refreshed entity.
// Unlike delete, restore of a missing item is an error.
func (s *cipherService) RestoreCipher(ctx context.Context, userID string, cipherID string) (models.Cipher, error) {
	restored, err := s.cipherRepository.RestoreCipher(ctx, cipherID, userID, s.now())
	if err != nil {
		return models.Cipher{}, err
	}

	return decorateCipher(restored), nil
}

// HardDeleteCipher removes the row permanently. Because the row no longer
// contributes to the revision computation afterwards, the owner's account
// timestamp is bumped so clients still observe a revision change.
func (s *cipherService) HardDeleteCipher(ctx context.Context, userID string, cipherID string) error {
	log := logger.FromContext(ctx)

	affected, err := s.cipherRepository.HardDeleteCipher(ctx, cipherID, userID)
	if err != nil {
		return err
	}
	log.Debug().Int64("affected", affected).Str("cipher_id", cipherID).Msg("cipher hard delete")

	if err := s.userRepository.TouchUser(ctx, userID, s.now()); err != nil {
		log.Err(err).Str("func", "*cipherService.HardDeleteCipher").Msg("error bumping account timestamp")
		return err
	}

	return nil
}

// ImportVault creates the folders and ciphers of a bulk import in one call.
// Folders are created first so the relationship list can link each cipher to
// its imported folder by index; a cipher without a relationship keeps the
// folder id of its own request, unvalidated as everywhere else.
func (s *cipherService) ImportVault(ctx context.Context, userID string, request models.ImportRequest) error {
	log := logger.FromContext(ctx)

	now := s.now()

	folderIDs := make([]string, len(request.Folders))
	for i, folderRequest := range request.Folders {
		if folderRequest.Name == "" {
			log.Error().Int("index", i).Msg("imported folder without a name")
			return ErrInvalidDataProvided
		}

		folder := models.Folder{
			ID:        s.uuid.Generate(),
			UserID:    &userID,
			Name:      folderRequest.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.folderRepository.CreateFolder(ctx, folder); err != nil {
			log.Err(err).Str("func", "*cipherService.ImportVault").Msg("error creating imported folder")
			return fmt.Errorf("error creating imported folder: %w", err)
		}
		folderIDs[i] = folder.ID
	}

	folderByCipher := make(map[int]string, len(request.FolderRelationships))
	for _, rel := range request.FolderRelationships {
		if rel.Value < 0 || rel.Value >= len(folderIDs) {
			log.Error().Int("cipher", rel.Key).Int("folder", rel.Value).Msg("relationship references a folder outside the import")
			return ErrInvalidDataProvided
		}
		folderByCipher[rel.Key] = folderIDs[rel.Value]
	}

	for i, cipherRequest := range request.Ciphers {
		cipher := models.Cipher{
			ID:             s.uuid.Generate(),
			UserID:         &userID,
			OrganizationID: cipherRequest.OrganizationID,
			Type:           cipherRequest.Type,
			Data:           cipherRequest.Data(),
			Favorite:       cipherRequest.Favorite,
			FolderID:       cipherRequest.FolderID,
			CollectionIDs:  cipherRequest.CollectionIDs,
			Key:            cipherRequest.Key,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if folderID, ok := folderByCipher[i]; ok {
			cipher.FolderID = &folderID
		}

		if err := s.cipherRepository.CreateCipher(ctx, cipher); err != nil {
			log.Err(err).Str("func", "*cipherService.ImportVault").Msg("error creating imported cipher")
			return fmt.Errorf("error creating imported cipher: %w", err)
		}
	}

	log.Debug().Int("ciphers", len(request.Ciphers)).Int("folders", len(request.Folders)).Msg("vault import finished")
	return nil
}

// decorateCipher fills in the wire-level constants that are not persisted.
func decorateCipher(cipher models.Cipher) models.Cipher {
	cipher.Object = "cipher"
	cipher.Edit = true
	cipher.ViewPassword = true
	cipher.OrganizationUseTotp = false
	return cipher
}
