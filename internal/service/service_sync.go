package service

import (
	"context"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/store"
	"github.com/olekhv/vaultkeep/models"
)

// syncService assembles the full vault payload for one user: profile,
// folders and ciphers, tombstoned items included.
type syncService struct {
	userRepository   store.UserRepository
	cipherRepository store.CipherRepository
	folderRepository store.FolderRepository
	logger           *logger.Logger
}

// NewSyncService constructs a [SyncService] over the given repositories.
func NewSyncService(userRepository store.UserRepository, cipherRepository store.CipherRepository, folderRepository store.FolderRepository, logger *logger.Logger) SyncService {
	return &syncService{
		userRepository:   userRepository,
		cipherRepository: cipherRepository,
		folderRepository: folderRepository,
		logger:           logger,
	}
}

// Sync returns the complete vault state. Soft-deleted ciphers are carried
// with their deletedAt set so clients can reconcile local tombstones.
func (s *syncService) Sync(ctx context.Context, userID string) (models.SyncResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*syncService.Sync").Msg("error reading account")
		return models.SyncResponse{}, err
	}

	folders, err := s.folderRepository.GetAllFolders(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*syncService.Sync").Msg("error reading folders")
		return models.SyncResponse{}, err
	}
	for i := range folders {
		folders[i] = decorateFolder(folders[i])
	}

	ciphers, err := s.cipherRepository.GetAllCiphers(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*syncService.Sync").Msg("error reading ciphers")
		return models.SyncResponse{}, err
	}
	for i := range ciphers {
		ciphers[i] = decorateCipher(ciphers[i])
	}

	return models.SyncResponse{
		Profile:     buildProfile(user),
		Folders:     folders,
		Collections: []any{},
		Ciphers:     ciphers,
		Domains:     nil,
		Policies:    []any{},
		Sends:       []any{},
		Object:      "sync",
	}, nil
}
