package service

import (
	"context"
	"fmt"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/store"
	"github.com/olekhv/vaultkeep/internal/utils"
	"github.com/olekhv/vaultkeep/models"
)

// folderService is the concrete implementation of [FolderService].
type folderService struct {
	folderRepository store.FolderRepository
	userRepository   store.UserRepository
	uuid             *utils.UUIDGenerator
	now              func() string
	logger           *logger.Logger
}

// NewFolderService constructs a [FolderService] over the given repositories.
func NewFolderService(folderRepository store.FolderRepository, userRepository store.UserRepository, logger *logger.Logger) FolderService {
	return &folderService{
		folderRepository: folderRepository,
		userRepository:   userRepository,
		uuid:             utils.NewUUIDGenerator(),
		now:              models.NowTimestamp,
		logger:           logger,
	}
}

func (s *folderService) CreateFolder(ctx context.Context, userID string, request models.FolderRequest) (models.Folder, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" {
		log.Error().Msg("empty folder name")
		return models.Folder{}, ErrInvalidDataProvided
	}

	now := s.now()
	folder := models.Folder{
		ID:        s.uuid.Generate(),
		UserID:    &userID,
		Name:      request.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.folderRepository.CreateFolder(ctx, folder); err != nil {
		log.Err(err).Str("func", "*folderService.CreateFolder").Msg("folder creation ended with error")
		return models.Folder{}, fmt.Errorf("folder creation ended with error: %w", err)
	}

	return decorateFolder(folder), nil
}

func (s *folderService) GetFolder(ctx context.Context, userID string, folderID string) (models.Folder, error) {
	folder, err := s.folderRepository.GetFolder(ctx, folderID, userID)
	if err != nil {
		return models.Folder{}, err
	}

	return decorateFolder(folder), nil
}

func (s *folderService) GetAllFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	folders, err := s.folderRepository.GetAllFolders(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range folders {
		folders[i] = decorateFolder(folders[i])
	}

	return folders, nil
}

func (s *folderService) UpdateFolder(ctx context.Context, userID string, folderID string, request models.FolderRequest) (models.Folder, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" {
		log.Error().Msg("empty folder name")
		return models.Folder{}, ErrInvalidDataProvided
	}

	folder := models.Folder{
		ID:        folderID,
		UserID:    &userID,
		Name:      request.Name,
		UpdatedAt: s.now(),
	}

	updated, err := s.folderRepository.UpdateFolder(ctx, folder)
	if err != nil {
		return models.Folder{}, err
	}

	return decorateFolder(updated), nil
}

// DeleteFolder removes the folder permanently and detaches its ciphers.
// The delete reports uniform success regardless of whether a row existed;
// the affected-row count is only logged. The owner's account timestamp is
// bumped so the revision date still advances after the row is gone.
func (s *folderService) DeleteFolder(ctx context.Context, userID string, folderID string) error {
	log := logger.FromContext(ctx)

	now := s.now()
	affected, err := s.folderRepository.DeleteFolder(ctx, folderID, userID, now)
	if err != nil {
		return err
	}
	log.Debug().Int64("affected", affected).Str("folder_id", folderID).Msg("folder delete")

	if err := s.userRepository.TouchUser(ctx, userID, now); err != nil {
		log.Err(err).Str("func", "*folderService.DeleteFolder").Msg("error bumping account timestamp")
		return err
	}

	return nil
}

// decorateFolder fills in the wire-level constants that are not persisted.
func decorateFolder(folder models.Folder) models.Folder {
	folder.Object = "folder"
	return folder
}
