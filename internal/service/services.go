package service

import (
	"github.com/olekhv/vaultkeep/internal/config"
	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AccountService  AccountService
	CipherService   CipherService
	FolderService   FolderService
	RevisionService RevisionService
	SyncService     SyncService
}

// NewServices wires all services over the given repositories.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AccountService:  NewAccountService(repositories.UserRepository, cfg.App, logger),
		CipherService:   NewCipherService(repositories.CipherRepository, repositories.FolderRepository, repositories.UserRepository, logger),
		FolderService:   NewFolderService(repositories.FolderRepository, repositories.UserRepository, logger),
		RevisionService: NewRevisionService(repositories.RevisionRepository, logger),
		SyncService:     NewSyncService(repositories.UserRepository, repositories.CipherRepository, repositories.FolderRepository, logger),
	}
}
