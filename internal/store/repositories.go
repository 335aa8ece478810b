package store

import "github.com/olekhv/vaultkeep/internal/logger"

// Repositories bundles every repository the service layer depends on.
type Repositories struct {
	UserRepository     UserRepository
	CipherRepository   CipherRepository
	FolderRepository   FolderRepository
	RevisionRepository RevisionRepository
}

// NewRepositories wires all PostgreSQL-backed repositories over a single
// database connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, log),
		CipherRepository:   NewCipherRepository(db, log),
		FolderRepository:   NewFolderRepository(db, log),
		RevisionRepository: NewRevisionRepository(db, log),
	}
}
