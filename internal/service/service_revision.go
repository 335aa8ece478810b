package service

import (
	"context"
	"time"

	"github.com/olekhv/vaultkeep/internal/logger"
	"github.com/olekhv/vaultkeep/internal/store"
	"github.com/olekhv/vaultkeep/models"
)

// revisionService computes the vault revision date for one user: the most
// recent update instant across the account row, its ciphers and its folders,
// expressed in epoch milliseconds.
type revisionService struct {
	revisionRepository store.RevisionRepository
	now                func() time.Time
	logger             *logger.Logger
}

// NewRevisionService constructs a [RevisionService] over the given repository.
func NewRevisionService(revisionRepository store.RevisionRepository, logger *logger.Logger) RevisionService {
	return &revisionService{
		revisionRepository: revisionRepository,
		now:                time.Now,
		logger:             logger,
	}
}

// RevisionDate gathers three timestamps and picks the parseable maximum.
//
// The account's own updated_at is mandatory: if the user row cannot be read,
// the whole computation fails. The per-entity maxima are best-effort; a
// failed cipher or folder query degrades to "absent" rather than failing the
// request. Unparsable timestamps are discarded the same way. When not a
// single candidate survives, the current time is returned, which a client
// always treats as "changed".
func (s *revisionService) RevisionDate(ctx context.Context, userID string) (int64, error) {
	log := logger.FromContext(ctx)

	userUpdatedAt, err := s.revisionRepository.GetUserUpdatedAt(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*revisionService.RevisionDate").Msg("error reading account timestamp")
		return 0, err
	}

	candidates := make([]string, 0, 3)
	candidates = append(candidates, userUpdatedAt)

	if cipherMax, err := s.revisionRepository.GetMaxCipherUpdatedAt(ctx, userID); err != nil {
		log.Warn().Err(err).Msg("cipher timestamps unavailable, skipping")
	} else if cipherMax != nil {
		candidates = append(candidates, *cipherMax)
	}

	if folderMax, err := s.revisionRepository.GetMaxFolderUpdatedAt(ctx, userID); err != nil {
		log.Warn().Err(err).Msg("folder timestamps unavailable, skipping")
	} else if folderMax != nil {
		candidates = append(candidates, *folderMax)
	}

	var latest time.Time
	found := false
	for _, candidate := range candidates {
		parsed, err := models.ParseTimestamp(candidate)
		if err != nil {
			log.Warn().Str("timestamp", candidate).Msg("unparsable timestamp discarded")
			continue
		}
		if !found || parsed.After(latest) {
			latest = parsed
			found = true
		}
	}

	if !found {
		return s.now().UnixMilli(), nil
	}

	return latest.UnixMilli(), nil
}
