package adapter

import "context"

// ServerAdapter is the client-side view of the vaultkeep API used by the
// staleness checker.
type ServerAdapter interface {
	// RevisionDate fetches the server-side vault revision in epoch
	// milliseconds.
	RevisionDate(ctx context.Context) (int64, error)
}
