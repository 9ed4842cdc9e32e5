package vectorDB

import (
	"context"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
)

// Store is the persistent vector index keyed by chunk ID.
//
// Opening a store that does not exist yet behaves as an empty one: GetAllIDs
// returns an empty set rather than an error. Destroy wipes the records and
// the backing location itself; the store stays usable afterwards and starts
// empty.
type Store interface {
	// GetAllIDs fetches only the chunk IDs currently present, no vectors or
	// content.
	GetAllIDs(ctx context.Context) ([]string, error)

	// UpsertBatch writes chunks with their vectors, keyed by chunk ID.
	// len(vectors) must equal len(chunks).
	UpsertBatch(ctx context.Context, chunks []kbModels.DocChunk, vectors [][]float32) error

	// Delete removes the given chunk IDs in one batch call.
	Delete(ctx context.Context, ids []string) error

	Destroy(ctx context.Context) error
	Close() error
}
