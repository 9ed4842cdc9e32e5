package kb

import (
	"context"
	"fmt"
	"os"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/config"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/embedding"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/ingest"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/vectorDB"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/pkg/logger_i"
)

// Service is the public contract for the two knowledge-base operations. The
// CLI only talks to this interface; the store, embedder and loader behind it
// are swappable in tests.
type Service interface {
	// Populate loads the PDF corpus, splits it into identified chunks, and
	// upserts only the chunks whose IDs are not in the store yet. With reset
	// the store (backing location included) is destroyed first. Errors never
	// escape; callers check Result.Success.
	Populate(ctx context.Context, reset bool) kbModels.PopulateResult

	// Clear deletes every record currently in the store and reports how many
	// were removed.
	Clear(ctx context.Context) kbModels.ClearResult
}

type service struct {
	store    vectorDB.Store
	embedder embedding.Embedder
	loader   ingest.Loader
	cfg      config.Config
	logger   *logger_i.Logger
}

// NewService constructor
func NewService(store vectorDB.Store, embedder embedding.Embedder, loader ingest.Loader, cfg config.Config) Service {
	return &service{
		store:    store,
		embedder: embedder,
		loader:   loader,
		cfg:      cfg,
		logger:   logger_i.NewLogger("KB Service"),
	}
}

func (s *service) Populate(ctx context.Context, reset bool) kbModels.PopulateResult {
	if reset {
		s.logger.Info("Clearing knowledge base store")
		if err := s.store.Destroy(ctx); err != nil {
			return populateFailure(kbModels.FailureBackend, fmt.Sprintf("Error populating database: %v", err))
		}
	}

	if _, err := os.Stat(s.cfg.DataPath); os.IsNotExist(err) {
		return populateFailure(kbModels.FailurePrecondition,
			fmt.Sprintf("Data directory '%s' not found. Please create it and add PDF files.", s.cfg.DataPath))
	}

	documents, err := s.loader.Load(s.cfg.DataPath)
	if err != nil {
		return populateFailure(kbModels.FailureBackend, fmt.Sprintf("Error populating database: %v", err))
	}
	if len(documents) == 0 {
		return populateFailure(kbModels.FailurePrecondition,
			fmt.Sprintf("No PDF documents found in '%s' directory.", s.cfg.DataPath))
	}

	chunks := ingest.SplitDocuments(documents, config.ChunkSize, config.ChunkOverlap)
	chunks = ingest.CalculateChunkIDs(chunks)

	existingIDs, err := s.store.GetAllIDs(ctx)
	if err != nil {
		return populateFailure(kbModels.FailureBackend, fmt.Sprintf("Error populating database: %v", err))
	}
	s.logger.Info("Existing documents in store", "count", len(existingIDs))

	// Only add chunks whose IDs are not in the store yet. Existing entries
	// are skipped outright, never re-embedded or overwritten.
	existing := make(map[string]struct{}, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = struct{}{}
	}
	var newChunks []kbModels.DocChunk
	for _, chunk := range chunks {
		if _, ok := existing[chunk.ID]; !ok {
			newChunks = append(newChunks, chunk)
		}
	}

	var message string
	if len(newChunks) > 0 {
		s.logger.Info("Adding new documents", "count", len(newChunks))
		if err := s.batchIngest(ctx, newChunks); err != nil {
			return populateFailure(kbModels.FailureBackend, fmt.Sprintf("Error populating database: %v", err))
		}
		message = "Database populated successfully"
	} else {
		message = "No new documents were added. All documents already exist in the database."
	}

	return kbModels.PopulateResult{
		Success:            true,
		Message:            message,
		DocumentsProcessed: len(documents),
		ChunksCreated:      len(chunks),
		NewDocumentsAdded:  len(newChunks),
	}
}

func (s *service) Clear(ctx context.Context) kbModels.ClearResult {
	ids, err := s.store.GetAllIDs(ctx)
	if err != nil {
		return clearFailure(fmt.Sprintf("Error clearing database: %v", err))
	}

	if len(ids) == 0 {
		return kbModels.ClearResult{
			Success: true,
			Message: "No documents to delete in the knowledge base.",
		}
	}

	if err := s.store.Delete(ctx, ids); err != nil {
		return clearFailure(fmt.Sprintf("Error clearing database: %v", err))
	}

	return kbModels.ClearResult{
		Success:       true,
		Message:       fmt.Sprintf("Deleted %d documents from the knowledge base.", len(ids)),
		ChunksDeleted: len(ids),
	}
}
