package kb

import (
	"context"
	"fmt"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/config"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
)

func populateFailure(kind kbModels.FailureKind, message string) kbModels.PopulateResult {
	return kbModels.PopulateResult{Message: message, FailureKind: kind}
}

func clearFailure(message string) kbModels.ClearResult {
	return kbModels.ClearResult{Message: message, FailureKind: kbModels.FailureBackend}
}

// batchIngest embeds and upserts chunks in fixed-size batches so a large
// corpus does not turn into one oversized embedding request.
func (s *service) batchIngest(ctx context.Context, chunks []kbModels.DocChunk) error {
	batchSize := config.EmbeddingBatchSize

	for i := 0; i < len(chunks); i += batchSize {
		end := i + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		currentBatch := chunks[i:end]

		texts := make([]string, len(currentBatch))
		for j, c := range currentBatch {
			texts[j] = c.Content
		}

		s.logger.Debug("Starting embedding call", "batch length", len(currentBatch))
		vectors, err := s.embedder.BatchEmbedding(ctx, texts)
		if err != nil {
			return fmt.Errorf("embedding batch failed: %w", err)
		}

		if err := s.store.UpsertBatch(ctx, currentBatch, vectors); err != nil {
			return fmt.Errorf("upserting to store failed: %w", err)
		}
	}

	return nil
}
