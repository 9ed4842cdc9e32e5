package ingest

import (
	"fmt"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
)

// CalculateChunkIDs assigns each chunk an ID like "data/monopoly.pdf:6:2"
// (source : page : chunk index within that page). The index restarts at 0
// whenever the (source, page) pair changes from the previous chunk, so as
// long as chunks arrive grouped by page the IDs are unique and reproduce
// identically on every run over the same corpus. No content hash is involved:
// identity is purely positional, which is what makes re-ingestion idempotent
// but also means changed split parameters leave stale entries behind.
func CalculateChunkIDs(chunks []kbModels.DocChunk) []kbModels.DocChunk {
	var lastPageID string
	currentChunkIndex := 0

	for i, chunk := range chunks {
		currentPageID := fmt.Sprintf("%s:%d", chunk.Source, chunk.Page)

		// If the page ID is the same as the last one, increment the index.
		if i > 0 && currentPageID == lastPageID {
			currentChunkIndex++
		} else {
			currentChunkIndex = 0
		}

		chunks[i].ID = fmt.Sprintf("%s:%d", currentPageID, currentChunkIndex)
		lastPageID = currentPageID
	}

	return chunks
}
