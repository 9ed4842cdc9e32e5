package ingest

import (
	"strings"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
)

//splitter

func splitTextIntoChunks(text string, limit int, overlap int) []string {
	var chunks []string

	// If text is already small enough, just return it
	if len(text) <= limit {
		return []string{text}
	}

	// Separators ordered from "best" to "worst" for semantic meaning
	separators := []string{"\n\n", "\n", ". ", " ", ""}

	var splitChar string
	found := false
	for _, s := range separators {
		if strings.Contains(text, s) {
			splitChar = s
			found = true
			break
		}
	}

	if !found {
		// Hard cut if no separator found (rare)
		return []string{text[:limit]}
	}

	parts := strings.Split(text, splitChar)
	var currentChunk strings.Builder

	for _, part := range parts {
		// If adding the part exceeds the limit
		if currentChunk.Len()+len(part)+len(splitChar) > limit {
			if currentChunk.Len() > 0 {
				chunks = append(chunks, currentChunk.String())
			}

			// Handle overlap: start the next chunk with the end of the previous one
			// (Simple version: take last N chars)
			overlapContent := ""
			if currentChunk.Len() > overlap {
				overlapContent = currentChunk.String()[currentChunk.Len()-overlap:]
			}

			currentChunk.Reset()
			currentChunk.WriteString(overlapContent)
		}

		if currentChunk.Len() > 0 && splitChar != "" {
			currentChunk.WriteString(splitChar)
		}
		currentChunk.WriteString(part)
	}

	if currentChunk.Len() > 0 {
		chunks = append(chunks, currentChunk.String())
	}

	return chunks
}

// SplitDocuments splits each page's text into bounded, overlapping chunks.
// Documents are processed in input order and every chunk keeps its parent's
// source and page, so the output arrives grouped by (source, page) as
// CalculateChunkIDs requires.
func SplitDocuments(documents []kbModels.Document, limit int, overlap int) []kbModels.DocChunk {
	var allChunks []kbModels.DocChunk

	for _, doc := range documents {
		if doc.Text == "" {
			continue
		}
		for _, text := range splitTextIntoChunks(doc.Text, limit, overlap) {
			allChunks = append(allChunks, kbModels.DocChunk{
				Content: text,
				Source:  doc.Source,
				Page:    doc.Page,
			})
		}
	}

	return allChunks
}
