package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
)

func TestSplitTextIntoChunks(t *testing.T) {
	text := "This is a long sentence. This is another sentence that will be split."
	limit := 30
	overlap := 5

	chunks := splitTextIntoChunks(text, limit, overlap)

	if len(chunks) < 2 {
		t.Errorf("Expected multiple chunks, got %d", len(chunks))
	}

	for i, c := range chunks {
		if len(c) > limit {
			t.Errorf("chunk %d exceeds limit: %d > %d", i, len(c), limit)
		}
	}

	// Verify overlap (simple check if second chunk contains start of overlap)
	if len(chunks) > 1 {
		lastCharsOfFirst := chunks[0][len(chunks[0])-overlap:]
		if !strings.HasPrefix(chunks[1], lastCharsOfFirst) {
			t.Logf("Note: Basic overlap check failed, ensure logic matches: %s vs %s", lastCharsOfFirst, chunks[1])
		}
	}
}

func TestSplitTextIntoChunks_ShortText(t *testing.T) {
	chunks := splitTextIntoChunks("tiny", 800, 80)
	if len(chunks) != 1 || chunks[0] != "tiny" {
		t.Errorf("expected single passthrough chunk, got %v", chunks)
	}
}

func TestSplitDocuments(t *testing.T) {
	documents := []kbModels.Document{
		{Text: "Page one content.", Source: "data/doc1.pdf", Page: 0},
		{Text: "", Source: "data/doc1.pdf", Page: 1},
		{Text: "Page three content.", Source: "data/doc1.pdf", Page: 2},
	}

	chunks := SplitDocuments(documents, 800, 80)

	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks (empty page contributes none), got %d", len(chunks))
	}
	if chunks[0].Source != "data/doc1.pdf" || chunks[0].Page != 0 {
		t.Errorf("Metadata mismatch in chunk 0: %+v", chunks[0])
	}
	if chunks[1].Page != 2 {
		t.Errorf("Metadata mismatch in chunk 1: %+v", chunks[1])
	}
}

func TestCalculateChunkIDs(t *testing.T) {
	chunks := []kbModels.DocChunk{
		{Source: "data/doc1.pdf", Page: 0},
		{Source: "data/doc1.pdf", Page: 0},
		{Source: "data/doc1.pdf", Page: 0},
		{Source: "data/doc2.pdf", Page: 0},
		{Source: "data/doc2.pdf", Page: 0},
	}

	got := CalculateChunkIDs(chunks)

	want := []string{
		"data/doc1.pdf:0:0",
		"data/doc1.pdf:0:1",
		"data/doc1.pdf:0:2",
		"data/doc2.pdf:0:0",
		"data/doc2.pdf:0:1",
	}
	for i, w := range want {
		if got[i].ID != w {
			t.Errorf("chunk %d: got ID %q, want %q", i, got[i].ID, w)
		}
	}
}

func TestCalculateChunkIDs_ResetsOnPageChange(t *testing.T) {
	chunks := []kbModels.DocChunk{
		{Source: "a.pdf", Page: 0},
		{Source: "a.pdf", Page: 0},
		{Source: "a.pdf", Page: 1},
		{Source: "a.pdf", Page: 1},
		{Source: "b.pdf", Page: 0},
	}

	got := CalculateChunkIDs(chunks)

	want := []string{"a.pdf:0:0", "a.pdf:0:1", "a.pdf:1:0", "a.pdf:1:1", "b.pdf:0:0"}
	for i, w := range want {
		if got[i].ID != w {
			t.Errorf("chunk %d: got ID %q, want %q", i, got[i].ID, w)
		}
	}
}

func TestCalculateChunkIDs_Unique(t *testing.T) {
	var chunks []kbModels.DocChunk
	for page := 0; page < 4; page++ {
		for c := 0; c < 7; c++ {
			chunks = append(chunks, kbModels.DocChunk{Source: "data/doc.pdf", Page: page})
		}
	}

	seen := make(map[string]bool)
	for _, chunk := range CalculateChunkIDs(chunks) {
		if seen[chunk.ID] {
			t.Errorf("duplicate chunk ID %q", chunk.ID)
		}
		seen[chunk.ID] = true
	}
}

func TestCalculateChunkIDs_Empty(t *testing.T) {
	if got := CalculateChunkIDs(nil); len(got) != 0 {
		t.Errorf("expected no IDs for empty input, got %d", len(got))
	}
}

func TestLoad_EmptyDirectory(t *testing.T) {
	loader := NewPDFDirectoryLoader()

	documents, err := loader.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed on empty directory: %v", err)
	}
	if len(documents) != 0 {
		t.Errorf("expected no documents, got %d", len(documents))
	}
}

func TestLoad_IgnoresNonPDFFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewPDFDirectoryLoader()
	documents, err := loader.Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(documents) != 0 {
		t.Errorf("expected no documents from a non-PDF corpus, got %d", len(documents))
	}
}

func TestLoad_SkipsCorruptPDF(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewPDFDirectoryLoader()
	documents, err := loader.Load(dir)
	if err != nil {
		t.Fatalf("a corrupt file must not fail the run: %v", err)
	}
	if len(documents) != 0 {
		t.Errorf("expected no documents, got %d", len(documents))
	}
}
