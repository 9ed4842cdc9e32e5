package kb_test

import (
	"context"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
)

// MockStore implements vectorDB.Store
type MockStore struct {
	// Control fields to simulate different behaviors
	OnGetAllIDs   func(ctx context.Context) ([]string, error)
	OnUpsertBatch func(ctx context.Context, chunks []kbModels.DocChunk, vectors [][]float32) error
	OnDelete      func(ctx context.Context, ids []string) error
	OnDestroy     func(ctx context.Context) error

	DestroyCalls int
}

func (m *MockStore) GetAllIDs(ctx context.Context) ([]string, error) {
	if m.OnGetAllIDs != nil {
		return m.OnGetAllIDs(ctx)
	}
	return nil, nil
}

func (m *MockStore) UpsertBatch(ctx context.Context, chunks []kbModels.DocChunk, vectors [][]float32) error {
	if m.OnUpsertBatch != nil {
		return m.OnUpsertBatch(ctx, chunks, vectors)
	}
	return nil
}

func (m *MockStore) Delete(ctx context.Context, ids []string) error {
	if m.OnDelete != nil {
		return m.OnDelete(ctx, ids)
	}
	return nil
}

func (m *MockStore) Destroy(ctx context.Context) error {
	m.DestroyCalls++
	if m.OnDestroy != nil {
		return m.OnDestroy(ctx)
	}
	return nil
}

func (m *MockStore) Close() error { return nil }

// MockEmbedder implements embedding.Embedder
type MockEmbedder struct {
	OnBatchEmbedding func(ctx context.Context, chunks []string) ([][]float32, error)
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, chunks)
	}
	// Return dummy vectors matching chunk count
	return make([][]float32, len(chunks)), nil
}

// MockLoader implements ingest.Loader
type MockLoader struct {
	OnLoad func(dataPath string) ([]kbModels.Document, error)
}

func (m *MockLoader) Load(dataPath string) ([]kbModels.Document, error) {
	if m.OnLoad != nil {
		return m.OnLoad(dataPath)
	}
	return nil, nil
}
