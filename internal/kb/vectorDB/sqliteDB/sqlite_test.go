package sqliteDB

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "kbstore"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testChunks() ([]kbModels.DocChunk, [][]float32) {
	chunks := []kbModels.DocChunk{
		{ID: "data/doc1.pdf:0:0", Content: "first", Source: "data/doc1.pdf", Page: 0},
		{ID: "data/doc1.pdf:0:1", Content: "second", Source: "data/doc1.pdf", Page: 0},
		{ID: "data/doc2.pdf:0:0", Content: "third", Source: "data/doc2.pdf", Page: 0},
	}
	vectors := [][]float32{{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}}
	return chunks, vectors
}

func TestGetAllIDs_EmptyStore(t *testing.T) {
	s := newTestStore(t)

	ids, err := s.GetAllIDs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestUpsertBatch_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	chunks, vectors := testChunks()

	require.NoError(t, s.UpsertBatch(ctx, chunks, vectors))

	ids, err := s.GetAllIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"data/doc1.pdf:0:0",
		"data/doc1.pdf:0:1",
		"data/doc2.pdf:0:0",
	}, ids)
}

func TestUpsertBatch_SameIDOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	chunks, vectors := testChunks()

	require.NoError(t, s.UpsertBatch(ctx, chunks, vectors))
	require.NoError(t, s.UpsertBatch(ctx, chunks, vectors))

	ids, err := s.GetAllIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, len(chunks))
}

func TestUpsertBatch_VectorCountMismatch(t *testing.T) {
	s := newTestStore(t)
	chunks, _ := testChunks()

	err := s.UpsertBatch(context.Background(), chunks, [][]float32{{0.1}})
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	chunks, vectors := testChunks()
	require.NoError(t, s.UpsertBatch(ctx, chunks, vectors))

	require.NoError(t, s.Delete(ctx, []string{"data/doc1.pdf:0:0", "data/doc1.pdf:0:1"}))

	ids, err := s.GetAllIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"data/doc2.pdf:0:0"}, ids)
}

func TestDelete_MoreIDsThanOneBatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n := deleteBatchSize + 123
	chunks := make([]kbModels.DocChunk, n)
	vectors := make([][]float32, n)
	ids := make([]string, n)
	for i := range chunks {
		id := fmt.Sprintf("data/big.pdf:%d:0", i)
		chunks[i] = kbModels.DocChunk{ID: id, Content: "c", Source: "data/big.pdf", Page: i}
		vectors[i] = []float32{float32(i)}
		ids[i] = id
	}
	require.NoError(t, s.UpsertBatch(ctx, chunks, vectors))

	require.NoError(t, s.Delete(ctx, ids))

	remaining, err := s.GetAllIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDelete_NoIDs(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Delete(context.Background(), nil))
}

func TestDestroy_LeavesEmptyReusableStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	chunks, vectors := testChunks()
	require.NoError(t, s.UpsertBatch(ctx, chunks, vectors))

	require.NoError(t, s.Destroy(ctx))

	ids, err := s.GetAllIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// Still writable after the wipe.
	require.NoError(t, s.UpsertBatch(ctx, chunks[:1], vectors[:1]))
	ids, err = s.GetAllIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestVectorBlobRoundTrip(t *testing.T) {
	in := []float32{0.25, -1.5, 3.75}
	out := bytesToFloat32Slice(float32SliceToBytes(in))
	assert.Equal(t, in, out)

	assert.Nil(t, float32SliceToBytes(nil))
	assert.Nil(t, bytesToFloat32Slice(nil))
}
