package qdrantDB

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/config"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/pkg/logger_i"
)

const payloadChunkID = "chunk_id"

var dimension = uint64(config.EmbeddingOutputDimensionality)

// ClientHolder is a Qdrant-backed vectorDB.Store. The collection is the unit
// of persistence: Destroy drops it and the next upsert recreates it.
type ClientHolder struct {
	QObj       *qdrant.Client
	collection string
	logger     *logger_i.Logger
}

func New(cfg config.Config) (*ClientHolder, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     cfg.QdrantHost,
		Port:     cfg.QdrantPort,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		return nil, fmt.Errorf("could not instantiate qdrant client: %w", err)
	}

	return &ClientHolder{
		QObj:       client,
		collection: cfg.Collection,
		logger:     logger_i.NewLogger("Qdrant"),
	}, nil
}

// pointID derives a stable Qdrant point UUID from a chunk ID. Qdrant only
// accepts UUIDs or integers as point IDs, so the chunk ID itself is kept in
// the payload and mapped through a name-based UUID here. Same chunk ID, same
// point, which is what makes upserts by chunk ID idempotent.
func pointID(chunkID string) *qdrant.PointId {
	return qdrant.NewID(uuid.NewSHA1(uuid.NameSpaceURL, []byte(chunkID)).String())
}

func (db *ClientHolder) GetAllIDs(ctx context.Context) ([]string, error) {
	exists, err := db.QObj.CollectionExists(ctx, db.collection)
	if err != nil {
		return nil, fmt.Errorf("qdrant collection check failed: %w", err)
	}
	if !exists {
		//no collection yet means an empty store, not an error
		return nil, nil
	}

	points := db.QObj.GetPointsClient()

	var ids []string
	var offset *qdrant.PointId
	for {
		resp, err := points.Scroll(ctx, &qdrant.ScrollPoints{
			CollectionName: db.collection,
			Limit:          qdrant.PtrOf(uint32(config.ScrollPageSize)),
			Offset:         offset,
			WithPayload:    qdrant.NewWithPayloadInclude(payloadChunkID),
		})
		if err != nil {
			return nil, fmt.Errorf("qdrant scroll failed: %w", err)
		}

		for _, p := range resp.GetResult() {
			ids = append(ids, p.GetPayload()[payloadChunkID].GetStringValue())
		}

		offset = resp.GetNextPageOffset()
		if offset == nil {
			break
		}
	}

	return ids, nil
}

func (db *ClientHolder) UpsertBatch(ctx context.Context, chunks []kbModels.DocChunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("mismatch: got %d chunks but %d vectors", len(chunks), len(vectors))
	}
	if err := db.ensureCollection(ctx); err != nil {
		return err
	}

	qdrantPoints := make([]*qdrant.PointStruct, len(chunks))
	for i, chunk := range chunks {
		qdrantPoints[i] = &qdrant.PointStruct{
			Id:      pointID(chunk.ID),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				payloadChunkID: chunk.ID,
				"content":      chunk.Content,
				"source":       chunk.Source,
				"page":         chunk.Page,
			}),
		}
	}

	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: db.collection,
		Points:         qdrantPoints,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %w", err)
	}

	return nil
}

func (db *ClientHolder) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	pointIDs := make([]*qdrant.PointId, len(ids))
	for i, id := range ids {
		pointIDs[i] = pointID(id)
	}

	_, err := db.QObj.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: db.collection,
		Points:         qdrant.NewPointsSelector(pointIDs...),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("qdrant delete failed: %w", err)
	}

	return nil
}

func (db *ClientHolder) Destroy(ctx context.Context) error {
	exists, err := db.QObj.CollectionExists(ctx, db.collection)
	if err != nil {
		return fmt.Errorf("qdrant collection check failed: %w", err)
	}
	if !exists {
		return nil
	}

	db.logger.Info("Dropping collection", "collection", db.collection)
	if err := db.QObj.DeleteCollection(ctx, db.collection); err != nil {
		return fmt.Errorf("qdrant drop collection failed: %w", err)
	}
	return nil
}

func (db *ClientHolder) Close() error {
	return db.QObj.Close()
}

func (db *ClientHolder) ensureCollection(ctx context.Context) error {
	if db.collection == "" {
		return errors.New("empty collection name")
	}

	exists, err := db.QObj.CollectionExists(ctx, db.collection)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return db.QObj.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: db.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
}
