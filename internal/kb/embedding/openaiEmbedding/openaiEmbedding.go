package openaiEmbedding

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/config"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/embedding"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/pkg/logger_i"
)

type client struct {
	oai     openai.Client
	model   openai.EmbeddingModel
	limiter *rate.Limiter
	logger  *logger_i.Logger
}

func New(modelName string, apikey string) embedding.Embedder {
	return &client{
		oai:     openai.NewClient(option.WithAPIKey(apikey)),
		model:   openai.EmbeddingModel(modelName),
		limiter: rate.NewLimiter(rate.Limit(config.EmbeddingRequestsPerSecond), config.EmbeddingBurst),
		logger:  logger_i.NewLogger("openai_embedding"),
	}
}

func (c *client) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.oai.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input:      openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: chunks},
		Model:      c.model,
		Dimensions: openai.Int(int64(config.EmbeddingOutputDimensionality)),
	})
	if err != nil {
		c.logger.Error("Error getting Embeddings from OpenAI", "error", err)
		return nil, err
	}
	if len(resp.Data) != len(chunks) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(chunks), len(resp.Data))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vec := make([]float32, len(d.Embedding))
		for j, v := range d.Embedding {
			vec[j] = float32(v)
		}
		vectors[i] = vec
	}
	return vectors, nil
}
