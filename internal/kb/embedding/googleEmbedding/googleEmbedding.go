package googleEmbedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/config"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/embedding"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/pkg/logger_i"
)

var dimension int32 = config.EmbeddingOutputDimensionality

type client struct {
	genAi   *genai.Client
	model   string
	limiter *rate.Limiter
	logger  *logger_i.Logger
}

func New(ctx context.Context, modelName string, apikey string) (embedding.Embedder, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		return nil, fmt.Errorf("creating google embedding client: %w", err)
	}

	return &client{
		genAi:   c,
		model:   modelName,
		limiter: rate.NewLimiter(rate.Limit(config.EmbeddingRequestsPerSecond), config.EmbeddingBurst),
		logger:  logger_i.NewLogger("google_embedding"),
	}, nil
}

func (c *client) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	res, err := c.doCall(ctx, getContent(chunks))
	if err != nil || res == nil {
		if doRetry(err, c.logger) {
			time.Sleep(5 * time.Second)
			c.logger.Debug("Retrying embedding call")

			res, err = c.doCall(ctx, getContent(chunks))
		}
		if err != nil {
			c.logger.Error("Error getting Embeddings from Google", "error", err)
			return nil, err
		}
	}
	if res == nil {
		return nil, errors.New("empty embedding response")
	}

	var embeddingResults [][]float32
	for _, r := range res.Embeddings {
		embeddingResults = append(embeddingResults, r.Values)
	}
	return embeddingResults, nil
}

func (c *client) doCall(ctx context.Context, content []*genai.Content) (*genai.EmbedContentResponse, error) {
	return c.genAi.Models.EmbedContent(ctx, c.model, content, &genai.EmbedContentConfig{
		OutputDimensionality: &dimension,
		TaskType:             "RETRIEVAL_DOCUMENT",
	})
}
