package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/cli"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/config"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/embedding"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/embedding/googleEmbedding"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/embedding/openaiEmbedding"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/ingest"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/vectorDB"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/vectorDB/qdrantDB"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/kb/vectorDB/sqliteDB"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/pkg/logger_i"
)

func main() {
	_ = godotenv.Load()
	logger_i.Init()
	logger := logger_i.NewLogger("main")

	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := buildStore(cfg)
	if err != nil {
		logger.Error("Failed to open vector store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	embedder, err := buildEmbedder(ctx, cfg)
	if err != nil {
		logger.Error("Failed to create embedder", "provider", cfg.EmbeddingProvider, "error", err)
		os.Exit(1)
	}

	svc := kb.NewService(store, embedder, ingest.NewPDFDirectoryLoader(), cfg)

	if err := cli.Execute(ctx, svc); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildStore(cfg config.Config) (vectorDB.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendQdrant:
		return qdrantDB.New(cfg)
	case config.BackendSQLite:
		return sqliteDB.New(cfg.StorePath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func buildEmbedder(ctx context.Context, cfg config.Config) (embedding.Embedder, error) {
	switch cfg.EmbeddingProvider {
	case config.ProviderOpenAI:
		return openaiEmbedding.New(config.OpenAIEmbeddingModel, cfg.OpenAIAPIKey), nil
	case config.ProviderGoogle:
		return googleEmbedding.New(ctx, config.GoogleEmbeddingModel, cfg.GoogleAPIKey)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.EmbeddingProvider)
	}
}
