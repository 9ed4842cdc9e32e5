package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo

	//chunking parameters - changing these changes chunk boundaries and
	//therefore chunk IDs, so existing stores keep their old entries
	ChunkSize    = 800
	ChunkOverlap = 80

	//fixed locations, overridable through the environment
	DefaultDataPath   = "data"
	DefaultStorePath  = "kbstore"
	DefaultCollection = "knowledge-base"

	//store backends
	BackendSQLite = "sqlite"
	BackendQdrant = "qdrant"

	//embedding providers
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"

	//TODO:this will differ based on the request and provider
	EmbeddingOutputDimensionality int32 = 1536
	EmbeddingBatchSize                  = 100

	//embedding API rate limiting
	EmbeddingRequestsPerSecond = 5
	EmbeddingBurst             = 5

	GoogleEmbeddingModel = "gemini-embedding-001"
	OpenAIEmbeddingModel = "text-embedding-3-small"

	//vectorDB
	QdrantHost     = "localhost"
	QdrantGrpcPort = 6334
	QdrantUseTLS   = false //set for https
	QdrantPoolSize = 1     //2-5 is preferred for prod according to documentation

	//qdrant scroll page size when fetching the full ID set
	ScrollPageSize = 1024

	//per-page PDF extraction guard
	PageExtractTimeout = 10 * time.Second
)

// Config carries the per-invocation settings for both operations. Paths are
// explicit here rather than process-wide constants so tests can point each
// run at its own corpus and store.
type Config struct {
	DataPath          string
	StorePath         string
	Collection        string
	StoreBackend      string
	EmbeddingProvider string
	GoogleAPIKey      string
	OpenAIAPIKey      string
	QdrantHost        string
	QdrantPort        int
}

// Load builds a Config from the environment, falling back to the defaults
// above for anything unset.
func Load() Config {
	return Config{
		DataPath:          getenv("KB_DATA_PATH", DefaultDataPath),
		StorePath:         getenv("KB_STORE_PATH", DefaultStorePath),
		Collection:        getenv("KB_COLLECTION", DefaultCollection),
		StoreBackend:      getenv("KB_STORE_BACKEND", BackendSQLite),
		EmbeddingProvider: getenv("KB_EMBEDDING_PROVIDER", ProviderGoogle),
		GoogleAPIKey:      os.Getenv("GOOGLE_API_KEY"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		QdrantHost:        getenv("QDRANT_HOST", QdrantHost),
		QdrantPort:        getenvInt("QDRANT_PORT", QdrantGrpcPort),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
