package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	ObjectStore ObjectStoreConfig
	VectorStore VectorStoreConfig
	Embedding   EmbeddingConfig
	Chat        ChatConfig
	Chunking    ChunkingConfig
	Pipeline    PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ObjectStoreConfig holds ingest bucket configuration
type ObjectStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// VectorStoreConfig holds the similarity index configuration
type VectorStoreConfig struct {
	Addr       string
	Collection string
	Dim        int
}

// EmbeddingConfig selects and configures the embedding provider.
// Provider is "ollama" or "openai".
type EmbeddingConfig struct {
	Provider       string
	OllamaEndpoint string
	OllamaModel    string
	OpenAIBaseURL  string
	OpenAIAPIKey   string
	OpenAIModel    string
}

// ChatConfig holds the answer-generation model configuration
type ChatConfig struct {
	BaseURL          string
	APIKey           string
	Model            string
	Temperature      float32
	Timeout          time.Duration
	MaxContextTokens int
}

// ChunkingConfig holds the deterministic splitting policy
type ChunkingConfig struct {
	Size    int
	Overlap int
}

// PipelineConfig holds scheduling knobs for the watcher and workers
type PipelineConfig struct {
	PollInterval   time.Duration
	ClaimInterval  time.Duration
	StaleAfter     time.Duration
	Workers        int
	ProcessTimeout time.Duration
	Pdftotext      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		ObjectStore: ObjectStoreConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "documents"),
			Prefix:    getEnv("MINIO_PREFIX", ""),
			UseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
		},
		VectorStore: VectorStoreConfig{
			Addr:       getEnv("QDRANT_ADDR", "localhost:6334"),
			Collection: getEnv("QDRANT_COLLECTION", "doc_chunks"),
			Dim:        getEnvAsInt("EMBED_DIM", 768),
		},
		Embedding: EmbeddingConfig{
			Provider:       getEnv("EMBEDDER", "ollama"),
			OllamaEndpoint: getEnv("OLLAMA_ENDPOINT", "http://localhost:11434"),
			OllamaModel:    getEnv("OLLAMA_MODEL", "nomic-embed-text"),
			OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:    getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
		},
		Chat: ChatConfig{
			BaseURL:          getEnv("CHAT_BASE_URL", "https://api.openai.com/v1"),
			APIKey:           getEnv("CHAT_API_KEY", ""),
			Model:            getEnv("CHAT_MODEL", "gpt-4o-mini"),
			Temperature:      getEnvAsFloat32("CHAT_TEMPERATURE", 0.3),
			Timeout:          getEnvAsDuration("CHAT_TIMEOUT", 45*time.Second),
			MaxContextTokens: getEnvAsInt("CHAT_MAX_CONTEXT_TOKENS", 3000),
		},
		Chunking: ChunkingConfig{
			Size:    getEnvAsInt("CHUNK_SIZE", 1200),
			Overlap: getEnvAsInt("CHUNK_OVERLAP", 150),
		},
		Pipeline: PipelineConfig{
			PollInterval:   getEnvAsDuration("POLL_INTERVAL", time.Minute),
			ClaimInterval:  getEnvAsDuration("CLAIM_INTERVAL", 30*time.Second),
			StaleAfter:     getEnvAsDuration("JOB_STALE_AFTER", 10*time.Minute),
			Workers:        getEnvAsInt("WORKERS", 4),
			ProcessTimeout: getEnvAsDuration("PROCESS_TIMEOUT", 3*time.Minute),
			Pdftotext:      getEnv("PDFTOTEXT_BIN", "pdftotext"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.ObjectStore.AccessKey == "" || c.ObjectStore.SecretKey == "" {
		return NewAppError("CONFIG_ERROR", "MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required", ErrInvalidInput)
	}
	if c.Embedding.Provider == "openai" && c.Embedding.OpenAIAPIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required for the openai embedder", ErrInvalidInput)
	}
	if c.VectorStore.Dim <= 0 {
		return NewAppError("CONFIG_ERROR", "EMBED_DIM must be positive", ErrInvalidInput)
	}
	if c.Chunking.Overlap >= c.Chunking.Size {
		return NewAppError("CONFIG_ERROR", "CHUNK_OVERLAP must be smaller than CHUNK_SIZE", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
