package embed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/knowledgepipe/knowledgepipe/internal/common"
)

// Embedder produces fixed-dimension vectors for text. Implementations must
// return vectors of the configured dimension or an error.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// NewEmbedder selects the provider named by configuration.
func NewEmbedder(cfg common.EmbeddingConfig, logger *slog.Logger) (Embedder, error) {
	switch cfg.Provider {
	case "ollama":
		logger.Info("using ollama embedder", "endpoint", cfg.OllamaEndpoint, "model", cfg.OllamaModel)
		return NewOllamaEmbedder(cfg.OllamaEndpoint, cfg.OllamaModel), nil
	case "openai":
		logger.Info("using openai embedder", "model", cfg.OpenAIModel)
		return NewOpenAIEmbedder(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}
