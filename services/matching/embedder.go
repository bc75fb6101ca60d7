package matching

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Embedder turns free text into a vector comparable against listing
// embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type GeminiEmbedder struct {
	model *genai.EmbeddingModel
}

func NewGeminiEmbedder(apiKey string) *GeminiEmbedder {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.EmbeddingModel("models/text-embedding-004")
	return &GeminiEmbedder{model: model}
}

func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := g.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embed error: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("gemini embed error: empty embedding")
	}
	return resp.Embedding.Values, nil
}
