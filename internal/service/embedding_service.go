package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/rs/zerolog/log"
	"github.com/skillforge-dev/skillforge/config"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"
)

// embeddingDimension matches text-embedding-004. Mock vectors use the same
// dimensionality so the rest of the pipeline behaves identically with or
// without a configured provider.
const embeddingDimension = 768

// Match is one ranked nearest-neighbour hit.
type Match struct {
	ID       string            `json:"id"`
	Score    float64           `json:"score"`
	Metadata map[string]string `json:"metadata"`
}

// StoreResult reports the outcome of persisting resume vectors. Failures are
// reported in-band, never as errors: the embedding store trades fidelity for
// availability.
type StoreResult struct {
	Success       bool   `json:"success"`
	Mock          bool   `json:"mock,omitempty"`
	VectorsStored int    `json:"vectors_stored,omitempty"`
	Error         string `json:"error,omitempty"`
}

// EmbeddingService wraps embedding generation plus the vector index used to
// ground interview prompts in previously stored resume material. Every method
// degrades to mock output when the providers are unconfigured or failing.
type EmbeddingService interface {
	Embed(ctx context.Context, text string) []float32
	StoreResume(ctx context.Context, userID string, fullText string, parsed ParsedResume) StoreResult
	Search(ctx context.Context, query string, topK int) []Match
}

type embeddingService struct {
	embedder *genai.EmbeddingModel
	index    *pinecone.IndexConnection
	cfg      *config.Config
}

// NewEmbeddingService connects the embedding model and the Pinecone index.
// Either client may be absent; the service then serves mock vectors and
// placeholder matches for that half of the pipeline.
func NewEmbeddingService(cfg *config.Config) (EmbeddingService, error) {
	svc := &embeddingService{cfg: cfg}
	ctx := context.Background()

	if cfg.Gemini.APIKey != "" {
		client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client for embeddings: %w", err)
		}
		svc.embedder = client.EmbeddingModel(cfg.Gemini.EmbeddingModel)
	} else {
		log.Warn().Msg("GEMINI_API_KEY is not set. Embeddings will be randomly generated.")
	}

	if cfg.Pinecone.APIKey != "" {
		pc, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: cfg.Pinecone.APIKey})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Pinecone client: %w", err)
		}
		idx, err := pc.DescribeIndex(ctx, cfg.Pinecone.Index)
		if err != nil {
			return nil, fmt.Errorf("failed to describe Pinecone index %q: %w", cfg.Pinecone.Index, err)
		}
		conn, err := pc.Index(pinecone.NewIndexConnParams{Host: idx.Host})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Pinecone index %q: %w", cfg.Pinecone.Index, err)
		}
		svc.index = conn
	} else {
		log.Warn().Msg("PINECONE_API_KEY is not set. EmbeddingService will run the vector index in mock mode.")
	}

	return svc, nil
}

func (s *embeddingService) Embed(ctx context.Context, text string) []float32 {
	if s.embedder == nil {
		return randomVector()
	}

	res, err := s.embedder.EmbedContent(ctx, genai.Text(text))
	if err != nil || res.Embedding == nil || len(res.Embedding.Values) == 0 {
		log.Error().Err(err).Msg("Embedding generation failed, returning random vector")
		return randomVector()
	}
	return res.Embedding.Values
}

func (s *embeddingService) StoreResume(ctx context.Context, userID string, fullText string, parsed ParsedResume) StoreResult {
	if s.index == nil {
		log.Info().Str("userID", userID).Msg("Mock mode: skipping resume embedding upsert")
		return StoreResult{Success: true, Mock: true}
	}

	experience := make([]string, 0, len(parsed.Experience))
	for _, e := range parsed.Experience {
		experience = append(experience, fmt.Sprintf("%s at %s (%s)", e.Role, e.Company, e.Duration))
	}

	sections := []struct {
		name string
		text string
	}{
		{"full", fullText},
		{"skills", strings.Join(parsed.Skills, ", ")},
		{"experience", strings.Join(experience, " ")},
	}

	vectors := make([]*pinecone.Vector, 0, len(sections))
	for _, section := range sections {
		values := s.Embed(ctx, section.text)
		metadata, err := structpb.NewStruct(map[string]interface{}{
			"type":   section.name,
			"userId": userID,
		})
		if err != nil {
			log.Error().Err(err).Str("section", section.name).Msg("Failed to build vector metadata")
			continue
		}
		vectors = append(vectors, &pinecone.Vector{
			Id:       fmt.Sprintf("%s_%s", userID, section.name),
			Values:   &values,
			Metadata: metadata,
		})
	}

	count, err := s.index.UpsertVectors(ctx, vectors)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to upsert resume vectors")
		return StoreResult{Success: false, Error: err.Error()}
	}
	return StoreResult{Success: true, VectorsStored: int(count)}
}

func (s *embeddingService) Search(ctx context.Context, query string, topK int) []Match {
	if topK <= 0 {
		topK = 5
	}
	if s.index == nil {
		return []Match{
			{ID: "mock_1", Score: 0.95, Metadata: map[string]string{"type": "full_resume"}},
			{ID: "mock_2", Score: 0.87, Metadata: map[string]string{"type": "skills"}},
		}
	}

	queryVector := s.Embed(ctx, query)
	res, err := s.index.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          queryVector,
		TopK:            uint32(topK),
		IncludeMetadata: true,
	})
	if err != nil {
		log.Error().Err(err).Msg("Vector search failed, returning no matches")
		return nil
	}

	matches := make([]Match, 0, len(res.Matches))
	for _, m := range res.Matches {
		if m == nil || m.Vector == nil {
			continue
		}
		matches = append(matches, Match{
			ID:       m.Vector.Id,
			Score:    float64(m.Score),
			Metadata: metadataToMap(m.Vector.Metadata),
		})
	}
	return matches
}

func metadataToMap(metadata *pinecone.Metadata) map[string]string {
	if metadata == nil {
		return nil
	}
	out := make(map[string]string, len(metadata.Fields))
	for key, value := range metadata.AsMap() {
		out[key] = fmt.Sprint(value)
	}
	return out
}

func randomVector() []float32 {
	values := make([]float32, embeddingDimension)
	for i := range values {
		values[i] = rand.Float32()
	}
	return values
}
