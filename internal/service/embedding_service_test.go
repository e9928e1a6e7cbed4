package service

import (
	"context"
	"testing"

	"github.com/skillforge-dev/skillforge/config"
)

func newMockEmbedding(t *testing.T) EmbeddingService {
	t.Helper()
	svc, err := NewEmbeddingService(&config.Config{})
	if err != nil {
		t.Fatalf("NewEmbeddingService returned error: %v", err)
	}
	return svc
}

func TestEmbedMockModeDimension(t *testing.T) {
	svc := newMockEmbedding(t)

	vector := svc.Embed(context.Background(), "any text")
	if len(vector) != embeddingDimension {
		t.Fatalf("expected %d-dimensional vector, got %d", embeddingDimension, len(vector))
	}
}

func TestSearchMockModePlaceholders(t *testing.T) {
	svc := newMockEmbedding(t)

	matches := svc.Search(context.Background(), "query", 5)
	if len(matches) != 2 {
		t.Fatalf("expected 2 placeholder matches, got %d", len(matches))
	}
	if matches[0].ID != "mock_1" || matches[0].Metadata["type"] != "full_resume" {
		t.Fatalf("unexpected first match: %+v", matches[0])
	}
	if matches[0].Score < matches[1].Score {
		t.Fatal("expected placeholder matches ranked by score")
	}
}

func TestStoreResumeMockModeIsNoOp(t *testing.T) {
	svc := newMockEmbedding(t)

	result := svc.StoreResume(context.Background(), "42", "full text", ParsedResume{Skills: []string{"Go"}})
	if !result.Success {
		t.Fatal("expected mock store to report success")
	}
	if !result.Mock {
		t.Fatal("expected mock store to be flagged as mock")
	}
	if result.VectorsStored != 0 {
		t.Fatalf("expected no vectors stored in mock mode, got %d", result.VectorsStored)
	}
}
