package ingest

import (
	"context"

	"github.com/kailas-cloud/matchdex/internal/domain"
)

// CorpusWriter defines the storage contract for corpus loads and backfill.
type CorpusWriter interface {
	ReplaceAll(ctx context.Context, projects []domain.Project) error
	ListMissingEmbedding(ctx context.Context) ([]domain.Project, error)
	SetEmbedding(ctx context.Context, projectID int64, embedding []float32) error
}

// Embedder vectorizes corpus text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
