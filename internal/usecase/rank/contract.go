package rank

import (
	"context"

	"github.com/kailas-cloud/matchdex/internal/domain"
)

// CorpusReader supplies the embedded project corpus for scanning.
type CorpusReader interface {
	ListEmbedded(ctx context.Context) ([]domain.Project, error)
}

// Embedder vectorizes query text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
