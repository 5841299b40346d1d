package match

import (
	"context"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/usecase/enrich"
	"github.com/kailas-cloud/matchdex/internal/usecase/session"
)

// Ranker selects and orders candidates for a query.
type Ranker interface {
	Rank(ctx context.Context, q domain.Query) ([]domain.ScoredCandidate, error)
}

// Enricher generates per-candidate comparisons, best-effort.
type Enricher interface {
	EnrichAll(ctx context.Context, q domain.Query, candidates []domain.ScoredCandidate) []enrich.Result
}

// SessionStore persists and replays match sessions.
type SessionStore interface {
	Create(ctx context.Context, q domain.Query, candidates []domain.ScoredCandidate, comments []string) (string, []session.WriteResult)
	Get(ctx context.Context, guid string) ([]domain.SessionRecord, error)
}
