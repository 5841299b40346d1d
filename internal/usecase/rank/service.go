// Package rank scores the corpus against a query and selects the top candidates.
package rank

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/logger"
)

const (
	defaultMinSimilarity = 0.3
	defaultMaxResults    = 3
)

// Service ranks corpus projects by cosine similarity to a query.
type Service struct {
	corpus        CorpusReader
	embed         Embedder
	minSimilarity float64
	maxResults    int
}

// New creates a ranking service with the default floor (0.3) and cap (3).
func New(corpus CorpusReader, embed Embedder) *Service {
	return &Service{
		corpus:        corpus,
		embed:         embed,
		minSimilarity: defaultMinSimilarity,
		maxResults:    defaultMaxResults,
	}
}

// WithLimits overrides the similarity floor and result cap.
func (s *Service) WithLimits(minSimilarity float64, maxResults int) *Service {
	if minSimilarity > 0 {
		s.minSimilarity = minSimilarity
	}
	if maxResults > 0 {
		s.maxResults = maxResults
	}
	return s
}

// Rank embeds the query once, scores every corpus project against it, and
// returns the ordered, capped candidate list. The query text is embedded raw;
// corpus embeddings were computed from normalized text.
func (s *Service) Rank(ctx context.Context, q domain.Query) ([]domain.ScoredCandidate, error) {
	embResult, err := s.embed.Embed(ctx, q.CombinedText())
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	projects, err := s.corpus.ListEmbedded(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	log := logger.FromContext(ctx)

	candidates := make([]domain.ScoredCandidate, 0, len(projects))
	for _, p := range projects {
		sim, err := domain.Cosine(embResult.Embedding, p.Embedding)
		if err != nil {
			// A degenerate corpus vector disqualifies that project, not the query.
			log.Warn("Skipping project with unusable embedding",
				zap.Int64("project_id", p.ID),
				zap.Error(err),
			)
			continue
		}

		c := domain.ScoredCandidate{
			Project:    p,
			Similarity: sim,
			Category:   domain.Categorize(sim),
		}
		// Exact repeats outrank any numeric category.
		if q.IsIdenticalTo(p) {
			c.Category = domain.CategoryIdentical
			c.Warning = domain.WarningIdentical
		}

		// Hard floor, applied before the Identical-first ordering.
		if sim < s.minSimilarity {
			continue
		}

		candidates = append(candidates, c)
	}

	// Identical entries first, then similarity descending.
	// Stable sort keeps corpus scan order for equal keys.
	sort.SliceStable(candidates, func(i, j int) bool {
		iIdent := candidates[i].Category == domain.CategoryIdentical
		jIdent := candidates[j].Category == domain.CategoryIdentical
		if iIdent != jIdent {
			return iIdent
		}
		return candidates[i].Similarity > candidates[j].Similarity
	})

	if len(candidates) > s.maxResults {
		candidates = candidates[:s.maxResults]
	}

	return candidates, nil
}
