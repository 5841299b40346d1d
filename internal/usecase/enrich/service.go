// Package enrich generates the natural-language comparison for each selected
// candidate. Enrichment is best-effort per candidate: a failed generation
// yields an empty comment, never a failed batch.
package enrich

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/logger"
)

const defaultMaxConcurrent = 2

// Result is the outcome of enriching one candidate.
type Result struct {
	Comment string
	Err     error
}

// Service runs comparison generation for ranked candidates.
type Service struct {
	gen           Generator
	maxConcurrent int
}

// New creates an enrichment service.
func New(gen Generator) *Service {
	return &Service{gen: gen, maxConcurrent: defaultMaxConcurrent}
}

// WithMaxConcurrent overrides the worker limit for parallel generation.
func (s *Service) WithMaxConcurrent(n int) *Service {
	if n > 0 {
		s.maxConcurrent = n
	}
	return s
}

// EnrichAll generates one comparison per candidate. Calls run concurrently up
// to the worker limit; results land at the candidate's rank index, so output
// order is rank order regardless of completion order. Failures are recorded
// in the per-candidate Result and never abort the batch.
func (s *Service) EnrichAll(
	ctx context.Context, q domain.Query, candidates []domain.ScoredCandidate,
) []Result {
	results := make([]Result, len(candidates))
	queryText := q.CombinedText()
	log := logger.FromContext(ctx)

	var g errgroup.Group
	g.SetLimit(s.maxConcurrent)

	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			prompt := buildPrompt(c.Project.Abstract, queryText, c.Similarity)

			comment, err := s.gen.Generate(ctx, prompt)
			if err != nil {
				log.Warn("Comparison generation failed",
					zap.Int64("project_id", c.Project.ID),
					zap.Float64("similarity", c.Similarity),
					zap.Error(err),
				)
				results[i] = Result{Err: err}
				return nil
			}

			results[i] = Result{Comment: comment}
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	return results
}
