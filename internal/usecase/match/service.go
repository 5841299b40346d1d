// Package match orchestrates the query pipeline: embed and rank, enrich,
// persist, then replay the persisted session as the response.
package match

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/logger"
)

// Service runs the matching pipeline.
type Service struct {
	ranker   Ranker
	enricher Enricher
	sessions SessionStore
}

// New creates a pipeline service.
func New(ranker Ranker, enricher Enricher, sessions SessionStore) *Service {
	return &Service{ranker: ranker, enricher: enricher, sessions: sessions}
}

// Match executes one query end to end and returns the records persisted for
// it. The response is re-read from the session store under the freshly
// generated guid, so the caller sees exactly what was stored.
//
// Ranking failure (embedding included) is fatal and leaves no session behind.
// Per-candidate enrichment or persistence failures degrade that candidate
// only: an empty comment, or a missing record reported in the logs.
func (s *Service) Match(ctx context.Context, q domain.Query) ([]domain.SessionRecord, error) {
	log := logger.FromContext(ctx)

	candidates, err := s.ranker.Rank(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("rank candidates: %w", err)
	}

	results := s.enricher.EnrichAll(ctx, q, candidates)

	comments := make([]string, len(results))
	failed := 0
	for i, r := range results {
		comments[i] = r.Comment
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		log.Warn("Some comparisons could not be generated",
			zap.Int("failed", failed),
			zap.Int("total", len(results)),
		)
	}

	guid, report := s.sessions.Create(ctx, q, candidates, comments)
	for _, w := range report {
		if w.Err != nil {
			log.Error("Match record not persisted",
				zap.String("search_guid", guid),
				zap.Int64("project_id", w.ProjectID),
				zap.Error(w.Err),
			)
		}
	}

	records, err := s.sessions.Get(ctx, guid)
	if err != nil {
		return nil, fmt.Errorf("read back session %s: %w", guid, err)
	}

	log.Info("Match pipeline completed",
		zap.String("search_guid", guid),
		zap.Int("candidates", len(candidates)),
		zap.Int("persisted", len(records)),
	)

	return records, nil
}

// Session replays a previously stored session.
func (s *Service) Session(ctx context.Context, guid string) ([]domain.SessionRecord, error) {
	return s.sessions.Get(ctx, guid)
}
