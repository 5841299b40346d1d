// Package session creates and reads guid-keyed match sessions.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/logger"
	"github.com/kailas-cloud/matchdex/internal/metrics"
)

// WriteResult reports the outcome of persisting one match record.
type WriteResult struct {
	ProjectID int64
	Err       error
}

// Service coordinates session persistence.
type Service struct {
	repo Repository
}

// New creates a session service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create generates a fresh guid and writes one record per candidate, pairing
// each with its comment. Writes are independent: a failure is reported in the
// returned slice and does not roll back or block sibling records.
// comments must be indexed by candidate rank; missing entries persist as empty.
func (s *Service) Create(
	ctx context.Context, q domain.Query, candidates []domain.ScoredCandidate, comments []string,
) (string, []WriteResult) {
	guid := uuid.NewString()
	log := logger.FromContext(ctx)

	report := make([]WriteResult, 0, len(candidates))
	for i, c := range candidates {
		comment := ""
		if i < len(comments) {
			comment = comments[i]
		}

		rec := domain.MatchRecord{
			SearchGUID:       guid,
			UserAbstract:     q.CombinedText(),
			MatchedProjectID: c.Project.ID,
			CosineSimilarity: c.MatchingScore(),
			MatchingComments: comment,
		}

		err := s.repo.Insert(ctx, rec)
		if err != nil {
			metrics.SessionWritesTotal.WithLabelValues("error").Inc()
			log.Error("Failed to persist match record",
				zap.String("search_guid", guid),
				zap.Int64("project_id", c.Project.ID),
				zap.Error(err),
			)
		} else {
			metrics.SessionWritesTotal.WithLabelValues("ok").Inc()
		}

		report = append(report, WriteResult{ProjectID: c.Project.ID, Err: err})
	}

	return guid, report
}

// Get returns all joined records for a session, in insertion order.
// An unknown guid is an empty result, not an error.
func (s *Service) Get(ctx context.Context, guid string) ([]domain.SessionRecord, error) {
	records, err := s.repo.ListByGUID(ctx, guid)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", guid, err)
	}
	return records, nil
}
