package session

import (
	"context"

	"github.com/kailas-cloud/matchdex/internal/domain"
)

// Repository defines the storage contract for match sessions.
type Repository interface {
	Insert(ctx context.Context, rec domain.MatchRecord) error
	ListByGUID(ctx context.Context, guid string) ([]domain.SessionRecord, error)
}
