// Package session persists and reads guid-keyed match records.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kailas-cloud/matchdex/internal/domain"
)

// Repo implements usecase/session.Repository.
type Repo struct {
	db *sql.DB
}

// New creates a session repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Insert writes one match record. Each record is its own durable write;
// sibling records of the same session are never rolled back by a failure here.
func (r *Repo) Insert(ctx context.Context, rec domain.MatchRecord) error {
	const query = `
		INSERT INTO match_sessions
			(search_guid, user_abstract, matched_project_id, cosine_similarity, matching_comments)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.SearchGUID,
		rec.UserAbstract,
		rec.MatchedProjectID,
		rec.CosineSimilarity,
		rec.MatchingComments,
	)
	if err != nil {
		return fmt.Errorf("insert match record for project %d: %w", rec.MatchedProjectID, err)
	}
	return nil
}

// ListByGUID returns all records for a session joined with project metadata,
// in insertion order. An unknown guid yields an empty slice, not an error.
func (r *Repo) ListByGUID(ctx context.Context, guid string) ([]domain.SessionRecord, error) {
	const query = `
		SELECT
			p.id,
			p.title,
			p.abstract,
			s.search_guid,
			s.cosine_similarity,
			s.matching_comments
		FROM match_sessions s
		INNER JOIN projects p ON s.matched_project_id = p.id
		WHERE s.search_guid = $1
		ORDER BY s.id
	`
	rows, err := r.db.QueryContext(ctx, query, guid)
	if err != nil {
		return nil, fmt.Errorf("list session %s: %w", guid, err)
	}
	defer rows.Close()

	records := []domain.SessionRecord{}
	for rows.Next() {
		var rec domain.SessionRecord
		if err := rows.Scan(
			&rec.ProjectID,
			&rec.Title,
			&rec.Abstract,
			&rec.SearchGUID,
			&rec.MatchingScore,
			&rec.MatchingComments,
		); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
