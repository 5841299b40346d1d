// Package corpus persists the project corpus in Postgres.
package corpus

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgvector/pgvector-go"

	"github.com/kailas-cloud/matchdex/internal/domain"
)

// Repo implements corpus reads for ranking and writes for ingestion/backfill.
type Repo struct {
	db *sql.DB
}

// New creates a corpus repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// ListEmbedded returns every project that has an embedding, in stable id order.
// This is the full corpus scan the ranker iterates per query.
func (r *Repo) ListEmbedded(ctx context.Context) ([]domain.Project, error) {
	const query = `
		SELECT id, title, abstract, embedding
		FROM projects
		WHERE embedding IS NOT NULL
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list embedded projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		var vec pgvector.Vector
		if err := rows.Scan(&p.ID, &p.Title, &p.Abstract, &vec); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Embedding = vec.Slice()
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListMissingEmbedding returns projects awaiting embedding backfill.
func (r *Repo) ListMissingEmbedding(ctx context.Context) ([]domain.Project, error) {
	const query = `
		SELECT id, title, abstract
		FROM projects
		WHERE embedding IS NULL
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects without embedding: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Abstract); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ReplaceAll truncates the corpus and loads the given projects in one transaction.
// Loads are all-or-nothing: any failure rolls the whole batch back.
func (r *Repo) ReplaceAll(ctx context.Context, projects []domain.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin corpus load: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `TRUNCATE projects, match_sessions`); err != nil {
		return fmt.Errorf("truncate corpus: %w", err)
	}

	const insert = `INSERT INTO projects (id, title, abstract) VALUES ($1, $2, $3)`
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare corpus insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range projects {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Title, p.Abstract); err != nil {
			return fmt.Errorf("insert project %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit corpus load: %w", err)
	}
	return nil
}

// SetEmbedding stores a freshly computed embedding for one project.
func (r *Repo) SetEmbedding(ctx context.Context, projectID int64, embedding []float32) error {
	const query = `UPDATE projects SET embedding = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, pgvector.NewVector(embedding), projectID)
	if err != nil {
		return fmt.Errorf("update embedding for project %d: %w", projectID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
	}
	return nil
}
