// Package ingest loads the project corpus from CSV and backfills embeddings.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/matchdex/internal/domain"
	"github.com/kailas-cloud/matchdex/internal/logger"
)

// BackfillReport summarizes an embedding backfill run.
type BackfillReport struct {
	Processed int
	Failed    int
}

// Service handles corpus ingestion.
type Service struct {
	corpus CorpusWriter
	embed  Embedder
}

// New creates an ingestion service.
func New(corpus CorpusWriter, embed Embedder) *Service {
	return &Service{corpus: corpus, embed: embed}
}

// LoadCSV replaces the corpus with rows from r. Expected columns:
// id, title, abstract (header row required). The load is transactional;
// a bad row aborts the whole batch.
func (s *Service) LoadCSV(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: read csv header: %v", domain.ErrValidation, err)
	}
	if err := validateHeader(header); err != nil {
		return 0, err
	}

	var projects []domain.Project
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w: read csv line %d: %v", domain.ErrValidation, line, err)
		}

		id, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: line %d: invalid project id %q", domain.ErrValidation, line, row[0])
		}

		projects = append(projects, domain.Project{
			ID:       id,
			Title:    row[1],
			Abstract: row[2],
		})
	}

	if len(projects) == 0 {
		return 0, fmt.Errorf("%w: csv contains no projects", domain.ErrValidation)
	}

	if err := s.corpus.ReplaceAll(ctx, projects); err != nil {
		return 0, fmt.Errorf("load corpus: %w", err)
	}

	return len(projects), nil
}

// BackfillEmbeddings embeds every project that lacks an embedding, using the
// normalized corpus text. Each project is independent: a failure is counted
// and logged, and the run continues.
func (s *Service) BackfillEmbeddings(ctx context.Context) (BackfillReport, error) {
	projects, err := s.corpus.ListMissingEmbedding(ctx)
	if err != nil {
		return BackfillReport{}, fmt.Errorf("list projects for backfill: %w", err)
	}

	log := logger.FromContext(ctx)

	var report BackfillReport
	for _, p := range projects {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result, err := s.embed.Embed(ctx, p.EmbeddingText())
		if err != nil {
			report.Failed++
			log.Warn("Failed to embed project",
				zap.Int64("project_id", p.ID),
				zap.Error(err),
			)
			continue
		}

		if err := s.corpus.SetEmbedding(ctx, p.ID, result.Embedding); err != nil {
			report.Failed++
			log.Warn("Failed to store project embedding",
				zap.Int64("project_id", p.ID),
				zap.Error(err),
			)
			continue
		}

		report.Processed++
	}

	return report, nil
}

func validateHeader(header []string) error {
	want := []string{"id", "title", "abstract"}
	if len(header) != len(want) {
		return fmt.Errorf("%w: csv header must be id,title,abstract", domain.ErrValidation)
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), want[i]) {
			return fmt.Errorf("%w: csv header must be id,title,abstract, got %q", domain.ErrValidation, strings.Join(header, ","))
		}
	}
	return nil
}
