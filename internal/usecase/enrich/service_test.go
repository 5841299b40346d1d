package enrich

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/kailas-cloud/matchdex/internal/domain"
)

// --- Mocks ---

type mockGenerator struct {
	mu      sync.Mutex
	prompts []string

	generateFn func(prompt string) (string, error)
}

func (m *mockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.generateFn != nil {
		return m.generateFn(prompt)
	}
	return "comparison text", nil
}

func candidate(id int64, abstract string, sim float64) domain.ScoredCandidate {
	return domain.ScoredCandidate{
		Project:    domain.Project{ID: id, Title: "t", Abstract: abstract},
		Similarity: sim,
		Category:   domain.Categorize(sim),
	}
}

// --- Tests ---

func TestEnrichAll_ResultsInRankOrder(t *testing.T) {
	gen := &mockGenerator{generateFn: func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "first abstract"):
			return "first comment", nil
		case strings.Contains(prompt, "second abstract"):
			return "second comment", nil
		default:
			return "third comment", nil
		}
	}}
	svc := New(gen).WithMaxConcurrent(3)

	q := domain.Query{Title: "proposed", Abstract: "project"}
	candidates := []domain.ScoredCandidate{
		candidate(1, "first abstract", 0.95),
		candidate(2, "second abstract", 0.6),
		candidate(3, "third abstract", 0.35),
	}

	results := svc.EnrichAll(context.Background(), q, candidates)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	want := []string{"first comment", "second comment", "third comment"}
	for i, w := range want {
		if results[i].Comment != w {
			t.Errorf("result %d: expected %q, got %q", i, w, results[i].Comment)
		}
	}
}

func TestEnrichAll_FailureIsPerCandidate(t *testing.T) {
	gen := &mockGenerator{generateFn: func(prompt string) (string, error) {
		if strings.Contains(prompt, "broken abstract") {
			return "", errors.New("timeout")
		}
		return "ok", nil
	}}
	svc := New(gen)

	candidates := []domain.ScoredCandidate{
		candidate(1, "fine abstract", 0.9),
		candidate(2, "broken abstract", 0.6),
		candidate(3, "another fine abstract", 0.5),
	}

	results := svc.EnrichAll(context.Background(), domain.Query{Title: "t", Abstract: "a"}, candidates)

	if results[0].Comment != "ok" || results[2].Comment != "ok" {
		t.Errorf("healthy candidates should succeed: %+v", results)
	}
	if results[1].Comment != "" || results[1].Err == nil {
		t.Errorf("failed candidate should have empty comment and recorded error, got %+v", results[1])
	}
}

func TestEnrichAll_Empty(t *testing.T) {
	svc := New(&mockGenerator{})
	results := svc.EnrichAll(context.Background(), domain.Query{Title: "t", Abstract: "a"}, nil)
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestBuildPrompt_Structure(t *testing.T) {
	prompt := buildPrompt("  existing text  ", "proposed text", 0.8)

	for _, fragment := range []string{
		"### Similarities:",
		"### Differences:",
		"existing project and proposed project",
		"#### Existing Project Abstract:\nexisting text",
		"#### Proposed Project Abstract:\nproposed text",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestFocusInstruction_Thresholds(t *testing.T) {
	tests := []struct {
		sim  float64
		want string
	}{
		{0.95, "Focus primarily on the **similarities**"},
		{0.91, "Focus primarily on the **similarities**"},
		{0.90, "slightly **similarity-focused**"},
		{0.71, "slightly **similarity-focused**"},
		{0.70, "**balanced view**"},
		{0.41, "**balanced view**"},
		{0.40, "Focus primarily on the **differences**"},
		{0.1, "Focus primarily on the **differences**"},
	}
	for _, tt := range tests {
		got := focusInstruction(tt.sim)
		if !strings.Contains(got, tt.want) {
			t.Errorf("focusInstruction(%v) = %q, expected to contain %q", tt.sim, got, tt.want)
		}
	}
}
