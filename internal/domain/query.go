package domain

import (
	"fmt"
	"strings"
)

// Query is the transient input: a proposed project to match against the corpus.
type Query struct {
	Title    string
	Abstract string
}

// NewQuery validates and constructs a Query. Both fields must be non-blank.
func NewQuery(title, abstract string) (Query, error) {
	if strings.TrimSpace(title) == "" {
		return Query{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(abstract) == "" {
		return Query{}, fmt.Errorf("%w: abstract is required", ErrValidation)
	}
	return Query{Title: title, Abstract: abstract}, nil
}

// CombinedText joins title and abstract as submitted. Query text is deliberately
// not normalized, unlike corpus text (see Project.EmbeddingText).
func (q Query) CombinedText() string {
	return q.Title + " " + q.Abstract
}

// IsIdenticalTo reports whether the query repeats a stored project verbatim:
// both title and abstract equal after trimming and case folding.
func (q Query) IsIdenticalTo(p Project) bool {
	return strings.EqualFold(strings.TrimSpace(q.Title), strings.TrimSpace(p.Title)) &&
		strings.EqualFold(strings.TrimSpace(q.Abstract), strings.TrimSpace(p.Abstract))
}
