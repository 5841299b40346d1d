package domain

// Project is a corpus entry: a previously recorded project with its cached embedding.
type Project struct {
	ID       int64
	Title    string
	Abstract string

	// Embedding is computed once from the normalized title+abstract
	// and only recomputed when the source text changes.
	Embedding []float32
}

// EmbeddingText returns the normalized text the corpus embedding is derived from.
func (p Project) EmbeddingText() string {
	return Normalize(p.Title) + " " + Normalize(p.Abstract)
}
