package domain

// Category classifies a similarity score into a discrete band.
type Category string

const (
	// CategoryIdentical marks an exact title+abstract match, regardless of score.
	CategoryIdentical Category = "Identical"
	// CategoryHigh marks scores >= 0.8.
	CategoryHigh Category = "High"
	// CategoryMedium marks scores in [0.5, 0.8).
	CategoryMedium Category = "Medium"
	// CategoryLow marks scores below 0.5.
	CategoryLow Category = "Low"
)

// WarningIdentical is attached to candidates that repeat a stored project verbatim.
const WarningIdentical = "Highly identical project"

// Categorize maps a cosine similarity score to its band.
// The Identical override is applied by the ranker, not here.
func Categorize(score float64) Category {
	switch {
	case score >= 0.8:
		return CategoryHigh
	case score >= 0.5:
		return CategoryMedium
	default:
		return CategoryLow
	}
}

// ScoredCandidate is a corpus project scored against one query.
// It lives only for the duration of a pipeline run and is never persisted as-is.
type ScoredCandidate struct {
	Project    Project
	Similarity float64
	Category   Category
	Warning    string
}

// MatchingScore returns the similarity as the integer percentage stored with a session.
func (c ScoredCandidate) MatchingScore() int {
	return RoundPercent(c.Similarity)
}
