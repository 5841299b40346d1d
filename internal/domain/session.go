package domain

import "time"

// MatchRecord is one persisted (query, candidate) comparison row.
// All records sharing a SearchGUID belong to a single query invocation;
// a session is written once and then only read.
type MatchRecord struct {
	SearchGUID       string
	UserAbstract     string
	MatchedProjectID int64
	CosineSimilarity int // 0-100
	MatchingComments string
	CreatedAt        time.Time
}

// SessionRecord is a MatchRecord joined with its project's metadata,
// as returned to the caller.
type SessionRecord struct {
	ProjectID        int64
	Title            string
	Abstract         string
	SearchGUID       string
	MatchingScore    int
	MatchingComments string
}
