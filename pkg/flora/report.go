package flora

import (
	"time"
)

// FailureReason classifies a report generation failure.
type FailureReason string

const (
	// FailureBlocked means the generator refused the request by its safety
	// filters.
	FailureBlocked FailureReason = "blocked"

	// FailureEmpty means the generator returned no text.
	FailureEmpty FailureReason = "empty"

	// FailureTransport means the request did not reach the generator or the
	// call failed.
	FailureTransport FailureReason = "transport"
)

// ReportInput is everything the report assembler gets from a run.
type ReportInput struct {
	// Combined is the concatenated description payload of matched species.
	Combined string

	// UserInput is the raw specimen description from the user, can be
	// empty.
	UserInput string

	// Unmatched are names of species without descriptions.
	Unmatched []string

	// Species is the full ranked list of species found in the area.
	Species []SpeciesAggregate
}

// Report is the outcome of report generation. A failed report still carries
// a human-readable Text explaining the failure.
type Report struct {
	Text   string
	Failed bool
	Reason FailureReason
}

// RunRecord keeps everything about one analysis run for archiving.
type RunRecord struct {
	ID        string
	CreatedAt time.Time
	Query     Query
	Taxon     Taxon

	// Completion is empty when results came from the cache.
	Completion Completion
	FromCache  bool

	Species   []SpeciesAggregate
	Matched   []MatchedSpecies
	Unmatched []UnmatchedSpecies
	Processed int
	Report    Report
}
