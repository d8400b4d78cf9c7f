package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrOutcome  = "outcome"
	AttrReason   = "reason"
)

// CSV import row outcomes.
const (
	OutcomeImported  = "imported"
	OutcomeSkipped   = "skipped"
	OutcomeDuplicate = "duplicate"
)
