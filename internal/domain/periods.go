package domain

// OverridePeriod (q) replaces a transaction's remnant with Fixed when the
// transaction date falls inside [Start, End]. When several override periods
// match, the one with the latest start wins.
type OverridePeriod struct {
	Fixed float64 `json:"fixed"`
	Start Time    `json:"start"`
	End   Time    `json:"end"`
}

// Contains reports whether ts falls inside the period, bounds inclusive.
func (p OverridePeriod) Contains(ts Time) bool {
	return !ts.Before(p.Start.Time) && !ts.After(p.End.Time)
}

// BonusPeriod (p) adds Extra to a transaction's remnant when the transaction
// date falls inside [Start, End]. All matching bonus periods stack.
type BonusPeriod struct {
	Extra float64 `json:"extra"`
	Start Time    `json:"start"`
	End   Time    `json:"end"`
}

// Contains reports whether ts falls inside the period, bounds inclusive.
func (p BonusPeriod) Contains(ts Time) bool {
	return !ts.Before(p.Start.Time) && !ts.After(p.End.Time)
}

// EvaluationPeriod (k) is an aggregation window. A transaction may belong to
// several evaluation periods; each period sums its matches independently.
// Callers are expected to keep each window within a single calendar year.
type EvaluationPeriod struct {
	Start Time `json:"start"`
	End   Time `json:"end"`
}

// Contains reports whether ts falls inside the period, bounds inclusive.
func (p EvaluationPeriod) Contains(ts Time) bool {
	return !ts.Before(p.Start.Time) && !ts.After(p.End.Time)
}
