package domain

// BusyEvent is a pre-existing calendar commitment. Events are read-only
// input to a generation call; the engine never moves or edits them.
type BusyEvent struct {
	Interval TimeInterval
	Title    string
	Tier     Tier
}
