package domain

import "time"

// ScheduledPlacement is an accepted assignment of an item to a concrete
// day/time interval.
type ScheduledPlacement struct {
	ItemID           string       `json:"item_id,omitempty"`
	Title            string       `json:"title"`
	Activity         ActivityType `json:"activity_type"`
	Day              string       `json:"day"`
	Start            time.Time    `json:"start_time"`
	End              time.Time    `json:"end_time"`
	Description      string       `json:"description,omitempty"`
	IsFlexible       bool         `json:"is_flexible"`
	Priority         int          `json:"priority"`
	SuggestedPodcast string       `json:"suggested_podcast,omitempty"`
	Color            string       `json:"color,omitempty"`
}

// Interval returns the placement's time span.
func (p ScheduledPlacement) Interval() TimeInterval {
	return TimeInterval{Start: p.Start, End: p.End}
}

// UnplacedItem records an item that could not be scheduled and why.
type UnplacedItem struct {
	ItemID   string         `json:"item_id"`
	Title    string         `json:"title"`
	Priority int            `json:"priority"`
	Reason   UnplacedReason `json:"reason"`
	Detail   string         `json:"detail,omitempty"`
}

type Warning struct {
	Message  string          `json:"message"`
	Severity WarningSeverity `json:"severity"`
}

// Conflict records a candidate placement the engine had to reject because
// it overlapped an existing commitment.
type Conflict struct {
	Title string `json:"title"`
	With  string `json:"with"`
	Tier  Tier   `json:"tier"`
}

// ScheduleSuggestion is the persisted outcome of one generation call for
// one user and one week-start date. It is written exactly once per call;
// only its status changes afterwards.
type ScheduleSuggestion struct {
	ID          string
	UserID      string
	WeekStart   time.Time
	Placements  []ScheduledPlacement
	Unplaced    []UnplacedItem
	Reasoning   string
	Warnings    []Warning
	Conflicts   []Conflict
	Confidence  float64
	Algorithm   string
	Status      SuggestionStatus
	GeneratedAt time.Time
	AppliedAt   *time.Time
}

// ChangeSummary counts what drove a rebalance.
type ChangeSummary struct {
	FeedbackItems   int `json:"feedback_items"`
	CalendarChanges int `json:"calendar_changes"`
}

// ScheduleHistory snapshots a suggestion before it is replaced.
type ScheduleHistory struct {
	ID         string
	UserID     string
	WeekStart  time.Time
	ChangeType ChangeType
	Trigger    RebalanceTrigger
	Previous   []ScheduledPlacement
	New        []ScheduledPlacement
	Summary    ChangeSummary
	CreatedAt  time.Time
}

// TaskFeedback reports how a previously scheduled task actually went.
type TaskFeedback struct {
	TaskID           string
	EstimatedMinutes int
	ActualMinutes    int
	Completed        bool
	DifficultyRating int
	Notes            string
}

// CalendarChange describes a detected delta in the external calendar.
type CalendarChange struct {
	EventID     string
	Kind        string
	Description string
}
