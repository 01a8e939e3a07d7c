package domain

// Tier classifies how protected a pre-existing calendar event is.
// High-tier events are non-negotiable; nothing may be placed over them.
type Tier string

const (
	TierNormal    Tier = "normal"
	TierImportant Tier = "important"
	TierHigh      Tier = "high"
)

// TierForColor maps an opaque calendar color tag to a priority tier.
// Tag "11" marks non-negotiable commitments; "4" and "6" are soft-protected.
func TierForColor(color string) Tier {
	switch color {
	case "11":
		return TierHigh
	case "4", "6":
		return TierImportant
	default:
		return TierNormal
	}
}

// tierRank orders tiers for comparison (higher = more protected).
func tierRank(t Tier) int {
	switch t {
	case TierHigh:
		return 2
	case TierImportant:
		return 1
	default:
		return 0
	}
}

// MaxTier returns the more protected of two tiers.
func MaxTier(a, b Tier) Tier {
	if tierRank(a) >= tierRank(b) {
		return a
	}
	return b
}

type SuggestionStatus string

const (
	SuggestionPending           SuggestionStatus = "pending"
	SuggestionAccepted          SuggestionStatus = "accepted"
	SuggestionRejected          SuggestionStatus = "rejected"
	SuggestionPartiallyAccepted SuggestionStatus = "partially_accepted"
)

type ChangeType string

const (
	ChangeInitial        ChangeType = "initial"
	ChangeRebalance      ChangeType = "rebalance"
	ChangeManualEdit     ChangeType = "manual_edit"
	ChangeTaskIncomplete ChangeType = "task_incomplete"
)

type RebalanceTrigger string

const (
	TriggerUserFeedback   RebalanceTrigger = "user_feedback"
	TriggerCalendarChange RebalanceTrigger = "calendar_change"
)

// UnplacedReason explains why an item could not be scheduled.
type UnplacedReason string

const (
	// ReasonNoCapacity: total remaining free time is smaller than the item.
	ReasonNoCapacity UnplacedReason = "no_capacity"
	// ReasonOutsideWindow: the candidate would end after bed time.
	ReasonOutsideWindow UnplacedReason = "outside_window"
	// ReasonConflictsOnly: enough raw capacity exists, but every large-enough
	// span is blocked by existing commitments or earlier placements.
	ReasonConflictsOnly UnplacedReason = "conflicts_only"
)

type ActivityType string

const (
	ActivityWorkout ActivityType = "workout"
	ActivityMeal    ActivityType = "meal"
	ActivityCommute ActivityType = "commute"
	ActivityChore   ActivityType = "chore"
	ActivityTask    ActivityType = "task"
	ActivityBreak   ActivityType = "break"
	ActivityFocus   ActivityType = "focus"
	ActivityPodcast ActivityType = "podcast"
	ActivityMeeting ActivityType = "meeting"
)

// ValidActivityTypes is the canonical set of accepted activity type strings.
var ValidActivityTypes = map[string]bool{
	"workout": true, "meal": true, "commute": true, "chore": true,
	"task": true, "break": true, "focus": true, "podcast": true,
	"meeting": true,
}

type WarningSeverity string

const (
	SeverityInfo    WarningSeverity = "info"
	SeverityWarning WarningSeverity = "warning"
	SeverityError   WarningSeverity = "error"
)

// AlgorithmFallback tags suggestions produced by the deterministic packer.
const AlgorithmFallback = "fallback-v1"
