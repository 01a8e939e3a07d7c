package domain

// UserConstraints carries the user's stored scheduling preferences as raw
// strings, exactly as entered. Parsing into clock times and durations happens
// at the edge of the scheduler so malformed values can fall back to defaults
// without failing the whole generation.
type UserConstraints struct {
	WakeTime string
	BedTime  string

	WorkoutDays          []string
	WorkoutPreferredTime string
	WorkoutFrequency     string
	WorkoutDuration      string

	CommuteStart string
	CommuteEnd   string

	ChoreTime         string
	ChoreDuration     string
	ChoreDistribution string

	MealDuration string

	PodcastTopics []string

	Timezone string
}
