package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/timeparse"
)

// Defaults applied when a preference is missing or unparseable.
var (
	defaultWorkoutStart = map[string]timeparse.ClockTime{
		"morning":   {Hour: 7},
		"afternoon": {Hour: 14},
		"evening":   {Hour: 18},
	}
	defaultLunch = timeparse.ClockTime{Hour: 12, Minute: 30}
)

const (
	defaultWorkoutMinutes = 45
	defaultMealMinutes    = 30
	defaultChoreMinutes   = 60
)

// podcastCatalog pairs a preference topic with a show to suggest alongside
// hands-busy activities.
var podcastCatalog = map[string]string{
	"technology": "Hard Fork",
	"tech":       "Hard Fork",
	"science":    "Radiolab",
	"history":    "The Rest Is History",
	"business":   "How I Built This",
	"news":       "The Daily",
	"comedy":     "Conan O'Brien Needs a Friend",
	"health":     "Huberman Lab",
	"fiction":    "Welcome to Night Vale",
}

// PlaceRecurring expands the user's standing routine into concrete
// placements for the week: workouts on their named days, the weekday
// commute, daily lunch, and chore sessions. Candidates starting before wake
// are moved up to wake; candidates that would run past bed or overlap an
// existing commitment are rejected, never shifted, and each rejection is
// reported as an unplaced item.
func PlaceRecurring(c domain.UserConstraints, weekStart time.Time, window func(day time.Time) DayWindow, busy []domain.BusyEvent, workouts []domain.WorkoutPlan) ([]domain.ScheduledPlacement, []domain.UnplacedItem, []domain.Warning) {
	p := &recurringPlacer{
		window: window,
		busy:   busy,
		topics: c.PodcastTopics,
	}

	p.placeWorkouts(c, weekStart, workouts)
	p.placeCommute(c, weekStart)
	p.placeMeals(c, weekStart)
	p.placeChores(c, weekStart)

	return p.placed, p.unplaced, p.warnings
}

type recurringPlacer struct {
	window   func(day time.Time) DayWindow
	busy     []domain.BusyEvent
	topics   []string
	placed   []domain.ScheduledPlacement
	unplaced []domain.UnplacedItem
	warnings []domain.Warning
	episode  int
}

func (p *recurringPlacer) placeWorkouts(c domain.UserConstraints, weekStart time.Time, workouts []domain.WorkoutPlan) {
	var plans []domain.WorkoutPlan
	for _, w := range workouts {
		if !w.Completed {
			plans = append(plans, w)
		}
	}
	if len(c.WorkoutDays) == 0 || len(plans) == 0 {
		return
	}

	pref := strings.ToLower(strings.TrimSpace(c.WorkoutPreferredTime))
	start, ok := defaultWorkoutStart[pref]
	if !ok {
		start = timeparse.ClockOr(c.WorkoutPreferredTime, defaultWorkoutStart["morning"])
	}

	next := 0
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		if !containsDay(c.WorkoutDays, day.Weekday()) {
			continue
		}
		plan := plans[next%len(plans)]
		dur := timeparse.MinutesOr(c.WorkoutDuration, defaultWorkoutMinutes)
		if plan.DurationMin > 0 {
			dur = plan.DurationMin
		}
		if p.try(domain.ScheduledPlacement{
			ItemID:      plan.ID,
			Title:       plan.Title,
			Activity:    domain.ActivityWorkout,
			Description: plan.PlacementDescription(),
			IsFlexible:  true,
			Priority:    2,
		}, day, start, dur) {
			next++
		}
	}
}

func (p *recurringPlacer) placeCommute(c domain.UserConstraints, weekStart time.Time) {
	if c.CommuteStart == "" || c.CommuteEnd == "" {
		return
	}
	start, err := timeparse.ParseClock(c.CommuteStart)
	if err != nil {
		p.warn(fmt.Sprintf("commute start %q is not a valid time; skipping commute blocks", c.CommuteStart), domain.SeverityWarning)
		return
	}
	end, err := timeparse.ParseClock(c.CommuteEnd)
	if err != nil || end.MinuteOfDay() <= start.MinuteOfDay() {
		p.warn(fmt.Sprintf("commute end %q is not a valid time after %s; skipping commute blocks", c.CommuteEnd, start), domain.SeverityWarning)
		return
	}
	dur := end.MinuteOfDay() - start.MinuteOfDay()

	for i := 0; i < 5; i++ {
		day := weekStart.AddDate(0, 0, i)
		p.try(domain.ScheduledPlacement{
			Title:            "Commute",
			Activity:         domain.ActivityCommute,
			IsFlexible:       false,
			Priority:         1,
			SuggestedPodcast: p.nextPodcast(),
		}, day, start, dur)
	}
}

func (p *recurringPlacer) placeMeals(c domain.UserConstraints, weekStart time.Time) {
	dur := timeparse.MinutesOr(c.MealDuration, defaultMealMinutes)
	for i := 0; i < 5; i++ {
		day := weekStart.AddDate(0, 0, i)
		p.try(domain.ScheduledPlacement{
			Title:      "Lunch",
			Activity:   domain.ActivityMeal,
			IsFlexible: true,
			Priority:   2,
		}, day, defaultLunch, dur)
	}
}

func (p *recurringPlacer) placeChores(c domain.UserConstraints, weekStart time.Time) {
	pref := strings.ToLower(c.ChoreTime)
	distributed := strings.Contains(strings.ToLower(c.ChoreDistribution), "distribut")

	start := timeparse.ClockTime{Hour: 10}
	switch {
	case strings.Contains(pref, "afternoon"):
		start = timeparse.ClockTime{Hour: 14}
	case strings.Contains(pref, "evening"):
		start = timeparse.ClockTime{Hour: 18}
	}

	var offsets []int
	switch {
	case strings.Contains(pref, "weekend") && distributed:
		offsets = []int{5, 6}
	case strings.Contains(pref, "weekend"):
		offsets = []int{5}
	case strings.Contains(pref, "weekday") && distributed:
		offsets = []int{0, 2, 4}
	case strings.Contains(pref, "weekday"):
		offsets = []int{0}
	default:
		offsets = []int{5}
	}

	dur := timeparse.MinutesOr(c.ChoreDuration, defaultChoreMinutes)
	if distributed && len(offsets) > 1 {
		per := dur / len(offsets)
		if per > 0 {
			dur = per
		}
	}

	for _, off := range offsets {
		day := weekStart.AddDate(0, 0, off)
		p.try(domain.ScheduledPlacement{
			Title:            "Chores",
			Activity:         domain.ActivityChore,
			IsFlexible:       true,
			Priority:         3,
			SuggestedPodcast: p.nextPodcast(),
		}, day, start, dur)
	}
}

// try anchors the placement at the requested clock time on the given day,
// lifting the start to wake when needed. It reports whether the placement
// landed; a rejected candidate becomes an unplaced item.
func (p *recurringPlacer) try(pl domain.ScheduledPlacement, day time.Time, at timeparse.ClockTime, durationMin int) bool {
	w := p.window(day)
	start := time.Date(day.Year(), day.Month(), day.Day(), at.Hour, at.Minute, 0, 0, day.Location())
	if start.Before(w.Wake) {
		start = w.Wake
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)
	if end.After(w.Bed) {
		p.reject(pl, domain.ReasonOutsideWindow,
			fmt.Sprintf("%s would run past bed time", day.Weekday()))
		return false
	}
	iv := domain.NewInterval(start, end)
	if res := Conflicts(iv, p.busy); res.HasConflict {
		p.reject(pl, domain.ReasonConflictsOnly,
			fmt.Sprintf("%s overlaps %q", day.Weekday(), res.With))
		return false
	}

	pl.Day = day.Weekday().String()
	pl.Start = start
	pl.End = end
	p.placed = append(p.placed, pl)
	// Later recurring candidates must not stack on this one.
	p.busy = append(p.busy, domain.BusyEvent{Interval: iv, Title: pl.Title, Tier: domain.TierNormal})
	return true
}

func (p *recurringPlacer) warn(msg string, sev domain.WarningSeverity) {
	p.warnings = append(p.warnings, domain.Warning{Message: msg, Severity: sev})
}

func (p *recurringPlacer) reject(pl domain.ScheduledPlacement, reason domain.UnplacedReason, detail string) {
	p.unplaced = append(p.unplaced, domain.UnplacedItem{
		ItemID:   pl.ItemID,
		Title:    pl.Title,
		Priority: pl.Priority,
		Reason:   reason,
		Detail:   detail,
	})
}

// nextPodcast cycles through the user's topics so suggestions vary across
// the week. Workouts never get one; only hands-busy activities call this.
func (p *recurringPlacer) nextPodcast() string {
	if len(p.topics) == 0 {
		return ""
	}
	topic := strings.ToLower(strings.TrimSpace(p.topics[p.episode%len(p.topics)]))
	p.episode++
	if show, ok := podcastCatalog[topic]; ok {
		return show
	}
	return fmt.Sprintf("a %s podcast", topic)
}

func containsDay(days []string, wd time.Weekday) bool {
	for _, d := range days {
		if strings.EqualFold(strings.TrimSpace(d), wd.String()) {
			return true
		}
	}
	return false
}
