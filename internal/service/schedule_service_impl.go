package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/generator"
	"github.com/averyhall/tempo/internal/repository"
	"github.com/averyhall/tempo/internal/scheduler"
)

const fallbackWarning = "AI scheduling unavailable - using rule-based fallback"

type scheduleService struct {
	suggestions repository.SuggestionRepo
	feedback    repository.FeedbackRepo
	prefs       ConstraintsReader
	goals       GoalSource
	workouts    WorkoutSource
	episodes    EpisodeSource
	calendar    CalendarReader
	providers   []generator.Provider

	group singleflight.Group
	now   func() time.Time
}

// NewScheduleService builds the generation orchestrator. Providers are
// tried in order; the deterministic builder always runs last and cannot
// fail, so Generate never returns an empty schedule for a reachable
// database.
func NewScheduleService(
	suggestions repository.SuggestionRepo,
	feedback repository.FeedbackRepo,
	prefs ConstraintsReader,
	goals GoalSource,
	workouts WorkoutSource,
	episodes EpisodeSource,
	calendar CalendarReader,
	providers []generator.Provider,
) ScheduleService {
	return &scheduleService{
		suggestions: suggestions,
		feedback:    feedback,
		prefs:       prefs,
		goals:       goals,
		workouts:    workouts,
		episodes:    episodes,
		calendar:    calendar,
		providers:   providers,
		now:         time.Now,
	}
}

func (s *scheduleService) Generate(ctx context.Context, req GenerateRequest) (*domain.ScheduleSuggestion, error) {
	key := req.UserID + "|" + req.WeekStart.Format("2006-01-02")
	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.generate(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.ScheduleSuggestion), nil
}

func (s *scheduleService) generate(ctx context.Context, req GenerateRequest) (*domain.ScheduleSuggestion, error) {
	constraints, loc, weekStart, err := s.resolveWeek(ctx, req)
	if err != nil {
		return nil, err
	}

	if !req.Force {
		existing, err := s.suggestions.GetActive(ctx, req.UserID, weekStart)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("checking existing suggestion: %w", err)
		}
	}

	gc, err := s.gather(ctx, req, constraints, loc, weekStart)
	if err != nil {
		return nil, err
	}

	suggestion := s.draftWithProviders(ctx, gc)
	if suggestion == nil {
		suggestion = s.deterministic(gc)
	}

	suggestion.ID = uuid.NewString()
	suggestion.UserID = req.UserID
	suggestion.WeekStart = gc.WeekStart
	suggestion.Status = domain.SuggestionPending
	suggestion.GeneratedAt = s.now().In(gc.Location)

	if err := s.suggestions.Save(ctx, suggestion); err != nil {
		return nil, fmt.Errorf("persisting suggestion: %w", err)
	}
	return suggestion, nil
}

// resolveWeek loads preferences and pins the target week to Monday
// midnight in the user's calendar timezone. The normalized week start is
// what keys both the idempotency check and the stored suggestion.
func (s *scheduleService) resolveWeek(ctx context.Context, req GenerateRequest) (*domain.UserConstraints, *time.Location, time.Time, error) {
	constraints, err := s.prefs.Get(ctx, req.UserID)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("loading preferences: %w", err)
	}

	loc, err := s.calendar.Timezone(ctx, req.UserID)
	if err != nil {
		if !errors.Is(err, ErrCalendarNotConnected) {
			return nil, nil, time.Time{}, fmt.Errorf("resolving timezone: %w", err)
		}
		loc = locationOrUTC(constraints.Timezone)
	}

	return constraints, loc, mondayOf(req.WeekStart.In(loc)), nil
}

// gather assembles everything a draft needs, in the user's timezone.
// A disconnected calendar means an empty week, not an error.
func (s *scheduleService) gather(ctx context.Context, req GenerateRequest, constraints *domain.UserConstraints, loc *time.Location, weekStart time.Time) (generator.Context, error) {
	var gc generator.Context

	busy, err := s.calendar.BusyEvents(ctx, req.UserID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		if !errors.Is(err, ErrCalendarNotConnected) {
			return gc, fmt.Errorf("loading calendar events: %w", err)
		}
		busy = nil
	}

	items, err := s.goals.ListOpen(ctx, req.UserID)
	if err != nil {
		return gc, fmt.Errorf("loading goals: %w", err)
	}
	episodes, err := s.episodes.ListUnplayed(ctx, req.UserID)
	if err != nil {
		return gc, fmt.Errorf("loading episodes: %w", err)
	}
	items = append(items, episodes...)

	workouts, err := s.workouts.ListPlans(ctx, req.UserID)
	if err != nil {
		return gc, fmt.Errorf("loading workouts: %w", err)
	}

	gc = generator.Context{
		UserID:       req.UserID,
		WeekStart:    weekStart,
		Location:     loc,
		Constraints:  *constraints,
		Busy:         busy,
		Items:        items,
		Workouts:     workouts,
		Modification: req.Modification,
	}
	return gc, nil
}

// draftWithProviders walks the chain and returns the first acceptable
// draft, or nil when every provider failed or produced nothing usable.
func (s *scheduleService) draftWithProviders(ctx context.Context, gc generator.Context) *domain.ScheduleSuggestion {
	for _, p := range s.providers {
		draft, err := p.AttemptGenerate(ctx, gc)
		if err != nil || draft == nil {
			continue
		}

		placements, conflicts := vetPlacements(draft.Placements, gc.Busy)
		if len(placements) == 0 {
			continue
		}

		return &domain.ScheduleSuggestion{
			Placements: placements,
			Conflicts:  conflicts,
			Reasoning:  draft.Reasoning,
			Confidence: draft.Confidence,
			Algorithm:  draft.Algorithm,
		}
	}
	return nil
}

// deterministic builds the rule-based week. Whatever put us here, AI was
// not available for this suggestion, so the warning is always attached.
func (s *scheduleService) deterministic(gc generator.Context) *domain.ScheduleSuggestion {
	res := scheduler.BuildWeek(scheduler.WeekInput{
		Constraints: gc.Constraints,
		WeekStart:   gc.WeekStart,
		Busy:        gc.Busy,
		Items:       gc.Items,
		Workouts:    gc.Workouts,
	})

	warnings := append([]domain.Warning{{Message: fallbackWarning, Severity: domain.SeverityWarning}}, res.Warnings...)

	return &domain.ScheduleSuggestion{
		Placements: res.Placements,
		Unplaced:   res.Unplaced,
		Reasoning:  res.Reasoning,
		Warnings:   warnings,
		Confidence: res.Confidence,
		Algorithm:  domain.AlgorithmFallback,
	}
}

// vetPlacements drops draft placements that overlap non-negotiable
// commitments, recording each rejection.
func vetPlacements(placements []domain.ScheduledPlacement, busy []domain.BusyEvent) ([]domain.ScheduledPlacement, []domain.Conflict) {
	var protected []domain.BusyEvent
	for _, ev := range busy {
		if ev.Tier == domain.TierHigh {
			protected = append(protected, ev)
		}
	}

	var kept []domain.ScheduledPlacement
	var conflicts []domain.Conflict
	for _, pl := range placements {
		if res := scheduler.Conflicts(pl.Interval(), protected); res.HasConflict {
			conflicts = append(conflicts, domain.Conflict{
				Title: pl.Title,
				With:  res.With,
				Tier:  res.BlockingTier,
			})
			continue
		}
		kept = append(kept, pl)
	}
	return kept, conflicts
}

func (s *scheduleService) GetStatus(ctx context.Context, userID string, weekStart time.Time) (*ScheduleStatus, error) {
	suggestion, err := s.suggestions.GetActive(ctx, userID, mondayOf(weekStart))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ScheduleStatus{}, nil
		}
		return nil, fmt.Errorf("loading suggestion: %w", err)
	}

	status := &ScheduleStatus{
		HasSchedule: true,
		Status:      suggestion.Status,
		Algorithm:   suggestion.Algorithm,
		Placements:  len(suggestion.Placements),
		Unplaced:    len(suggestion.Unplaced),
		GeneratedAt: suggestion.GeneratedAt,
	}

	tracked := make(map[string]bool)
	for _, pl := range suggestion.Placements {
		if pl.ItemID != "" {
			tracked[pl.ItemID] = false
		}
	}
	if len(tracked) == 0 {
		return status, nil
	}

	feedback, err := s.feedback.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading feedback: %w", err)
	}
	done := 0
	for _, f := range feedback {
		if seen, ok := tracked[f.TaskID]; ok && !seen && f.Completed {
			tracked[f.TaskID] = true
			done++
		}
	}
	status.CompletionRate = float64(done) / float64(len(tracked))
	return status, nil
}

// mondayOf returns midnight on the Monday of t's week, in t's location.
func mondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func locationOrUTC(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
