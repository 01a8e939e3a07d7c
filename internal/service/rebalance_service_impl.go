package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/repository"
)

type rebalanceService struct {
	suggestions repository.SuggestionRepo
	history     repository.HistoryRepo
	feedback    repository.FeedbackRepo
	prefs       ConstraintsReader
	calendar    CalendarReader
	schedules   ScheduleService
	now         func() time.Time
}

// NewRebalanceService builds the rebalancer on top of the generation
// orchestrator.
func NewRebalanceService(
	suggestions repository.SuggestionRepo,
	history repository.HistoryRepo,
	feedback repository.FeedbackRepo,
	prefs ConstraintsReader,
	calendar CalendarReader,
	schedules ScheduleService,
) RebalanceService {
	return &rebalanceService{
		suggestions: suggestions,
		history:     history,
		feedback:    feedback,
		prefs:       prefs,
		calendar:    calendar,
		schedules:   schedules,
		now:         time.Now,
	}
}

// Rebalance always targets the week in progress: it reacts to things that
// already happened, so the wall clock decides which week is current. The
// clock is read in the user's calendar timezone, the same zone generation
// keys suggestions under; near a week boundary the server's own zone could
// name a different Monday.
func (s *rebalanceService) Rebalance(ctx context.Context, userID string, feedback []domain.TaskFeedback, changes []domain.CalendarChange) (*domain.ScheduleSuggestion, error) {
	loc, err := s.timezone(ctx, userID)
	if err != nil {
		return nil, err
	}
	weekStart := mondayOf(s.now().In(loc))

	for i := range feedback {
		if err := s.feedback.Create(ctx, userID, &feedback[i]); err != nil {
			return nil, fmt.Errorf("recording feedback: %w", err)
		}
	}

	prior, err := s.suggestions.GetActive(ctx, userID, weekStart)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading current suggestion: %w", err)
	}

	next, err := s.schedules.Generate(ctx, GenerateRequest{
		UserID:    userID,
		WeekStart: weekStart,
		Force:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("regenerating schedule: %w", err)
	}

	if prior != nil {
		trigger := domain.TriggerCalendarChange
		if len(feedback) > 0 {
			trigger = domain.TriggerUserFeedback
		}
		entry := &domain.ScheduleHistory{
			ID:         uuid.NewString(),
			UserID:     userID,
			WeekStart:  weekStart,
			ChangeType: domain.ChangeRebalance,
			Trigger:    trigger,
			Previous:   prior.Placements,
			New:        next.Placements,
			Summary: domain.ChangeSummary{
				FeedbackItems:   len(feedback),
				CalendarChanges: len(changes),
			},
			CreatedAt: s.now().UTC(),
		}
		if err := s.history.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("archiving schedule history: %w", err)
		}
		// The superseded suggestion must not win the idempotency check.
		if err := s.suggestions.UpdateStatus(ctx, prior.ID, domain.SuggestionRejected, nil); err != nil {
			return nil, fmt.Errorf("retiring prior suggestion: %w", err)
		}
	}

	return next, nil
}

func (s *rebalanceService) timezone(ctx context.Context, userID string) (*time.Location, error) {
	loc, err := s.calendar.Timezone(ctx, userID)
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, ErrCalendarNotConnected) {
		return nil, fmt.Errorf("resolving timezone: %w", err)
	}
	constraints, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}
	return locationOrUTC(constraints.Timezone), nil
}
