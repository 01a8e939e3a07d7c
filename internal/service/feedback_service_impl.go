package service

import (
	"context"
	"fmt"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/repository"
)

type feedbackService struct {
	feedback repository.FeedbackRepo
}

// NewFeedbackService builds the task feedback recorder.
func NewFeedbackService(feedback repository.FeedbackRepo) FeedbackService {
	return &feedbackService{feedback: feedback}
}

func (s *feedbackService) Submit(ctx context.Context, userID string, f *domain.TaskFeedback) error {
	if f.TaskID == "" {
		return fmt.Errorf("feedback needs a task id")
	}
	if f.ActualMinutes < 0 {
		return fmt.Errorf("actual minutes cannot be negative")
	}
	if f.DifficultyRating < 0 || f.DifficultyRating > 5 {
		return fmt.Errorf("difficulty rating must be between 0 and 5")
	}
	if err := s.feedback.Create(ctx, userID, f); err != nil {
		return fmt.Errorf("saving feedback: %w", err)
	}
	return nil
}
