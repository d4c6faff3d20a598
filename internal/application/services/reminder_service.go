package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

// ReminderService manages scheduled farm-task reminders.
type ReminderService struct {
	reminders repositories.ReminderRepository
	now       func() time.Time
}

func NewReminderService(reminders repositories.ReminderRepository) *ReminderService {
	return &ReminderService{reminders: reminders, now: time.Now}
}

// Create validates and stores a new reminder, assigning it an ID.
func (s *ReminderService) Create(ctx context.Context, reminder *entities.CropReminder) (*entities.CropReminder, error) {
	if reminder == nil {
		return nil, apperrors.NewValidationError("reminder is required")
	}
	if reminder.Title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}
	if reminder.DueAt.IsZero() {
		return nil, apperrors.NewValidationError("due_at is required")
	}
	if reminder.Type == "" {
		reminder.Type = entities.ReminderHealthCheckup
	}
	if reminder.Repeat == "" {
		reminder.Repeat = entities.RepeatNone
	}

	reminder.ID = uuid.New().String()
	reminder.CreatedAt = s.now()
	reminder.UpdatedAt = reminder.CreatedAt
	if err := s.reminders.Create(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// Get retrieves a reminder by ID.
func (s *ReminderService) Get(ctx context.Context, id string) (*entities.CropReminder, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("id is required")
	}
	return s.reminders.GetByID(ctx, id)
}

// List retrieves reminders ordered by due time.
func (s *ReminderService) List(ctx context.Context, filter repositories.ReminderFilter) ([]*entities.CropReminder, error) {
	return s.reminders.List(ctx, filter)
}

// Complete marks a reminder done. Repeating reminders roll forward to
// their next occurrence instead.
func (s *ReminderService) Complete(ctx context.Context, id string) (*entities.CropReminder, error) {
	reminder, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch reminder.Repeat {
	case entities.RepeatDaily:
		reminder.DueAt = reminder.DueAt.AddDate(0, 0, 1)
	case entities.RepeatWeekly:
		reminder.DueAt = reminder.DueAt.AddDate(0, 0, 7)
	case entities.RepeatMonthly:
		reminder.DueAt = reminder.DueAt.AddDate(0, 1, 0)
	default:
		reminder.Completed = true
	}
	reminder.UpdatedAt = s.now()

	if err := s.reminders.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// Update stores edits to an existing reminder.
func (s *ReminderService) Update(ctx context.Context, reminder *entities.CropReminder) (*entities.CropReminder, error) {
	if reminder == nil || reminder.ID == "" {
		return nil, apperrors.NewValidationError("reminder id is required")
	}
	if _, err := s.reminders.GetByID(ctx, reminder.ID); err != nil {
		return nil, err
	}
	reminder.UpdatedAt = s.now()
	if err := s.reminders.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// Delete removes a reminder.
func (s *ReminderService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewValidationError("id is required")
	}
	return s.reminders.Delete(ctx, id)
}
