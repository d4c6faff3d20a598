package repositories

import (
	"context"

	"github.com/fasalrakshak/backend/internal/domain/entities"
)

// DiagnosisHistoryRepository defines the interface for diagnosis history
// operations. Implementations keep history newest-first and bounded: on
// save, entries beyond the configured cap are evicted oldest-first.
type DiagnosisHistoryRepository interface {
	// Save stores a diagnosis result and evicts the oldest entries
	// beyond the history cap
	Save(ctx context.Context, result *entities.DiagnosisResult) error

	// GetByID retrieves a diagnosis result by ID
	GetByID(ctx context.Context, id string) (*entities.DiagnosisResult, error)

	// List retrieves results newest-first
	List(ctx context.Context, filter HistoryFilter) ([]*entities.DiagnosisResult, error)

	// Delete deletes a diagnosis result
	Delete(ctx context.Context, id string) error
}

// HistoryFilter defines filters for listing diagnosis history
type HistoryFilter struct {
	CropID string
	Limit  int
	Offset int
}

// ReminderRepository defines the interface for crop reminder operations
type ReminderRepository interface {
	// Create creates a new reminder
	Create(ctx context.Context, reminder *entities.CropReminder) error

	// GetByID retrieves a reminder by ID
	GetByID(ctx context.Context, id string) (*entities.CropReminder, error)

	// List retrieves reminders ordered by due time
	List(ctx context.Context, filter ReminderFilter) ([]*entities.CropReminder, error)

	// Update updates a reminder
	Update(ctx context.Context, reminder *entities.CropReminder) error

	// Delete deletes a reminder
	Delete(ctx context.Context, id string) error
}

// ReminderFilter defines filters for listing reminders
type ReminderFilter struct {
	CropID    string
	Completed *bool
	Limit     int
	Offset    int
}
