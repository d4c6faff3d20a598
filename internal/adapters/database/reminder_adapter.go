package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
	"github.com/fasalrakshak/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

// ReminderAdapter implements ReminderRepository
type ReminderAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewReminderAdapter creates a new reminder adapter
func NewReminderAdapter(client *postgres.Client) repositories.ReminderRepository {
	return &ReminderAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var reminderColumns = []interface{}{
	"id", "crop_id", "diagnosis_id", "type", "title", "title_hindi",
	"notes", "due_at", "repeat", "completed", "created_at", "updated_at",
}

func reminderRecord(r *entities.CropReminder) goqu.Record {
	return goqu.Record{
		"id":           r.ID,
		"crop_id":      sql.NullString{String: r.CropID, Valid: r.CropID != ""},
		"diagnosis_id": sql.NullString{String: r.DiagnosisID, Valid: r.DiagnosisID != ""},
		"type":         string(r.Type),
		"title":        r.Title,
		"title_hindi":  r.TitleHindi,
		"notes":        sql.NullString{String: r.Notes, Valid: r.Notes != ""},
		"due_at":       r.DueAt,
		"repeat":       string(r.Repeat),
		"completed":    r.Completed,
		"created_at":   r.CreatedAt,
		"updated_at":   r.UpdatedAt,
	}
}

// Create creates a new reminder
func (a *ReminderAdapter) Create(ctx context.Context, reminder *entities.CropReminder) error {
	query, args, err := a.db.Insert("reminders").Rows(reminderRecord(reminder)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create reminder", err)
	}
	return nil
}

// GetByID retrieves a reminder by ID
func (a *ReminderAdapter) GetByID(ctx context.Context, id string) (*entities.CropReminder, error) {
	query, args, err := a.db.Select(reminderColumns...).
		From("reminders").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	reminder, err := scanReminder(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("reminder with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get reminder", err)
	}
	return reminder, nil
}

// List retrieves reminders ordered by due time
func (a *ReminderAdapter) List(ctx context.Context, filter repositories.ReminderFilter) ([]*entities.CropReminder, error) {
	ds := a.db.Select(reminderColumns...).From("reminders")

	if filter.CropID != "" {
		ds = ds.Where(goqu.Ex{"crop_id": filter.CropID})
	}
	if filter.Completed != nil {
		ds = ds.Where(goqu.Ex{"completed": *filter.Completed})
	}

	ds = ds.Order(goqu.I("due_at").Asc())
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query reminders", err)
	}
	defer rows.Close()

	reminders := []*entities.CropReminder{}
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan reminder", err)
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

// Update updates a reminder
func (a *ReminderAdapter) Update(ctx context.Context, reminder *entities.CropReminder) error {
	reminder.UpdatedAt = time.Now()

	record := reminderRecord(reminder)
	delete(record, "id")
	delete(record, "created_at")

	query, args, err := a.db.Update("reminders").
		Set(record).
		Where(goqu.Ex{"id": reminder.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update reminder", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("reminder with id %s not found", reminder.ID))
	}
	return nil
}

// Delete deletes a reminder
func (a *ReminderAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("reminders").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete reminder", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("reminder with id %s not found", id))
	}
	return nil
}

func scanReminder(row rowScanner) (*entities.CropReminder, error) {
	reminder := &entities.CropReminder{}
	var cropID, diagnosisID, notes sql.NullString

	err := row.Scan(
		&reminder.ID,
		&cropID,
		&diagnosisID,
		&reminder.Type,
		&reminder.Title,
		&reminder.TitleHindi,
		&notes,
		&reminder.DueAt,
		&reminder.Repeat,
		&reminder.Completed,
		&reminder.CreatedAt,
		&reminder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	reminder.CropID = cropID.String
	reminder.DiagnosisID = diagnosisID.String
	reminder.Notes = notes.String
	return reminder, nil
}
