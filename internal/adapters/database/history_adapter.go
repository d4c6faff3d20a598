package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
	"github.com/fasalrakshak/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

// HistoryAdapter implements DiagnosisHistoryRepository. Each result is
// stored whole as JSONB next to the columns used for filtering; on save,
// entries beyond the cap are evicted oldest-first.
type HistoryAdapter struct {
	client *postgres.Client
	db     *goqu.Database
	cap    int
}

// NewHistoryAdapter creates a new history adapter with the given cap
func NewHistoryAdapter(client *postgres.Client, cap int) repositories.DiagnosisHistoryRepository {
	if cap <= 0 {
		cap = 100
	}
	return &HistoryAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
		cap:    cap,
	}
}

// Save stores a diagnosis result and trims the table to the cap
func (a *HistoryAdapter) Save(ctx context.Context, result *entities.DiagnosisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return apperrors.NewInternalError("failed to encode diagnosis result", err)
	}

	record := goqu.Record{
		"id":           result.ID,
		"crop_id":      sql.NullString{String: result.CropID, Valid: result.CropID != ""},
		"crop_name":    sql.NullString{String: result.CropName, Valid: result.CropName != ""},
		"health_score": result.HealthScore,
		"status":       string(result.HealthStatus()),
		"result":       payload,
		"diagnosed_at": result.DiagnosedAt,
	}

	query, args, err := a.db.Insert("diagnosis_history").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to save diagnosis result", err)
	}

	trim := `DELETE FROM diagnosis_history WHERE id NOT IN (
		SELECT id FROM diagnosis_history ORDER BY diagnosed_at DESC, id LIMIT $1
	)`
	if _, err := tx.ExecContext(ctx, trim, a.cap); err != nil {
		return apperrors.NewInternalError("failed to trim diagnosis history", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit diagnosis save", err)
	}
	return nil
}

// GetByID retrieves a diagnosis result by ID
func (a *HistoryAdapter) GetByID(ctx context.Context, id string) (*entities.DiagnosisResult, error) {
	query, args, err := a.db.Select("result").
		From("diagnosis_history").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	var payload []byte
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("diagnosis with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get diagnosis result", err)
	}

	result := &entities.DiagnosisResult{}
	if err := json.Unmarshal(payload, result); err != nil {
		return nil, apperrors.NewInternalError("failed to decode diagnosis result", err)
	}
	return result, nil
}

// List retrieves results newest-first
func (a *HistoryAdapter) List(ctx context.Context, filter repositories.HistoryFilter) ([]*entities.DiagnosisResult, error) {
	ds := a.db.Select("result").From("diagnosis_history")

	if filter.CropID != "" {
		ds = ds.Where(goqu.Ex{"crop_id": filter.CropID})
	}

	ds = ds.Order(goqu.I("diagnosed_at").Desc(), goqu.I("id").Asc())
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
		return nil, apperrors.NewInternalError("failed to query diagnosis history", err)
	}
	defer rows.Close()

	results := []*entities.DiagnosisResult{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, apperrors.NewInternalError("failed to scan diagnosis result", err)
		}
		result := &entities.DiagnosisResult{}
		if err := json.Unmarshal(payload, result); err != nil {
			return nil, apperrors.NewInternalError("failed to decode diagnosis result", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// Delete deletes a diagnosis result
func (a *HistoryAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("diagnosis_history").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete diagnosis result", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("diagnosis with id %s not found", id))
	}
	return nil
}
