package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
	"github.com/fasalrakshak/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

// SymptomAdapter implements SymptomRepository
type SymptomAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSymptomAdapter creates a new symptom adapter
func NewSymptomAdapter(client *postgres.Client) repositories.SymptomRepository {
	return &SymptomAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var symptomColumns = []interface{}{
	"id", "name", "name_hindi", "description", "description_hindi",
	"affected_part", "image_url",
}

func symptomRecord(symptom *entities.Symptom) goqu.Record {
	return goqu.Record{
		"id":                symptom.ID,
		"name":              symptom.Name,
		"name_hindi":        symptom.NameHindi,
		"description":       symptom.Description,
		"description_hindi": symptom.DescriptionHindi,
		"affected_part":     string(symptom.AffectedPart),
		"image_url":         sql.NullString{String: symptom.ImageURL, Valid: symptom.ImageURL != ""},
	}
}

// Create creates a new symptom
func (a *SymptomAdapter) Create(ctx context.Context, symptom *entities.Symptom) error {
	query, args, err := a.db.Insert("symptoms").Rows(symptomRecord(symptom)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create symptom", err)
	}
	return nil
}

// Upsert creates a symptom or overwrites an existing one with the same ID
func (a *SymptomAdapter) Upsert(ctx context.Context, symptom *entities.Symptom) error {
	record := symptomRecord(symptom)
	update := goqu.Record{}
	for k, v := range record {
		if k != "id" {
			update[k] = v
		}
	}

	query, args, err := a.db.Insert("symptoms").
		Rows(record).
		OnConflict(goqu.DoUpdate("id", update)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to upsert symptom", err)
	}
	return nil
}

// GetByID retrieves a symptom by ID
func (a *SymptomAdapter) GetByID(ctx context.Context, id string) (*entities.Symptom, error) {
	query, args, err := a.db.Select(symptomColumns...).
		From("symptoms").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	symptom, err := scanSymptom(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("symptom with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get symptom", err)
	}
	return symptom, nil
}

// GetByIDs retrieves multiple symptoms by their IDs
func (a *SymptomAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Symptom, error) {
	if len(ids) == 0 {
		return []*entities.Symptom{}, nil
	}

	query, args, err := a.db.Select(symptomColumns...).
		From("symptoms").
		Where(goqu.Ex{"id": ids}).
		Order(goqu.I("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.querySymptoms(ctx, query, args)
}

// List retrieves symptoms, optionally filtered by affected plant part
func (a *SymptomAdapter) List(ctx context.Context, filter repositories.SymptomFilter) ([]*entities.Symptom, error) {
	ds := a.db.Select(symptomColumns...).From("symptoms")

	if filter.AffectedPart != "" {
		ds = ds.Where(goqu.Ex{"affected_part": string(filter.AffectedPart)})
	}

	ds = ds.Order(goqu.I("name").Asc())
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

	return a.querySymptoms(ctx, query, args)
}

// Delete deletes a symptom
func (a *SymptomAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("symptoms").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete symptom", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("symptom with id %s not found", id))
	}
	return nil
}

func (a *SymptomAdapter) querySymptoms(ctx context.Context, query string, args []interface{}) ([]*entities.Symptom, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query symptoms", err)
	}
	defer rows.Close()

	symptoms := []*entities.Symptom{}
	for rows.Next() {
		symptom, err := scanSymptom(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan symptom", err)
		}
		symptoms = append(symptoms, symptom)
	}
	return symptoms, rows.Err()
}

func scanSymptom(row rowScanner) (*entities.Symptom, error) {
	symptom := &entities.Symptom{}
	var imageURL sql.NullString

	err := row.Scan(
		&symptom.ID,
		&symptom.Name,
		&symptom.NameHindi,
		&symptom.Description,
		&symptom.DescriptionHindi,
		&symptom.AffectedPart,
		&imageURL,
	)
	if err != nil {
		return nil, err
	}

	symptom.ImageURL = imageURL.String
	return symptom, nil
}
