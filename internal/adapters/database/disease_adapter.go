package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
	"github.com/fasalrakshak/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

// DiseaseAdapter implements DiseaseRepository. Nested symptoms and
// treatments are stored as JSONB alongside the scalar columns, since
// they are always read and written with their disease.
type DiseaseAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewDiseaseAdapter creates a new disease adapter
func NewDiseaseAdapter(client *postgres.Client) repositories.DiseaseRepository {
	return &DiseaseAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var diseaseColumns = []interface{}{
	"id", "name", "name_hindi", "type", "severity", "description",
	"description_hindi", "affected_crops", "symptoms", "causes",
	"organic_treatments", "chemical_treatments", "preventive_measures",
	"preventive_measures_hindi", "image_urls", "created_at", "updated_at",
}

func diseaseRecord(disease *entities.Disease) (goqu.Record, error) {
	symptoms, err := json.Marshal(disease.Symptoms)
	if err != nil {
		return nil, fmt.Errorf("marshal symptoms: %w", err)
	}
	organic, err := json.Marshal(disease.OrganicTreatments)
	if err != nil {
		return nil, fmt.Errorf("marshal organic treatments: %w", err)
	}
	chemical, err := json.Marshal(disease.ChemicalTreatments)
	if err != nil {
		return nil, fmt.Errorf("marshal chemical treatments: %w", err)
	}

	return goqu.Record{
		"id":                        disease.ID,
		"name":                      disease.Name,
		"name_hindi":                disease.NameHindi,
		"type":                      string(disease.Type),
		"severity":                  string(disease.Severity),
		"description":               disease.Description,
		"description_hindi":         disease.DescriptionHindi,
		"affected_crops":            pq.Array(disease.AffectedCrops),
		"symptoms":                  symptoms,
		"causes":                    pq.Array(disease.Causes),
		"organic_treatments":        organic,
		"chemical_treatments":       chemical,
		"preventive_measures":       pq.Array(disease.PreventiveMeasures),
		"preventive_measures_hindi": pq.Array(disease.PreventiveMeasuresHindi),
		"image_urls":                pq.Array(disease.ImageURLs),
		"created_at":                disease.CreatedAt,
		"updated_at":                disease.UpdatedAt,
	}, nil
}

// Create creates a new disease
func (a *DiseaseAdapter) Create(ctx context.Context, disease *entities.Disease) error {
	now := time.Now()
	if disease.CreatedAt.IsZero() {
		disease.CreatedAt = now
	}
	disease.UpdatedAt = now

	record, err := diseaseRecord(disease)
	if err != nil {
		return apperrors.NewInternalError("failed to encode disease", err)
	}

	query, args, err := a.db.Insert("diseases").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create disease", err)
	}
	return nil
}

// Upsert creates a disease or overwrites an existing one with the same ID
func (a *DiseaseAdapter) Upsert(ctx context.Context, disease *entities.Disease) error {
	now := time.Now()
	if disease.CreatedAt.IsZero() {
		disease.CreatedAt = now
	}
	disease.UpdatedAt = now

	record, err := diseaseRecord(disease)
	if err != nil {
		return apperrors.NewInternalError("failed to encode disease", err)
	}

	update := goqu.Record{}
	for k, v := range record {
		if k != "id" && k != "created_at" {
			update[k] = v
		}
	}

	query, args, err := a.db.Insert("diseases").
		Rows(record).
		OnConflict(goqu.DoUpdate("id", update)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to upsert disease", err)
	}
	return nil
}

// GetByID retrieves a disease by ID
func (a *DiseaseAdapter) GetByID(ctx context.Context, id string) (*entities.Disease, error) {
	query, args, err := a.db.Select(diseaseColumns...).
		From("diseases").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	disease, err := scanDisease(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("disease with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get disease", err)
	}
	return disease, nil
}

// GetByIDs retrieves multiple diseases by their IDs
func (a *DiseaseAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Disease, error) {
	if len(ids) == 0 {
		return []*entities.Disease{}, nil
	}

	query, args, err := a.db.Select(diseaseColumns...).
		From("diseases").
		Where(goqu.Ex{"id": ids}).
		Order(goqu.I("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryDiseases(ctx, query, args)
}

// List retrieves diseases with filters, in stable catalog order
func (a *DiseaseAdapter) List(ctx context.Context, filter repositories.DiseaseFilter) ([]*entities.Disease, error) {
	ds := a.db.Select(diseaseColumns...).From("diseases")

	if filter.Type != "" {
		ds = ds.Where(goqu.Ex{"type": string(filter.Type)})
	}
	if filter.Severity != "" {
		ds = ds.Where(goqu.Ex{"severity": string(filter.Severity)})
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

	return a.queryDiseases(ctx, query, args)
}

// ListForCrop retrieves every disease cataloged against a crop
func (a *DiseaseAdapter) ListForCrop(ctx context.Context, cropID string) ([]*entities.Disease, error) {
	query, args, err := a.db.Select(diseaseColumns...).
		From("diseases").
		Where(goqu.L("? = ANY(affected_crops)", cropID)).
		Order(goqu.I("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryDiseases(ctx, query, args)
}

// Delete deletes a disease
func (a *DiseaseAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("diseases").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete disease", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("disease with id %s not found", id))
	}
	return nil
}

func (a *DiseaseAdapter) queryDiseases(ctx context.Context, query string, args []interface{}) ([]*entities.Disease, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query diseases", err)
	}
	defer rows.Close()

	diseases := []*entities.Disease{}
	for rows.Next() {
		disease, err := scanDisease(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan disease", err)
		}
		diseases = append(diseases, disease)
	}
	return diseases, rows.Err()
}

func scanDisease(row rowScanner) (*entities.Disease, error) {
	disease := &entities.Disease{}
	var symptomsJSON, organicJSON, chemicalJSON []byte

	err := row.Scan(
		&disease.ID,
		&disease.Name,
		&disease.NameHindi,
		&disease.Type,
		&disease.Severity,
		&disease.Description,
		&disease.DescriptionHindi,
		pq.Array(&disease.AffectedCrops),
		&symptomsJSON,
		pq.Array(&disease.Causes),
		&organicJSON,
		&chemicalJSON,
		pq.Array(&disease.PreventiveMeasures),
		pq.Array(&disease.PreventiveMeasuresHindi),
		pq.Array(&disease.ImageURLs),
		&disease.CreatedAt,
		&disease.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(symptomsJSON, &disease.Symptoms); err != nil {
		return nil, fmt.Errorf("unmarshal symptoms: %w", err)
	}
	if err := json.Unmarshal(organicJSON, &disease.OrganicTreatments); err != nil {
		return nil, fmt.Errorf("unmarshal organic treatments: %w", err)
	}
	if err := json.Unmarshal(chemicalJSON, &disease.ChemicalTreatments); err != nil {
		return nil, fmt.Errorf("unmarshal chemical treatments: %w", err)
	}
	return disease, nil
}
