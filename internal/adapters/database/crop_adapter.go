package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
	"github.com/fasalrakshak/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

// CropAdapter implements CropRepository
type CropAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewCropAdapter creates a new crop adapter
func NewCropAdapter(client *postgres.Client) repositories.CropRepository {
	return &CropAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

var cropColumns = []interface{}{
	"id", "name", "name_hindi", "scientific_name", "category", "seasons",
	"regions", "image_url", "description", "description_hindi",
	"common_diseases", "common_pests", "water_requirement", "soil_types",
	"created_at", "updated_at",
}

func cropRecord(crop *entities.Crop) goqu.Record {
	return goqu.Record{
		"id":                crop.ID,
		"name":              crop.Name,
		"name_hindi":        crop.NameHindi,
		"scientific_name":   crop.ScientificName,
		"category":          string(crop.Category),
		"seasons":           pq.Array(seasonsToStrings(crop.Seasons)),
		"regions":           pq.Array(regionsToStrings(crop.Regions)),
		"image_url":         sql.NullString{String: crop.ImageURL, Valid: crop.ImageURL != ""},
		"description":       crop.Description,
		"description_hindi": crop.DescriptionHindi,
		"common_diseases":   pq.Array(crop.CommonDiseases),
		"common_pests":      pq.Array(crop.CommonPests),
		"water_requirement": string(crop.WaterRequirement),
		"soil_types":        pq.Array(soilsToStrings(crop.SoilTypes)),
		"created_at":        crop.CreatedAt,
		"updated_at":        crop.UpdatedAt,
	}
}

// Create creates a new crop
func (a *CropAdapter) Create(ctx context.Context, crop *entities.Crop) error {
	now := time.Now()
	if crop.CreatedAt.IsZero() {
		crop.CreatedAt = now
	}
	crop.UpdatedAt = now

	query, args, err := a.db.Insert("crops").Rows(cropRecord(crop)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create crop", err)
	}
	return nil
}

// Upsert creates a crop or overwrites an existing one with the same ID
func (a *CropAdapter) Upsert(ctx context.Context, crop *entities.Crop) error {
	now := time.Now()
	if crop.CreatedAt.IsZero() {
		crop.CreatedAt = now
	}
	crop.UpdatedAt = now

	record := cropRecord(crop)
	update := goqu.Record{}
	for k, v := range record {
		if k != "id" && k != "created_at" {
			update[k] = v
		}
	}

	query, args, err := a.db.Insert("crops").
		Rows(record).
		OnConflict(goqu.DoUpdate("id", update)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to upsert crop", err)
	}
	return nil
}

// GetByID retrieves a crop by ID
func (a *CropAdapter) GetByID(ctx context.Context, id string) (*entities.Crop, error) {
	query, args, err := a.db.Select(cropColumns...).
		From("crops").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	crop, err := scanCrop(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("crop with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get crop", err)
	}
	return crop, nil
}

// GetByIDs retrieves multiple crops by their IDs
func (a *CropAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Crop, error) {
	if len(ids) == 0 {
		return []*entities.Crop{}, nil
	}

	query, args, err := a.db.Select(cropColumns...).
		From("crops").
		Where(goqu.Ex{"id": ids}).
		Order(goqu.I("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	return a.queryCrops(ctx, query, args)
}

// List retrieves crops with filters, in stable catalog order
func (a *CropAdapter) List(ctx context.Context, filter repositories.CropFilter) ([]*entities.Crop, error) {
	ds := a.db.Select(cropColumns...).From("crops")

	if filter.Category != "" {
		ds = ds.Where(goqu.Ex{"category": string(filter.Category)})
	}
	if filter.Season != "" {
		ds = ds.Where(goqu.L("? = ANY(seasons)", string(filter.Season)))
	}
	if filter.Region != "" {
		ds = ds.Where(goqu.L("? = ANY(regions)", string(filter.Region)))
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

	return a.queryCrops(ctx, query, args)
}

// Delete deletes a crop
func (a *CropAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("crops").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete crop", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("crop with id %s not found", id))
	}
	return nil
}

func (a *CropAdapter) queryCrops(ctx context.Context, query string, args []interface{}) ([]*entities.Crop, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query crops", err)
	}
	defer rows.Close()

	crops := []*entities.Crop{}
	for rows.Next() {
		crop, err := scanCrop(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan crop", err)
		}
		crops = append(crops, crop)
	}
	return crops, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCrop(row rowScanner) (*entities.Crop, error) {
	crop := &entities.Crop{}
	var imageURL sql.NullString
	var seasons, regions, soilTypes []string

	err := row.Scan(
		&crop.ID,
		&crop.Name,
		&crop.NameHindi,
		&crop.ScientificName,
		&crop.Category,
		pq.Array(&seasons),
		pq.Array(&regions),
		&imageURL,
		&crop.Description,
		&crop.DescriptionHindi,
		pq.Array(&crop.CommonDiseases),
		pq.Array(&crop.CommonPests),
		&crop.WaterRequirement,
		pq.Array(&soilTypes),
		&crop.CreatedAt,
		&crop.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	crop.ImageURL = imageURL.String
	crop.Seasons = stringsToSeasons(seasons)
	crop.Regions = stringsToRegions(regions)
	crop.SoilTypes = stringsToSoils(soilTypes)
	return crop, nil
}

func seasonsToStrings(in []entities.CropSeason) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func stringsToSeasons(in []string) []entities.CropSeason {
	out := make([]entities.CropSeason, len(in))
	for i, v := range in {
		out[i] = entities.CropSeason(v)
	}
	return out
}

func regionsToStrings(in []entities.Region) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func stringsToRegions(in []string) []entities.Region {
	out := make([]entities.Region, len(in))
	for i, v := range in {
		out[i] = entities.Region(v)
	}
	return out
}

func soilsToStrings(in []entities.SoilType) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func stringsToSoils(in []string) []entities.SoilType {
	out := make([]entities.SoilType, len(in))
	for i, v := range in {
		out[i] = entities.SoilType(v)
	}
	return out
}
