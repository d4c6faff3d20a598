package repositories

import (
	"context"

	"github.com/fasalrakshak/backend/internal/domain/entities"
)

// CropRepository defines the interface for crop catalog operations
type CropRepository interface {
	// Create creates a new crop
	Create(ctx context.Context, crop *entities.Crop) error

	// Upsert creates a crop or overwrites an existing one with the same ID
	Upsert(ctx context.Context, crop *entities.Crop) error

	// GetByID retrieves a crop by ID
	GetByID(ctx context.Context, id string) (*entities.Crop, error)

	// GetByIDs retrieves multiple crops by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*entities.Crop, error)

	// List retrieves crops with filters, in stable catalog order
	List(ctx context.Context, filter CropFilter) ([]*entities.Crop, error)

	// Delete deletes a crop
	Delete(ctx context.Context, id string) error
}

// CropFilter defines filters for listing crops
type CropFilter struct {
	Category entities.CropCategory
	Season   entities.CropSeason
	Region   entities.Region
	Limit    int
	Offset   int
}

// DiseaseRepository defines the interface for disease catalog operations
type DiseaseRepository interface {
	// Create creates a new disease
	Create(ctx context.Context, disease *entities.Disease) error

	// Upsert creates a disease or overwrites an existing one with the same ID
	Upsert(ctx context.Context, disease *entities.Disease) error

	// GetByID retrieves a disease by ID
	GetByID(ctx context.Context, id string) (*entities.Disease, error)

	// GetByIDs retrieves multiple diseases by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*entities.Disease, error)

	// List retrieves diseases with filters, in stable catalog order
	List(ctx context.Context, filter DiseaseFilter) ([]*entities.Disease, error)

	// ListForCrop retrieves every disease cataloged against a crop
	ListForCrop(ctx context.Context, cropID string) ([]*entities.Disease, error)

	// Delete deletes a disease
	Delete(ctx context.Context, id string) error
}

// DiseaseFilter defines filters for listing diseases
type DiseaseFilter struct {
	Type     entities.DiseaseType
	Severity entities.DiseaseSeverity
	Limit    int
	Offset   int
}

// SymptomRepository defines the interface for symptom catalog operations
type SymptomRepository interface {
	// Create creates a new symptom
	Create(ctx context.Context, symptom *entities.Symptom) error

	// Upsert creates a symptom or overwrites an existing one with the same ID
	Upsert(ctx context.Context, symptom *entities.Symptom) error

	// GetByID retrieves a symptom by ID
	GetByID(ctx context.Context, id string) (*entities.Symptom, error)

	// GetByIDs retrieves multiple symptoms by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*entities.Symptom, error)

	// List retrieves symptoms, optionally filtered by affected plant part
	List(ctx context.Context, filter SymptomFilter) ([]*entities.Symptom, error)

	// Delete deletes a symptom
	Delete(ctx context.Context, id string) error
}

// SymptomFilter defines filters for listing symptoms
type SymptomFilter struct {
	AffectedPart entities.PlantPart
	Limit        int
	Offset       int
}
