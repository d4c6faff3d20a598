package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/providers"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

// DiseaseSearcher is the search-index port used for free-text disease
// lookup. The catalog falls back to the database when no index is wired.
type DiseaseSearcher interface {
	// Index adds or replaces a disease document in the index
	Index(ctx context.Context, disease *entities.Disease) error

	// Search returns disease IDs ranked by relevance
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// CatalogService serves the crop, disease and symptom reference data and
// keeps it in sync with the bundled defaults.
type CatalogService struct {
	crops    repositories.CropRepository
	diseases repositories.DiseaseRepository
	symptoms repositories.SymptomRepository
	searcher DiseaseSearcher
	eventBus providers.EventBus
}

func NewCatalogService(
	crops repositories.CropRepository,
	diseases repositories.DiseaseRepository,
	symptoms repositories.SymptomRepository,
	searcher DiseaseSearcher,
	eventBus providers.EventBus,
) *CatalogService {
	return &CatalogService{
		crops:    crops,
		diseases: diseases,
		symptoms: symptoms,
		searcher: searcher,
		eventBus: eventBus,
	}
}

// ListCrops retrieves crops with optional filters.
func (s *CatalogService) ListCrops(ctx context.Context, filter repositories.CropFilter) ([]*entities.Crop, error) {
	return s.crops.List(ctx, filter)
}

// GetCrop retrieves a crop by ID.
func (s *CatalogService) GetCrop(ctx context.Context, id string) (*entities.Crop, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("id is required")
	}
	return s.crops.GetByID(ctx, id)
}

// ListDiseasesForCrop retrieves every disease cataloged against a crop.
// The crop must exist.
func (s *CatalogService) ListDiseasesForCrop(ctx context.Context, cropID string) ([]*entities.Disease, error) {
	if _, err := s.crops.GetByID(ctx, cropID); err != nil {
		return nil, err
	}
	return s.diseases.ListForCrop(ctx, cropID)
}

// ListDiseases retrieves diseases with optional filters.
func (s *CatalogService) ListDiseases(ctx context.Context, filter repositories.DiseaseFilter) ([]*entities.Disease, error) {
	return s.diseases.List(ctx, filter)
}

// GetDisease retrieves a disease by ID.
func (s *CatalogService) GetDisease(ctx context.Context, id string) (*entities.Disease, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("id is required")
	}
	return s.diseases.GetByID(ctx, id)
}

// SearchDiseases runs a free-text search over the disease index and
// hydrates the hits from the database. Without an index it degrades to a
// plain catalog listing.
func (s *CatalogService) SearchDiseases(ctx context.Context, query string, limit int) ([]*entities.Disease, error) {
	if query == "" {
		return nil, apperrors.NewValidationError("query is required")
	}
	if limit <= 0 {
		limit = 20
	}

	if s.searcher == nil {
		return s.diseases.List(ctx, repositories.DiseaseFilter{Limit: limit})
	}

	ids, err := s.searcher.Search(ctx, query, limit)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("Disease search index unavailable, falling back to listing")
		return s.diseases.List(ctx, repositories.DiseaseFilter{Limit: limit})
	}
	if len(ids) == 0 {
		return []*entities.Disease{}, nil
	}
	return s.diseases.GetByIDs(ctx, ids)
}

// ListSymptoms retrieves symptoms, optionally filtered by plant part.
func (s *CatalogService) ListSymptoms(ctx context.Context, filter repositories.SymptomFilter) ([]*entities.Symptom, error) {
	return s.symptoms.List(ctx, filter)
}

// Sync overwrites the stored catalog with the given reference data,
// reindexes diseases for search and announces the sync on the bus.
// Entries are upserted by ID so a re-sync is idempotent.
func (s *CatalogService) Sync(ctx context.Context, crops []*entities.Crop, diseases []*entities.Disease, symptoms []*entities.Symptom) error {
	for _, crop := range crops {
		if err := s.crops.Upsert(ctx, crop); err != nil {
			return apperrors.NewInternalError("failed to sync crop "+crop.ID, err)
		}
	}
	for _, symptom := range symptoms {
		if err := s.symptoms.Upsert(ctx, symptom); err != nil {
			return apperrors.NewInternalError("failed to sync symptom "+symptom.ID, err)
		}
	}
	for _, disease := range diseases {
		if err := s.diseases.Upsert(ctx, disease); err != nil {
			return apperrors.NewInternalError("failed to sync disease "+disease.ID, err)
		}
		if s.searcher != nil {
			if err := s.searcher.Index(ctx, disease); err != nil {
				log.Warn().Err(err).Str("disease_id", disease.ID).Msg("Failed to index disease for search")
			}
		}
	}

	if s.eventBus != nil {
		event := &entities.DiagnosisEvent{
			ID:         uuid.New().String(),
			Type:       entities.EventCatalogSynced,
			OccurredAt: time.Now(),
		}
		if err := s.eventBus.Publish(ctx, providers.EventChannelCatalog, event); err != nil {
			log.Warn().Err(err).Msg("Failed to publish catalog sync event")
		}
	}

	log.Info().
		Int("crops", len(crops)).
		Int("diseases", len(diseases)).
		Int("symptoms", len(symptoms)).
		Msg("Catalog synced")
	return nil
}
