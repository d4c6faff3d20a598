package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/providers"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
)

// CachedDiseaseAdapter wraps a DiseaseRepository with caching. The
// disease catalog changes only on sync, so TTLs are generous and writes
// invalidate the affected keys.
type CachedDiseaseAdapter struct {
	adapter repositories.DiseaseRepository
	cache   providers.CacheProvider
}

// NewCachedDiseaseAdapter creates a new cached disease adapter
func NewCachedDiseaseAdapter(adapter repositories.DiseaseRepository, cache providers.CacheProvider) repositories.DiseaseRepository {
	return &CachedDiseaseAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	diseaseByIDTTL    = 1800 // 30 minutes for single disease
	diseasesByCropTTL = 900  // 15 minutes for per-crop listings
)

func diseaseCacheKey(id string) string {
	return fmt.Sprintf("disease:%s", id)
}

func diseasesForCropCacheKey(cropID string) string {
	return fmt.Sprintf("diseases:crop:%s", cropID)
}

// GetByID retrieves a disease by ID with caching
func (a *CachedDiseaseAdapter) GetByID(ctx context.Context, id string) (*entities.Disease, error) {
	cacheKey := diseaseCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var disease entities.Disease
		if err := json.Unmarshal(cached, &disease); err == nil {
			return &disease, nil
		}
		log.Warn().Err(err).Str("disease_id", id).Msg("Failed to unmarshal cached disease")
	}

	disease, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(disease); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, diseaseByIDTTL); err != nil {
				log.Warn().Err(err).Str("disease_id", id).Msg("Failed to cache disease")
			}
		}
	}()

	return disease, nil
}

// ListForCrop retrieves diseases for a crop with caching
func (a *CachedDiseaseAdapter) ListForCrop(ctx context.Context, cropID string) ([]*entities.Disease, error) {
	cacheKey := diseasesForCropCacheKey(cropID)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var diseases []*entities.Disease
		if err := json.Unmarshal(cached, &diseases); err == nil {
			return diseases, nil
		}
	}

	diseases, err := a.adapter.ListForCrop(ctx, cropID)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(diseases); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, diseasesByCropTTL); err != nil {
				log.Warn().Err(err).Str("crop_id", cropID).Msg("Failed to cache crop diseases")
			}
		}
	}()

	return diseases, nil
}

// Create creates a disease, invalidating affected cache entries
func (a *CachedDiseaseAdapter) Create(ctx context.Context, disease *entities.Disease) error {
	if err := a.adapter.Create(ctx, disease); err != nil {
		return err
	}
	a.invalidate(ctx, disease)
	return nil
}

// Upsert upserts a disease, invalidating affected cache entries
func (a *CachedDiseaseAdapter) Upsert(ctx context.Context, disease *entities.Disease) error {
	if err := a.adapter.Upsert(ctx, disease); err != nil {
		return err
	}
	a.invalidate(ctx, disease)
	return nil
}

// GetByIDs passes through; multi-key reads hit the database directly
func (a *CachedDiseaseAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Disease, error) {
	return a.adapter.GetByIDs(ctx, ids)
}

// List passes through; filtered listings are not cached
func (a *CachedDiseaseAdapter) List(ctx context.Context, filter repositories.DiseaseFilter) ([]*entities.Disease, error) {
	return a.adapter.List(ctx, filter)
}

// Delete deletes a disease and drops its cache entry
func (a *CachedDiseaseAdapter) Delete(ctx context.Context, id string) error {
	if err := a.adapter.Delete(ctx, id); err != nil {
		return err
	}
	if err := a.cache.Delete(ctx, diseaseCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("disease_id", id).Msg("Failed to invalidate disease cache")
	}
	return nil
}

func (a *CachedDiseaseAdapter) invalidate(ctx context.Context, disease *entities.Disease) {
	if err := a.cache.Delete(ctx, diseaseCacheKey(disease.ID)); err != nil {
		log.Warn().Err(err).Str("disease_id", disease.ID).Msg("Failed to invalidate disease cache")
	}
	for _, cropID := range disease.AffectedCrops {
		if err := a.cache.Delete(ctx, diseasesForCropCacheKey(cropID)); err != nil {
			log.Warn().Err(err).Str("crop_id", cropID).Msg("Failed to invalidate crop diseases cache")
		}
	}
}
