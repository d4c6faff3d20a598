package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
)

// CatalogService defines the catalog operations used by the handler.
type CatalogService interface {
	ListCrops(ctx context.Context, filter repositories.CropFilter) ([]*entities.Crop, error)
	GetCrop(ctx context.Context, id string) (*entities.Crop, error)
	ListDiseasesForCrop(ctx context.Context, cropID string) ([]*entities.Disease, error)
	ListDiseases(ctx context.Context, filter repositories.DiseaseFilter) ([]*entities.Disease, error)
	GetDisease(ctx context.Context, id string) (*entities.Disease, error)
	SearchDiseases(ctx context.Context, query string, limit int) ([]*entities.Disease, error)
	ListSymptoms(ctx context.Context, filter repositories.SymptomFilter) ([]*entities.Symptom, error)
}

// CatalogHandler handles crop and disease catalog HTTP requests
type CatalogHandler struct {
	service CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// ListCrops handles GET /api/crops
func (h *CatalogHandler) ListCrops(w http.ResponseWriter, r *http.Request) {
	filter := repositories.CropFilter{
		Category: entities.CropCategory(r.URL.Query().Get("category")),
		Season:   entities.CropSeason(r.URL.Query().Get("season")),
		Region:   entities.Region(r.URL.Query().Get("region")),
		Limit:    parseIntParam(r, "limit", 50),
		Offset:   parseIntParam(r, "offset", 0),
	}

	crops, err := h.service.ListCrops(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list crops")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"crops": crops,
		"count": len(crops),
	})
}

// GetCrop handles GET /api/crops/:id
func (h *CatalogHandler) GetCrop(w http.ResponseWriter, r *http.Request) {
	cropID := r.PathValue("id")
	if cropID == "" {
		respondWithError(w, http.StatusBadRequest, "crop ID is required")
		return
	}

	crop, err := h.service.GetCrop(r.Context(), cropID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, crop)
}

// ListCropDiseases handles GET /api/crops/:id/diseases
func (h *CatalogHandler) ListCropDiseases(w http.ResponseWriter, r *http.Request) {
	cropID := r.PathValue("id")
	if cropID == "" {
		respondWithError(w, http.StatusBadRequest, "crop ID is required")
		return
	}

	diseases, err := h.service.ListDiseasesForCrop(r.Context(), cropID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"diseases": diseases,
		"count":    len(diseases),
	})
}

// ListDiseases handles GET /api/diseases
func (h *CatalogHandler) ListDiseases(w http.ResponseWriter, r *http.Request) {
	filter := repositories.DiseaseFilter{
		Type:     entities.DiseaseType(r.URL.Query().Get("type")),
		Severity: entities.DiseaseSeverity(r.URL.Query().Get("severity")),
		Limit:    parseIntParam(r, "limit", 50),
		Offset:   parseIntParam(r, "offset", 0),
	}

	diseases, err := h.service.ListDiseases(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list diseases")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"diseases": diseases,
		"count":    len(diseases),
	})
}

// GetDisease handles GET /api/diseases/:id
func (h *CatalogHandler) GetDisease(w http.ResponseWriter, r *http.Request) {
	diseaseID := r.PathValue("id")
	if diseaseID == "" {
		respondWithError(w, http.StatusBadRequest, "disease ID is required")
		return
	}

	disease, err := h.service.GetDisease(r.Context(), diseaseID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, disease)
}

// SearchDiseases handles GET /api/diseases/search
func (h *CatalogHandler) SearchDiseases(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "search query is required")
		return
	}

	diseases, err := h.service.SearchDiseases(r.Context(), query, parseIntParam(r, "limit", 20))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to search diseases")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"diseases": diseases,
		"count":    len(diseases),
		"query":    query,
	})
}

// ListSymptoms handles GET /api/symptoms
func (h *CatalogHandler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	filter := repositories.SymptomFilter{
		AffectedPart: entities.PlantPart(r.URL.Query().Get("part")),
		Limit:        parseIntParam(r, "limit", 100),
		Offset:       parseIntParam(r, "offset", 0),
	}

	symptoms, err := h.service.ListSymptoms(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list symptoms")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"symptoms": symptoms,
		"count":    len(symptoms),
	})
}
