package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/fasalrakshak/backend/internal/application/services"
	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
)

const maxImageUploadBytes = 10 << 20

// DiagnosisService defines the diagnosis operations used by the handler.
type DiagnosisService interface {
	DiagnoseBySymptoms(ctx context.Context, cropID string, symptomIDs []string) (*entities.DiagnosisResult, error)
	DiagnoseByClassifications(ctx context.Context, cropID string, classifications []services.Classification) (*entities.DiagnosisResult, error)
	DiagnoseImage(ctx context.Context, image io.Reader, filename, cropName, language string) (*entities.DiagnosisResult, error)
	GetHistory(ctx context.Context, filter repositories.HistoryFilter) ([]*entities.DiagnosisResult, error)
	GetHistoryEntry(ctx context.Context, id string) (*entities.DiagnosisResult, error)
	DeleteHistoryEntry(ctx context.Context, id string) error
}

// DiagnosisHandler handles diagnosis-related HTTP requests
type DiagnosisHandler struct {
	service DiagnosisService
}

// NewDiagnosisHandler creates a new diagnosis handler
func NewDiagnosisHandler(service DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{
		service: service,
	}
}

type symptomDiagnosisRequest struct {
	CropID     string   `json:"crop_id"`
	SymptomIDs []string `json:"symptom_ids"`
}

// DiagnoseBySymptoms handles POST /api/diagnose/symptoms
func (h *DiagnosisHandler) DiagnoseBySymptoms(w http.ResponseWriter, r *http.Request) {
	var payload symptomDiagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.service.DiagnoseBySymptoms(r.Context(), payload.CropID, payload.SymptomIDs)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

type classificationRequest struct {
	CropID          string `json:"crop_id"`
	Classifications []struct {
		Identifier string  `json:"identifier"`
		Confidence float64 `json:"confidence"`
	} `json:"classifications"`
}

// DiagnoseByClassifications handles POST /api/diagnose/classifications
func (h *DiagnosisHandler) DiagnoseByClassifications(w http.ResponseWriter, r *http.Request) {
	var payload classificationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if len(payload.Classifications) == 0 {
		respondWithError(w, http.StatusBadRequest, "at least one classification is required")
		return
	}

	classifications := make([]services.Classification, 0, len(payload.Classifications))
	for _, c := range payload.Classifications {
		classifications = append(classifications, services.Classification{
			Identifier: c.Identifier,
			Confidence: c.Confidence,
		})
	}

	result, err := h.service.DiagnoseByClassifications(r.Context(), payload.CropID, classifications)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// DiagnoseImage handles POST /api/diagnose/image
func (h *DiagnosisHandler) DiagnoseImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageUploadBytes)
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart payload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	cropName := strings.TrimSpace(r.FormValue("crop_name"))
	language := strings.TrimSpace(r.FormValue("language"))
	if language == "" {
		language = requestLanguage(r)
	}

	result, err := h.service.DiagnoseImage(r.Context(), file, header.Filename, cropName, language)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// GetHistory handles GET /api/history
func (h *DiagnosisHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	filter := repositories.HistoryFilter{
		CropID: r.URL.Query().Get("crop_id"),
		Limit:  parseIntParam(r, "limit", 30),
		Offset: parseIntParam(r, "offset", 0),
	}

	results, err := h.service.GetHistory(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list diagnosis history")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

// GetHistoryEntry handles GET /api/history/:id
func (h *DiagnosisHandler) GetHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "history entry ID is required")
		return
	}

	result, err := h.service.GetHistoryEntry(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// DeleteHistoryEntry handles DELETE /api/history/:id
func (h *DiagnosisHandler) DeleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "history entry ID is required")
		return
	}

	if err := h.service.DeleteHistoryEntry(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"status": "deleted",
		"id":     id,
	})
}

func parseIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func requestLanguage(r *http.Request) string {
	accept := r.Header.Get("Accept-Language")
	if accept == "" {
		return ""
	}
	first := strings.Split(accept, ",")[0]
	return strings.TrimSpace(strings.Split(first, ";")[0])
}
