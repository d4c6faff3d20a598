package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
)

// ReminderService defines the reminder operations used by the handler.
type ReminderService interface {
	Create(ctx context.Context, reminder *entities.CropReminder) (*entities.CropReminder, error)
	Get(ctx context.Context, id string) (*entities.CropReminder, error)
	List(ctx context.Context, filter repositories.ReminderFilter) ([]*entities.CropReminder, error)
	Complete(ctx context.Context, id string) (*entities.CropReminder, error)
	Update(ctx context.Context, reminder *entities.CropReminder) (*entities.CropReminder, error)
	Delete(ctx context.Context, id string) error
}

// ReminderHandler handles crop reminder HTTP requests
type ReminderHandler struct {
	service ReminderService
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(service ReminderService) *ReminderHandler {
	return &ReminderHandler{
		service: service,
	}
}

type reminderRequest struct {
	CropID      string    `json:"crop_id"`
	DiagnosisID string    `json:"diagnosis_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	TitleHindi  string    `json:"title_hindi"`
	Notes       string    `json:"notes"`
	DueAt       time.Time `json:"due_at"`
	Repeat      string    `json:"repeat"`
}

func (p reminderRequest) toEntity() *entities.CropReminder {
	return &entities.CropReminder{
		CropID:      p.CropID,
		DiagnosisID: p.DiagnosisID,
		Type:        entities.ReminderType(p.Type),
		Title:       p.Title,
		TitleHindi:  p.TitleHindi,
		Notes:       p.Notes,
		DueAt:       p.DueAt,
		Repeat:      entities.ReminderRepeat(p.Repeat),
	}
}

// CreateReminder handles POST /api/reminders
func (h *ReminderHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var payload reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	reminder, err := h.service.Create(r.Context(), payload.toEntity())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, reminder)
}

// GetReminder handles GET /api/reminders/:id
func (h *ReminderHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "reminder ID is required")
		return
	}

	reminder, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reminder)
}

// ListReminders handles GET /api/reminders
func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ReminderFilter{
		CropID: r.URL.Query().Get("crop_id"),
		Limit:  parseIntParam(r, "limit", 50),
		Offset: parseIntParam(r, "offset", 0),
	}

	if raw := r.URL.Query().Get("completed"); raw != "" {
		if completed, err := strconv.ParseBool(raw); err == nil {
			filter.Completed = &completed
		}
	}

	reminders, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list reminders")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reminders": reminders,
		"count":     len(reminders),
	})
}

// CompleteReminder handles POST /api/reminders/:id/complete
func (h *ReminderHandler) CompleteReminder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "reminder ID is required")
		return
	}

	reminder, err := h.service.Complete(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reminder)
}

// UpdateReminder handles PUT /api/reminders/:id
func (h *ReminderHandler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "reminder ID is required")
		return
	}

	var payload reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	reminder := payload.toEntity()
	reminder.ID = id

	updated, err := h.service.Update(r.Context(), reminder)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteReminder handles DELETE /api/reminders/:id
func (h *ReminderHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "reminder ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"status": "deleted",
		"id":     id,
	})
}
