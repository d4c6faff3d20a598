package routes

import (
	"net/http"

	"github.com/fasalrakshak/backend/internal/api/handlers"
	"github.com/fasalrakshak/backend/internal/api/middleware"
	"github.com/fasalrakshak/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	diagnosisHandler *handlers.DiagnosisHandler
	catalogHandler   *handlers.CatalogHandler
	reminderHandler  *handlers.ReminderHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	diagnosisHandler *handlers.DiagnosisHandler,
	catalogHandler *handlers.CatalogHandler,
	reminderHandler *handlers.ReminderHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		diagnosisHandler: diagnosisHandler,
		catalogHandler:   catalogHandler,
		reminderHandler:  reminderHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Diagnosis endpoints
	r.mux.HandleFunc("POST /api/diagnose/symptoms", r.diagnosisHandler.DiagnoseBySymptoms)
	r.mux.HandleFunc("POST /api/diagnose/classifications", r.diagnosisHandler.DiagnoseByClassifications)
	r.mux.HandleFunc("POST /api/diagnose/image", r.diagnosisHandler.DiagnoseImage)

	// Diagnosis history endpoints
	r.mux.HandleFunc("GET /api/history", r.diagnosisHandler.GetHistory)
	r.mux.HandleFunc("GET /api/history/{id}", r.diagnosisHandler.GetHistoryEntry)
	r.mux.HandleFunc("DELETE /api/history/{id}", r.diagnosisHandler.DeleteHistoryEntry)

	// Crop catalog endpoints
	r.mux.HandleFunc("GET /api/crops", r.catalogHandler.ListCrops)
	r.mux.HandleFunc("GET /api/crops/{id}", r.catalogHandler.GetCrop)
	r.mux.HandleFunc("GET /api/crops/{id}/diseases", r.catalogHandler.ListCropDiseases)

	// Disease catalog endpoints
	r.mux.HandleFunc("GET /api/diseases", r.catalogHandler.ListDiseases)
	r.mux.HandleFunc("GET /api/diseases/search", r.catalogHandler.SearchDiseases)
	r.mux.HandleFunc("GET /api/diseases/{id}", r.catalogHandler.GetDisease)

	// Symptom catalog endpoints
	r.mux.HandleFunc("GET /api/symptoms", r.catalogHandler.ListSymptoms)

	// Reminder endpoints
	r.mux.HandleFunc("POST /api/reminders", r.reminderHandler.CreateReminder)
	r.mux.HandleFunc("GET /api/reminders", r.reminderHandler.ListReminders)
	r.mux.HandleFunc("GET /api/reminders/{id}", r.reminderHandler.GetReminder)
	r.mux.HandleFunc("PUT /api/reminders/{id}", r.reminderHandler.UpdateReminder)
	r.mux.HandleFunc("POST /api/reminders/{id}/complete", r.reminderHandler.CompleteReminder)
	r.mux.HandleFunc("DELETE /api/reminders/{id}", r.reminderHandler.DeleteReminder)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
