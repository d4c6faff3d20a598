package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fasalrakshak/backend/internal/adapters/cache"
	"github.com/fasalrakshak/backend/internal/adapters/database"
	"github.com/fasalrakshak/backend/internal/adapters/events"
	"github.com/fasalrakshak/backend/internal/adapters/search"
	"github.com/fasalrakshak/backend/internal/api/handlers"
	"github.com/fasalrakshak/backend/internal/api/middleware"
	"github.com/fasalrakshak/backend/internal/api/routes"
	"github.com/fasalrakshak/backend/internal/application/services"
	"github.com/fasalrakshak/backend/internal/domain/providers"
	"github.com/fasalrakshak/backend/internal/infrastructure/clients/diagnosisapi"
	"github.com/fasalrakshak/backend/internal/infrastructure/clients/postgres"
	"github.com/fasalrakshak/backend/internal/infrastructure/clients/redis"
	"github.com/fasalrakshak/backend/internal/infrastructure/clients/typesense"
	"github.com/fasalrakshak/backend/internal/infrastructure/observability"
	"github.com/fasalrakshak/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Redis client, continuing without caching")
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized successfully")
	}

	// Initialize Typesense client
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize Typesense client, disease search will use the database")
		typesenseClient = nil
	} else {
		log.Info().Msg("Typesense client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize event bus for real-time updates
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Info().Msg("Event bus initialized successfully")
	} else {
		log.Info().Msg("Event bus disabled (Redis not available)")
	}

	// Initialize adapters
	cropAdapter := database.NewCropAdapter(pgClient)
	symptomAdapter := database.NewSymptomAdapter(pgClient)
	historyAdapter := database.NewHistoryAdapter(pgClient, cfg.Diagnosis.HistoryLimit)
	reminderAdapter := database.NewReminderAdapter(pgClient)

	// Wrap disease reads with caching if Redis is available
	diseaseAdapter := database.NewDiseaseAdapter(pgClient)
	if cacheProvider != nil {
		diseaseAdapter = database.NewCachedDiseaseAdapter(diseaseAdapter, cacheProvider)
		log.Info().Msg("Disease adapter wrapped with caching layer")
	}

	var searcher services.DiseaseSearcher
	if typesenseClient != nil {
		adapter := search.NewTypesenseAdapter(typesenseClient)
		if err := adapter.InitSchema(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to init Typesense schema")
		}
		searcher = adapter
	}

	// Initialize the remote diagnosis provider
	var remoteProvider providers.RemoteDiagnosisProvider
	if cfg.DiagnosisAPI.BaseURL == "" {
		log.Warn().Msg("DIAGNOSIS_API_BASE_URL is not set; image diagnosis disabled")
	} else {
		remoteProvider = diagnosisapi.NewClient(&cfg.DiagnosisAPI)
	}

	// Initialize services
	diagnosisService := services.NewDiagnosisService(
		cropAdapter,
		diseaseAdapter,
		historyAdapter,
		remoteProvider,
		eventBus,
		services.NewSymptomMatchService(cfg.Diagnosis.MatchThreshold),
		services.NewClassificationService(),
		services.NewRecommendationService(),
		services.NewRemoteNormalizerService(),
	)

	catalogService := services.NewCatalogService(
		cropAdapter,
		diseaseAdapter,
		symptomAdapter,
		searcher,
		eventBus,
	)

	reminderService := services.NewReminderService(reminderAdapter)

	// Initialize handlers
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	reminderHandler := handlers.NewReminderHandler(reminderService)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		log.Info().Msg("Cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		diagnosisHandler,
		catalogHandler,
		reminderHandler,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	// Close event bus
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing event bus")
		}
	}

	log.Info().Msg("Server stopped")
}
