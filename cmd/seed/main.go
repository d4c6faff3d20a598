package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/fasalrakshak/backend/internal/adapters/database"
	"github.com/fasalrakshak/backend/internal/adapters/search"
	"github.com/fasalrakshak/backend/internal/application/services"
	"github.com/fasalrakshak/backend/internal/catalog"
	"github.com/fasalrakshak/backend/internal/infrastructure/clients/postgres"
	"github.com/fasalrakshak/backend/internal/infrastructure/clients/typesense"
	"github.com/fasalrakshak/backend/internal/infrastructure/observability"
	"github.com/fasalrakshak/backend/pkg/config"
)

// Seeds the database (and the search index, when Typesense is reachable)
// with the bundled crop, disease and symptom catalog.
func main() {
	var schemaFile string
	flag.StringVar(&schemaFile, "schema", "", "path to a schema SQL file to apply before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	observability.InitLogger(cfg.OTEL.ServiceName)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pgClient.Close()

	ctx := context.Background()

	if schemaFile != "" {
		ddl, err := os.ReadFile(schemaFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", schemaFile).Msg("Failed to read schema file")
		}
		if _, err := pgClient.DB().ExecContext(ctx, string(ddl)); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply schema")
		}
		log.Info().Str("file", schemaFile).Msg("Schema applied")
	}

	var searcher services.DiseaseSearcher
	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Warn().Err(err).Msg("Typesense unavailable, skipping search indexing")
	} else {
		adapter := search.NewTypesenseAdapter(tsClient)
		if err := adapter.InitSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to init Typesense schema")
		} else {
			searcher = adapter
		}
	}

	catalogService := services.NewCatalogService(
		database.NewCropAdapter(pgClient),
		database.NewDiseaseAdapter(pgClient),
		database.NewSymptomAdapter(pgClient),
		searcher,
		nil,
	)

	crops := catalog.DefaultCrops()
	diseases := catalog.DefaultDiseases()
	symptoms := catalog.DefaultSymptoms()

	if err := catalogService.Sync(ctx, crops, diseases, symptoms); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	log.Info().
		Int("crops", len(crops)).
		Int("diseases", len(diseases)).
		Int("symptoms", len(symptoms)).
		Msg("Catalog seeded")
}
