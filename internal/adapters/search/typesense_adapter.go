package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/fasalrakshak/backend/internal/application/services"
	"github.com/fasalrakshak/backend/internal/domain/entities"
	tsclient "github.com/fasalrakshak/backend/internal/infrastructure/clients/typesense"
)

const collectionName = "diseases"

// TypesenseAdapter implements free-text disease search using Typesense.
// Documents carry searchable text in both English and Hindi plus symptom
// names, so farmers can search by what they see.
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ services.DiseaseSearcher = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "name_hindi", Type: "string"},
			{Name: "type", Type: "string", Facet: pointer.True()},
			{Name: "severity", Type: "string", Facet: pointer.True()},
			{Name: "description", Type: "string"},
			{Name: "symptom_names", Type: "string[]", Optional: pointer.True()},
			{Name: "affected_crops", Type: "string[]", Facet: pointer.True(), Optional: pointer.True()},
			{Name: "updated_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("updated_at"),
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// Index adds or replaces a disease document in the index
func (a *TypesenseAdapter) Index(ctx context.Context, disease *entities.Disease) error {
	symptomNames := make([]string, 0, len(disease.Symptoms)*2)
	for _, s := range disease.Symptoms {
		symptomNames = append(symptomNames, s.Name)
		if s.NameHindi != "" {
			symptomNames = append(symptomNames, s.NameHindi)
		}
	}

	document := map[string]interface{}{
		"id":             disease.ID,
		"name":           disease.Name,
		"name_hindi":     disease.NameHindi,
		"type":           string(disease.Type),
		"severity":       string(disease.Severity),
		"description":    disease.Description,
		"symptom_names":  symptomNames,
		"affected_crops": disease.AffectedCrops,
		"updated_at":     disease.UpdatedAt.Unix(),
	}

	_, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index disease: %w", err)
	}
	return nil
}

// Delete removes a disease from the index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(collectionName).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete disease from index: %w", err)
	}
	return nil
}

// Search returns disease IDs ranked by relevance
func (a *TypesenseAdapter) Search(ctx context.Context, query string, limit int) ([]string, error) {
	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("name,name_hindi,symptom_names,description"),
		PerPage: pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search diseases: %w", err)
	}

	ids := []string{}
	if result.Hits == nil {
		return ids, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		doc := *hit.Document
		id, ok := doc["id"].(string)
		if !ok || strings.TrimSpace(id) == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
