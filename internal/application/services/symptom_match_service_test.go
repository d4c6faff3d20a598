package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fasalrakshak/backend/internal/application/services"
	"github.com/fasalrakshak/backend/internal/domain/entities"
)

func symptoms(ids ...string) []entities.Symptom {
	out := make([]entities.Symptom, len(ids))
	for i, id := range ids {
		out[i] = entities.Symptom{ID: id, Description: "description of " + id}
	}
	return out
}

func TestSymptomMatch_OverlapFraction(t *testing.T) {
	crop := &entities.Crop{ID: "rice"}
	disease := &entities.Disease{
		ID:            "blast",
		Name:          "Rice Blast",
		Severity:      entities.SeverityHigh,
		AffectedCrops: []string{"rice"},
		Symptoms:      symptoms("s1", "s2", "s3", "s4"),
	}

	svc := services.NewSymptomMatchService(0.3)
	conditions := svc.Match(crop, []*entities.Disease{disease}, []string{"s1", "s2", "unknown"})

	require.Len(t, conditions, 1)
	assert.Equal(t, "blast", conditions[0].DiseaseID)
	assert.InDelta(t, 0.5, conditions[0].Confidence, 1e-9)
	assert.Equal(t, entities.SeverityHigh, conditions[0].Severity)
	assert.Equal(t, "description of s1", conditions[0].Description)
}

func TestSymptomMatch_ThresholdIsStrict(t *testing.T) {
	crop := &entities.Crop{ID: "rice"}
	// 3 of 10 symptoms observed lands exactly on the threshold and must
	// be excluded.
	disease := &entities.Disease{
		ID:            "d1",
		AffectedCrops: []string{"rice"},
		Symptoms:      symptoms("s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10"),
	}

	svc := services.NewSymptomMatchService(0.3)
	conditions := svc.Match(crop, []*entities.Disease{disease}, []string{"s1", "s2", "s3"})
	assert.Empty(t, conditions)

	conditions = svc.Match(crop, []*entities.Disease{disease}, []string{"s1", "s2", "s3", "s4"})
	assert.Len(t, conditions, 1)
}

func TestSymptomMatch_FiltersByCrop(t *testing.T) {
	crop := &entities.Crop{ID: "wheat"}
	riceOnly := &entities.Disease{
		ID:            "blast",
		AffectedCrops: []string{"rice"},
		Symptoms:      symptoms("s1"),
	}
	both := &entities.Disease{
		ID:            "rust",
		AffectedCrops: []string{"rice", "wheat"},
		Symptoms:      symptoms("s1"),
	}

	svc := services.NewSymptomMatchService(0.3)
	conditions := svc.Match(crop, []*entities.Disease{riceOnly, both}, []string{"s1"})

	require.Len(t, conditions, 1)
	assert.Equal(t, "rust", conditions[0].DiseaseID)
}

func TestSymptomMatch_SkipsDiseasesWithoutSymptoms(t *testing.T) {
	crop := &entities.Crop{ID: "rice"}
	empty := &entities.Disease{ID: "d1", AffectedCrops: []string{"rice"}}

	svc := services.NewSymptomMatchService(0.3)
	assert.Empty(t, svc.Match(crop, []*entities.Disease{empty}, []string{"s1"}))
}

func TestSymptomMatch_SortsByConfidenceDescStable(t *testing.T) {
	crop := &entities.Crop{ID: "rice"}
	half := &entities.Disease{
		ID:            "half",
		AffectedCrops: []string{"rice"},
		Symptoms:      symptoms("s1", "s9"),
	}
	fullA := &entities.Disease{
		ID:            "full-a",
		AffectedCrops: []string{"rice"},
		Symptoms:      symptoms("s1"),
	}
	fullB := &entities.Disease{
		ID:            "full-b",
		AffectedCrops: []string{"rice"},
		Symptoms:      symptoms("s1"),
	}

	svc := services.NewSymptomMatchService(0.3)
	conditions := svc.Match(crop, []*entities.Disease{half, fullA, fullB}, []string{"s1"})

	require.Len(t, conditions, 3)
	assert.Equal(t, "full-a", conditions[0].DiseaseID)
	assert.Equal(t, "full-b", conditions[1].DiseaseID)
	assert.Equal(t, "half", conditions[2].DiseaseID)
}

func TestSymptomMatch_NoObservedSymptoms(t *testing.T) {
	crop := &entities.Crop{ID: "rice"}
	disease := &entities.Disease{
		ID:            "d1",
		AffectedCrops: []string{"rice"},
		Symptoms:      symptoms("s1", "s2"),
	}

	svc := services.NewSymptomMatchService(0.3)
	assert.Empty(t, svc.Match(crop, []*entities.Disease{disease}, nil))
}
