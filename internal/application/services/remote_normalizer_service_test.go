package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fasalrakshak/backend/internal/application/services"
	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/providers"
)

func samplePayload() *providers.RemoteDiagnosisPayload {
	return &providers.RemoteDiagnosisPayload{
		DiagnosisID:      "remote-1",
		DiseaseName:      "Late Blight",
		DiseaseNameLocal: "पछेती झुलसा",
		Confidence:       87.5,
		Severity:         "severe",
		AffectedParts:    []string{"leaves", "stem"},
		Description:      "Dark lesions on foliage",
		Causes:           []string{"Phytophthora infestans"},
		OrganicTreatments: []providers.RemoteTreatment{
			{Name: "Copper spray", Description: "Spray copper solution", Method: "Foliar spray", Frequency: "Weekly"},
		},
		ChemicalTreatments: []providers.RemoteTreatment{
			{Name: "Metalaxyl", Description: "Systemic fungicide", Precautions: []string{"Wear gloves"}},
		},
		PreventiveMeasures: []string{"Rotate crops", "Avoid overhead irrigation"},
		Timestamp:          "2026-03-15T10:00:00Z",
	}
}

func TestNormalize_ConfidenceAndSeverity(t *testing.T) {
	svc := services.NewRemoteNormalizerServiceWithClock(fixedClock)

	result := svc.Normalize(samplePayload(), nil)

	require.Len(t, result.Conditions, 1)
	c := result.Conditions[0]
	assert.Equal(t, "Late Blight", c.Name)
	assert.Equal(t, "पछेती झुलसा", c.NameHindi)
	assert.InDelta(t, 0.875, c.Confidence, 1e-9)
	assert.Equal(t, entities.SeverityHigh, c.Severity)
}

func TestNormalize_ConfidenceClamped(t *testing.T) {
	svc := services.NewRemoteNormalizerServiceWithClock(fixedClock)

	payload := samplePayload()
	payload.Confidence = 130
	result := svc.Normalize(payload, nil)
	assert.Equal(t, 1.0, result.Conditions[0].Confidence)

	payload.Confidence = -5
	result = svc.Normalize(payload, nil)
	assert.Equal(t, 0.0, result.Conditions[0].Confidence)
}

func TestNormalize_HealthScoreUsesRemoteWeights(t *testing.T) {
	svc := services.NewRemoteNormalizerServiceWithClock(fixedClock)

	// high severity weighs 50 on the remote scale, scaled by 0.875
	result := svc.Normalize(samplePayload(), nil)
	assert.InDelta(t, 100-50*0.875, result.HealthScore, 1e-9)
}

func TestNormalize_RecommendationsOrganicFirstSequential(t *testing.T) {
	svc := services.NewRemoteNormalizerServiceWithClock(fixedClock)

	result := svc.Normalize(samplePayload(), nil)

	require.Len(t, result.Recommendations, 4)
	assert.Equal(t, "Apply Copper spray", result.Recommendations[0].Title)
	assert.Equal(t, entities.ActionImmediate, result.Recommendations[0].ActionType)
	assert.Equal(t, "Apply Metalaxyl", result.Recommendations[1].Title)
	assert.Equal(t, entities.ActionScheduled, result.Recommendations[1].ActionType)
	assert.Equal(t, "Prevent spread", result.Recommendations[2].Title)
	assert.Equal(t, entities.ActionPreventive, result.Recommendations[2].ActionType)
	assert.Equal(t, "Rotate crops", result.Recommendations[2].Description)
	assert.Equal(t, entities.ActionPreventive, result.Recommendations[3].ActionType)

	for i, rec := range result.Recommendations {
		assert.Equal(t, i+1, rec.Priority)
	}
}

func TestNormalize_AffectedPartsBecomeApproximateAreas(t *testing.T) {
	svc := services.NewRemoteNormalizerServiceWithClock(fixedClock)

	result := svc.Normalize(samplePayload(), nil)

	require.Len(t, result.AffectedAreas, 2)
	assert.Equal(t, entities.PartLeaf, result.AffectedAreas[0].Part)
	assert.Equal(t, entities.PartStem, result.AffectedAreas[1].Part)
	for _, area := range result.AffectedAreas {
		assert.True(t, area.Approximate)
		require.NotNil(t, area.Box)
		assert.Equal(t, entities.BoundingBox{X: 0, Y: 0, Width: 1, Height: 1}, *area.Box)
	}
}

func TestNormalize_TimestampAndCrop(t *testing.T) {
	svc := services.NewRemoteNormalizerServiceWithClock(fixedClock)
	crop := &entities.Crop{ID: "potato", Name: "Potato"}

	result := svc.Normalize(samplePayload(), crop)

	assert.Equal(t, "remote-1", result.ID)
	assert.Equal(t, "potato", result.CropID)
	assert.Equal(t, "Potato", result.CropName)
	assert.Equal(t, fixedNow, result.DiagnosedAt)
}

func TestNormalize_FallbacksForMissingFields(t *testing.T) {
	svc := services.NewRemoteNormalizerServiceWithClock(fixedClock)

	payload := samplePayload()
	payload.DiagnosisID = ""
	payload.Timestamp = "not-a-timestamp"
	payload.Severity = "weird"

	result := svc.Normalize(payload, nil)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, fixedNow, result.DiagnosedAt)
	assert.Equal(t, entities.SeverityModerate, result.Conditions[0].Severity)
}
