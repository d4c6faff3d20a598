package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fasalrakshak/backend/internal/application/services"
	"github.com/fasalrakshak/backend/internal/domain/entities"
)

func condition(severity entities.DiseaseSeverity, confidence float64) entities.DiagnosedCondition {
	return entities.DiagnosedCondition{Severity: severity, Confidence: confidence}
}

func TestHealthScore_EmptyIsPerfect(t *testing.T) {
	svc := services.NewHealthScoreService(services.FieldImpactPolicy{})
	assert.Equal(t, 100.0, svc.Score(nil))
}

func TestHealthScore_FieldPolicyWeights(t *testing.T) {
	svc := services.NewHealthScoreService(services.FieldImpactPolicy{})

	assert.InDelta(t, 90, svc.Score([]entities.DiagnosedCondition{condition(entities.SeverityLow, 1)}), 1e-9)
	assert.InDelta(t, 75, svc.Score([]entities.DiagnosedCondition{condition(entities.SeverityModerate, 1)}), 1e-9)
	assert.InDelta(t, 60, svc.Score([]entities.DiagnosedCondition{condition(entities.SeverityHigh, 1)}), 1e-9)
	assert.InDelta(t, 40, svc.Score([]entities.DiagnosedCondition{condition(entities.SeverityCritical, 1)}), 1e-9)
}

func TestHealthScore_ConfidenceScalesImpact(t *testing.T) {
	svc := services.NewHealthScoreService(services.FieldImpactPolicy{})

	// high severity at half confidence costs 20 points
	assert.InDelta(t, 80, svc.Score([]entities.DiagnosedCondition{condition(entities.SeverityHigh, 0.5)}), 1e-9)
}

func TestHealthScore_SumsAcrossConditionsAndFloorsAtZero(t *testing.T) {
	svc := services.NewHealthScoreService(services.FieldImpactPolicy{})

	conditions := []entities.DiagnosedCondition{
		condition(entities.SeverityCritical, 1),
		condition(entities.SeverityCritical, 1),
	}
	assert.Equal(t, 0.0, svc.Score(conditions))
}

func TestHealthScore_MoreConditionsNeverRaiseScore(t *testing.T) {
	svc := services.NewHealthScoreService(services.FieldImpactPolicy{})

	base := []entities.DiagnosedCondition{condition(entities.SeverityModerate, 0.8)}
	more := append([]entities.DiagnosedCondition{}, base...)
	more = append(more, condition(entities.SeverityLow, 0.2))

	assert.LessOrEqual(t, svc.Score(more), svc.Score(base))
}

func TestHealthScore_ClampsOutOfRangeConfidence(t *testing.T) {
	svc := services.NewHealthScoreService(services.FieldImpactPolicy{})

	// confidence above 1 behaves like 1, below 0 like 0
	assert.InDelta(t, 60, svc.Score([]entities.DiagnosedCondition{condition(entities.SeverityHigh, 1.7)}), 1e-9)
	assert.InDelta(t, 100, svc.Score([]entities.DiagnosedCondition{condition(entities.SeverityHigh, -0.3)}), 1e-9)
}

func TestHealthScore_RemotePolicyWeights(t *testing.T) {
	svc := services.NewHealthScoreService(services.RemoteImpactPolicy{})

	assert.InDelta(t, 90, svc.Score([]entities.DiagnosedCondition{condition(entities.SeverityLow, 1)}), 1e-9)
	assert.InDelta(t, 70, svc.Score([]entities.DiagnosedCondition{condition(entities.SeverityModerate, 1)}), 1e-9)
	assert.InDelta(t, 50, svc.Score([]entities.DiagnosedCondition{condition(entities.SeverityHigh, 1)}), 1e-9)
	assert.InDelta(t, 30, svc.Score([]entities.DiagnosedCondition{condition(entities.SeverityCritical, 1)}), 1e-9)
}

func TestClampHelpers(t *testing.T) {
	assert.Equal(t, 0.0, services.ClampConfidence(-1))
	assert.Equal(t, 1.0, services.ClampConfidence(2))
	assert.Equal(t, 0.5, services.ClampConfidence(0.5))
	assert.Equal(t, 0.0, services.ClampScore(-10))
	assert.Equal(t, 100.0, services.ClampScore(140))
	assert.Equal(t, 55.0, services.ClampScore(55))
}
