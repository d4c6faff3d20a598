package services

import (
	"github.com/fasalrakshak/backend/internal/domain/entities"
)

// HealthImpactPolicy assigns a base score penalty to each severity
// level. Different diagnosis paths weight severity differently.
type HealthImpactPolicy interface {
	Impact(severity entities.DiseaseSeverity) float64
}

// FieldImpactPolicy is the weighting used for symptom and classifier
// based diagnoses.
type FieldImpactPolicy struct{}

func (FieldImpactPolicy) Impact(severity entities.DiseaseSeverity) float64 {
	switch severity {
	case entities.SeverityLow:
		return 10
	case entities.SeverityModerate:
		return 25
	case entities.SeverityHigh:
		return 40
	case entities.SeverityCritical:
		return 60
	default:
		return 25
	}
}

// RemoteImpactPolicy is the heavier weighting used for results coming
// from the remote image-diagnosis service.
type RemoteImpactPolicy struct{}

func (RemoteImpactPolicy) Impact(severity entities.DiseaseSeverity) float64 {
	switch severity {
	case entities.SeverityLow:
		return 10
	case entities.SeverityModerate:
		return 30
	case entities.SeverityHigh:
		return 50
	case entities.SeverityCritical:
		return 70
	default:
		return 30
	}
}

// HealthScoreService turns a set of diagnosed conditions into a single
// 0-100 health score.
type HealthScoreService struct {
	policy HealthImpactPolicy
}

func NewHealthScoreService(policy HealthImpactPolicy) *HealthScoreService {
	if policy == nil {
		policy = FieldImpactPolicy{}
	}
	return &HealthScoreService{policy: policy}
}

// Score sums each condition's severity impact scaled by its confidence
// and subtracts the total from 100, flooring at 0. No conditions means
// a perfect score.
func (s *HealthScoreService) Score(conditions []entities.DiagnosedCondition) float64 {
	if len(conditions) == 0 {
		return 100
	}

	total := 0.0
	for _, c := range conditions {
		total += s.policy.Impact(c.Severity) * ClampConfidence(c.Confidence)
	}

	score := 100 - total
	if score < 0 {
		return 0
	}
	return score
}

// ClampConfidence bounds a confidence value to [0,1].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// ClampScore bounds a health score to [0,100].
func ClampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
