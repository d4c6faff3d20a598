package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/providers"
)

// RemoteNormalizerService converts a raw remote diagnosis payload into a
// domain DiagnosisResult: 0-100 confidences become [0,1], free-text
// severity is parsed, treatments become prioritized recommendations and
// named plant parts become approximate affected areas.
type RemoteNormalizerService struct {
	scorer *HealthScoreService
	now    func() time.Time
}

func NewRemoteNormalizerService() *RemoteNormalizerService {
	return &RemoteNormalizerService{
		scorer: NewHealthScoreService(RemoteImpactPolicy{}),
		now:    time.Now,
	}
}

// NewRemoteNormalizerServiceWithClock builds a normalizer with a fixed clock.
func NewRemoteNormalizerServiceWithClock(now func() time.Time) *RemoteNormalizerService {
	return &RemoteNormalizerService{
		scorer: NewHealthScoreService(RemoteImpactPolicy{}),
		now:    now,
	}
}

// Normalize builds a DiagnosisResult from the remote payload. crop may
// be nil when the caller could not resolve one.
func (s *RemoteNormalizerService) Normalize(payload *providers.RemoteDiagnosisPayload, crop *entities.Crop) *entities.DiagnosisResult {
	confidence := ClampConfidence(payload.Confidence / 100)
	severity := entities.ParseSeverity(payload.Severity)

	condition := entities.DiagnosedCondition{
		Name:        payload.DiseaseName,
		NameHindi:   payload.DiseaseNameLocal,
		Confidence:  confidence,
		Severity:    severity,
		Description: payload.Description,
	}

	result := &entities.DiagnosisResult{
		ID:              diagnosisID(payload),
		Conditions:      []entities.DiagnosedCondition{condition},
		HealthScore:     s.scorer.Score([]entities.DiagnosedCondition{condition}),
		AffectedAreas:   s.affectedAreas(payload.AffectedParts),
		Recommendations: s.recommendations(payload, severity),
		DiagnosedAt:     s.diagnosedAt(payload),
	}
	if crop != nil {
		result.CropID = crop.ID
		result.CropName = crop.Name
	}
	return result
}

// recommendations orders actions organic-first with sequential
// priorities: organic treatments as immediate actions, chemical as
// scheduled, preventive measures last.
func (s *RemoteNormalizerService) recommendations(payload *providers.RemoteDiagnosisPayload, severity entities.DiseaseSeverity) []entities.Recommendation {
	recs := make([]entities.Recommendation, 0, len(payload.OrganicTreatments)+len(payload.ChemicalTreatments)+len(payload.PreventiveMeasures))
	priority := 1

	for _, t := range payload.OrganicTreatments {
		recs = append(recs, entities.Recommendation{
			ID:          uuid.New().String(),
			Priority:    priority,
			ActionType:  entities.ActionImmediate,
			Title:       fmt.Sprintf("Apply %s", t.Name),
			TitleHindi:  fmt.Sprintf("%s लगाएं", t.Name),
			Description: treatmentDescription(t),
		})
		priority++
	}
	for _, t := range payload.ChemicalTreatments {
		recs = append(recs, entities.Recommendation{
			ID:          uuid.New().String(),
			Priority:    priority,
			ActionType:  entities.ActionScheduled,
			Title:       fmt.Sprintf("Apply %s", t.Name),
			TitleHindi:  fmt.Sprintf("%s लगाएं", t.Name),
			Description: treatmentDescription(t),
		})
		priority++
	}
	for _, measure := range payload.PreventiveMeasures {
		recs = append(recs, entities.Recommendation{
			ID:          uuid.New().String(),
			Priority:    priority,
			ActionType:  entities.ActionPreventive,
			Title:       "Prevent spread",
			TitleHindi:  "फैलाव रोकें",
			Description: measure,
		})
		priority++
	}
	return recs
}

// affectedAreas maps named parts to approximate whole-image areas, since
// the remote service reports parts without locations.
func (s *RemoteNormalizerService) affectedAreas(parts []string) []entities.AffectedArea {
	areas := make([]entities.AffectedArea, 0, len(parts))
	for _, part := range parts {
		areas = append(areas, entities.AffectedArea{
			Part:        parsePlantPart(part),
			Box:         &entities.BoundingBox{X: 0, Y: 0, Width: 1, Height: 1},
			Approximate: true,
		})
	}
	return areas
}

func (s *RemoteNormalizerService) diagnosedAt(payload *providers.RemoteDiagnosisPayload) time.Time {
	if payload.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339, payload.Timestamp); err == nil {
			return ts
		}
	}
	return s.now()
}

func diagnosisID(payload *providers.RemoteDiagnosisPayload) string {
	if payload.DiagnosisID != "" {
		return payload.DiagnosisID
	}
	return uuid.New().String()
}

func treatmentDescription(t providers.RemoteTreatment) string {
	desc := t.Description
	if t.Method != "" {
		desc = strings.TrimSpace(desc + " " + t.Method)
	}
	return desc
}

// parsePlantPart maps the remote service's part labels onto the domain
// enum, defaulting to the whole plant for unrecognized labels.
func parsePlantPart(s string) entities.PlantPart {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leaf", "leaves":
		return entities.PartLeaf
	case "stem", "stems", "trunk":
		return entities.PartStem
	case "root", "roots":
		return entities.PartRoot
	case "fruit", "fruits":
		return entities.PartFruit
	case "flower", "flowers":
		return entities.PartFlower
	case "seed", "seeds", "grain":
		return entities.PartSeed
	default:
		return entities.PartWhole
	}
}
