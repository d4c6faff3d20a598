package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fasalrakshak/backend/internal/domain/entities"
)

// monitoringDeadlineDays is how far out the follow-up check is due.
const monitoringDeadlineDays = 4

// RecommendationService builds the prioritized action list shown to the
// farmer after a diagnosis. The clock is injected so tests can pin
// deadlines.
type RecommendationService struct {
	now func() time.Time
}

func NewRecommendationService() *RecommendationService {
	return &RecommendationService{now: time.Now}
}

// NewRecommendationServiceWithClock builds a service with a fixed clock.
func NewRecommendationServiceWithClock(now func() time.Time) *RecommendationService {
	return &RecommendationService{now: now}
}

// Recommend derives actions from the top three conditions. Each
// condition with a known disease contributes a treatment action (first
// organic treatment, else first chemical) and, when the disease has
// preventive measures, a prevent-spread action. Any non-empty diagnosis
// also gets a monitoring follow-up. The result is sorted by priority
// ascending, ties in generation order.
func (s *RecommendationService) Recommend(conditions []entities.DiagnosedCondition, diseasesByID map[string]*entities.Disease) []entities.Recommendation {
	recs := make([]entities.Recommendation, 0, 7)

	top := conditions
	if len(top) > 3 {
		top = top[:3]
	}

	for idx, condition := range top {
		disease := diseasesByID[condition.DiseaseID]
		if disease == nil {
			continue
		}

		if treatment := primaryTreatment(disease); treatment != nil {
			actionType := entities.ActionScheduled
			if condition.Severity == entities.SeverityHigh || condition.Severity == entities.SeverityCritical {
				actionType = entities.ActionImmediate
			}
			recs = append(recs, entities.Recommendation{
				ID:               uuid.New().String(),
				Priority:         idx + 1,
				ActionType:       actionType,
				Title:            fmt.Sprintf("Apply %s", treatment.Name),
				TitleHindi:       fmt.Sprintf("%s लगाएं", treatment.NameHindi),
				Description:      treatment.Description,
				DescriptionHindi: treatment.DescriptionHindi,
			})
		}

		if len(disease.PreventiveMeasures) > 0 {
			measure := disease.PreventiveMeasures[0]
			measureHindi := measure
			if len(disease.PreventiveMeasuresHindi) > 0 {
				measureHindi = disease.PreventiveMeasuresHindi[0]
			}
			recs = append(recs, entities.Recommendation{
				ID:               uuid.New().String(),
				Priority:         idx + 4,
				ActionType:       entities.ActionPreventive,
				Title:            "Prevent spread",
				TitleHindi:       "फैलाव रोकें",
				Description:      measure,
				DescriptionHindi: measureHindi,
			})
		}
	}

	if len(conditions) > 0 {
		deadline := s.now().AddDate(0, 0, monitoringDeadlineDays)
		recs = append(recs, entities.Recommendation{
			ID:               uuid.New().String(),
			Priority:         10,
			ActionType:       entities.ActionMonitoring,
			Title:            "Monitor crop health",
			TitleHindi:       "फसल स्वास्थ्य की निगरानी करें",
			Description:      "Check your crop again in 3-5 days to monitor progress",
			DescriptionHindi: "3-5 दिनों में अपनी फसल की फिर से जांच करें",
			Deadline:         &deadline,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	return recs
}

// primaryTreatment picks the disease's preferred treatment: the first
// organic one, falling back to the first chemical one.
func primaryTreatment(d *entities.Disease) *entities.Treatment {
	if len(d.OrganicTreatments) > 0 {
		return &d.OrganicTreatments[0]
	}
	if len(d.ChemicalTreatments) > 0 {
		return &d.ChemicalTreatments[0]
	}
	return nil
}
