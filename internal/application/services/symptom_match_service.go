package services

import (
	"sort"

	"github.com/fasalrakshak/backend/internal/domain/entities"
)

// DefaultMatchThreshold is the minimum overlap fraction a disease must
// reach before it is reported as a candidate.
const DefaultMatchThreshold = 0.3

// SymptomMatchService scores diseases against a farmer's observed
// symptoms by overlap with each disease's cataloged symptom set.
type SymptomMatchService struct {
	threshold float64
}

func NewSymptomMatchService(threshold float64) *SymptomMatchService {
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}
	return &SymptomMatchService{threshold: threshold}
}

// Match evaluates every disease cataloged against the crop and returns
// the candidates whose overlap fraction strictly exceeds the threshold,
// sorted by confidence descending. The fraction is the share of the
// disease's own symptoms present in the observation, so a disease with
// few symptoms matches more readily than one with many. Order among
// equal-confidence candidates follows catalog order.
func (s *SymptomMatchService) Match(crop *entities.Crop, diseases []*entities.Disease, observedSymptomIDs []string) []entities.DiagnosedCondition {
	observed := make(map[string]struct{}, len(observedSymptomIDs))
	for _, id := range observedSymptomIDs {
		observed[id] = struct{}{}
	}

	var conditions []entities.DiagnosedCondition
	for _, disease := range diseases {
		if crop != nil && !disease.Affects(crop.ID) {
			continue
		}
		if len(disease.Symptoms) == 0 {
			continue
		}

		matched := 0
		for _, symptom := range disease.Symptoms {
			if _, ok := observed[symptom.ID]; ok {
				matched++
			}
		}

		score := float64(matched) / float64(len(disease.Symptoms))
		if score <= s.threshold {
			continue
		}

		conditions = append(conditions, entities.DiagnosedCondition{
			DiseaseID:   disease.ID,
			Name:        disease.Name,
			NameHindi:   disease.NameHindi,
			Confidence:  score,
			Severity:    disease.Severity,
			Description: firstSymptomDescription(disease),
		})
	}

	sort.SliceStable(conditions, func(i, j int) bool {
		return conditions[i].Confidence > conditions[j].Confidence
	})
	return conditions
}

// firstSymptomDescription gives the condition a farmer-facing description
// taken from the disease's first cataloged symptom.
func firstSymptomDescription(d *entities.Disease) string {
	if len(d.Symptoms) == 0 {
		return d.Description
	}
	return d.Symptoms[0].Description
}
