package services

import (
	"sort"
	"strings"

	"github.com/fasalrakshak/backend/internal/domain/entities"
)

// Classification is a single label-confidence pair from an image
// classifier. Confidence is already on the [0,1] scale.
type Classification struct {
	Identifier string
	Confidence float64
}

// ClassificationService maps free-text classifier labels onto cataloged
// diseases and crops using per-disease-type keyword tables.
type ClassificationService struct {
	keywords map[entities.DiseaseType][]string
}

func NewClassificationService() *ClassificationService {
	return &ClassificationService{
		keywords: map[entities.DiseaseType][]string{
			entities.DiseaseFungal:      {"fungus", "mold", "mildew", "rust", "blight", "spot"},
			entities.DiseaseBacterial:   {"bacteria", "wilt", "rot", "canker"},
			entities.DiseaseViral:       {"virus", "mosaic", "yellowing", "curl"},
			entities.DiseaseNutrient:    {"deficiency", "chlorosis", "yellowing", "necrosis"},
			entities.DiseasePest:        {"insect", "pest", "aphid", "caterpillar", "beetle"},
			entities.DiseaseWaterStress: {"drought", "wilting", "drying"},
			entities.DiseasePhysio:      {"stress", "damage", "burn"},
		},
	}
}

// Map converts classifier output into diagnosed conditions. For each
// label, every disease whose name or type keywords appear in the label
// (lowercased substring match) yields one condition at the label's
// confidence. Diseases not cataloged against the crop are skipped when
// a crop is given. A disease matched by several labels appears once per
// label; callers that want distinct diseases deduplicate downstream.
// Conditions come back sorted by confidence descending, ties in
// label-then-catalog order.
func (s *ClassificationService) Map(crop *entities.Crop, classifications []Classification, diseases []*entities.Disease) []entities.DiagnosedCondition {
	var conditions []entities.DiagnosedCondition
	for _, c := range classifications {
		label := strings.ToLower(c.Identifier)
		for _, disease := range diseases {
			if crop != nil && !disease.Affects(crop.ID) {
				continue
			}
			if s.labelMatches(label, disease) {
				conditions = append(conditions, entities.DiagnosedCondition{
					DiseaseID:   disease.ID,
					Name:        disease.Name,
					NameHindi:   disease.NameHindi,
					Confidence:  c.Confidence,
					Severity:    disease.Severity,
					Description: firstSymptomDescription(disease),
				})
			}
		}
	}
	sort.SliceStable(conditions, func(i, j int) bool {
		return conditions[i].Confidence > conditions[j].Confidence
	})
	return conditions
}

// labelMatches reports whether the label contains the disease's name or
// any keyword for its type.
func (s *ClassificationService) labelMatches(label string, disease *entities.Disease) bool {
	if strings.Contains(label, strings.ToLower(disease.Name)) {
		return true
	}
	for _, kw := range s.keywords[disease.Type] {
		if strings.Contains(label, kw) {
			return true
		}
	}
	return false
}

// IdentifyCrop returns the first cataloged crop whose name or scientific
// name appears in any classifier label, scanning crops in catalog order.
// It returns nil when no crop is recognized.
func (s *ClassificationService) IdentifyCrop(classifications []Classification, crops []*entities.Crop) *entities.Crop {
	for _, crop := range crops {
		name := strings.ToLower(crop.Name)
		sciName := strings.ToLower(crop.ScientificName)
		for _, c := range classifications {
			label := strings.ToLower(c.Identifier)
			if strings.Contains(label, name) || (sciName != "" && strings.Contains(label, sciName)) {
				return crop
			}
		}
	}
	return nil
}
