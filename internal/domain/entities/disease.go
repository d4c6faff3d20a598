package entities

import (
	"strings"
	"time"
)

// DiseaseType classifies the agent behind a crop condition.
type DiseaseType string

const (
	DiseaseFungal      DiseaseType = "fungal"
	DiseaseBacterial   DiseaseType = "bacterial"
	DiseaseViral       DiseaseType = "viral"
	DiseaseNutrient    DiseaseType = "nutrient_deficiency"
	DiseasePest        DiseaseType = "pest"
	DiseaseWaterStress DiseaseType = "water_stress"
	DiseasePhysio      DiseaseType = "physiological"
)

// DiseaseSeverity is a 4-level ordinal. The ordering low < moderate <
// high < critical matters for action scheduling and health impact.
type DiseaseSeverity string

const (
	SeverityLow      DiseaseSeverity = "low"
	SeverityModerate DiseaseSeverity = "moderate"
	SeverityHigh     DiseaseSeverity = "high"
	SeverityCritical DiseaseSeverity = "critical"
)

// ParseSeverity maps free-text severity labels (such as those coming back
// from the remote diagnosis API) onto the 4-level scale. Unrecognized
// input lands on moderate rather than failing, since a data quality
// problem in one field must not sink a whole diagnosis.
func ParseSeverity(s string) DiseaseSeverity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow
	case "moderate", "medium":
		return SeverityModerate
	case "high", "severe":
		return SeverityHigh
	case "critical":
		return SeverityCritical
	default:
		return SeverityModerate
	}
}

// PlantPart names the part of the plant a symptom shows on.
type PlantPart string

const (
	PartLeaf   PlantPart = "leaf"
	PartStem   PlantPart = "stem"
	PartRoot   PlantPart = "root"
	PartFruit  PlantPart = "fruit"
	PartFlower PlantPart = "flower"
	PartSeed   PlantPart = "seed"
	PartWhole  PlantPart = "whole_plant"
)

// Symptom is an observable sign of a crop condition.
type Symptom struct {
	ID               string    `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	NameHindi        string    `json:"name_hindi" db:"name_hindi"`
	Description      string    `json:"description" db:"description"`
	DescriptionHindi string    `json:"description_hindi" db:"description_hindi"`
	AffectedPart     PlantPart `json:"affected_part" db:"affected_part"`
	ImageURL         string    `json:"image_url,omitempty" db:"image_url"`
}

// TreatmentType distinguishes organic from chemical interventions.
// Organic treatments are preferred when both exist for a disease.
type TreatmentType string

const (
	TreatmentOrganic  TreatmentType = "organic"
	TreatmentChemical TreatmentType = "chemical"
)

// Treatment is an intervention applicable to a disease.
type Treatment struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	NameHindi        string        `json:"name_hindi"`
	Type             TreatmentType `json:"type"`
	Description      string        `json:"description"`
	DescriptionHindi string        `json:"description_hindi"`
	Method           string        `json:"method,omitempty"`
	Frequency        string        `json:"frequency,omitempty"`
	Precautions      []string      `json:"precautions,omitempty"`
}

// Disease is immutable reference data describing a crop condition
// together with its symptoms, treatments and preventive measures.
type Disease struct {
	ID                      string          `json:"id" db:"id"`
	Name                    string          `json:"name" db:"name"`
	NameHindi               string          `json:"name_hindi" db:"name_hindi"`
	Type                    DiseaseType     `json:"type" db:"type"`
	Severity                DiseaseSeverity `json:"severity" db:"severity"`
	Description             string          `json:"description" db:"description"`
	DescriptionHindi        string          `json:"description_hindi" db:"description_hindi"`
	AffectedCrops           []string        `json:"affected_crops" db:"affected_crops"` // crop IDs
	Symptoms                []Symptom       `json:"symptoms" db:"symptoms"`
	Causes                  []string        `json:"causes" db:"causes"`
	OrganicTreatments       []Treatment     `json:"organic_treatments" db:"organic_treatments"`
	ChemicalTreatments      []Treatment     `json:"chemical_treatments" db:"chemical_treatments"`
	PreventiveMeasures      []string        `json:"preventive_measures" db:"preventive_measures"`
	PreventiveMeasuresHindi []string        `json:"preventive_measures_hindi" db:"preventive_measures_hindi"`
	ImageURLs               []string        `json:"image_urls,omitempty" db:"image_urls"`
	CreatedAt               time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at" db:"updated_at"`
}

// Affects reports whether the disease is cataloged against the given crop.
func (d *Disease) Affects(cropID string) bool {
	for _, id := range d.AffectedCrops {
		if id == cropID {
			return true
		}
	}
	return false
}

// SymptomIDs returns the IDs of the disease's cataloged symptoms.
func (d *Disease) SymptomIDs() []string {
	ids := make([]string, 0, len(d.Symptoms))
	for _, s := range d.Symptoms {
		ids = append(ids, s.ID)
	}
	return ids
}
