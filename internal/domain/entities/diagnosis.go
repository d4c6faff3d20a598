package entities

import (
	"time"
)

// HealthStatus is the qualitative band derived from a 0-100 health score.
type HealthStatus string

const (
	StatusHealthy  HealthStatus = "healthy"
	StatusMild     HealthStatus = "mild"
	StatusModerate HealthStatus = "moderate"
	StatusSevere   HealthStatus = "severe"
	StatusCritical HealthStatus = "critical"
)

// StatusForScore maps a health score onto its band. Bands are half-open
// at the bottom edge: a score of exactly 80 is healthy, exactly 60 is
// mild, and so on down.
func StatusForScore(score float64) HealthStatus {
	switch {
	case score >= 80:
		return StatusHealthy
	case score >= 60:
		return StatusMild
	case score >= 40:
		return StatusModerate
	case score >= 20:
		return StatusSevere
	default:
		return StatusCritical
	}
}

// BoundingBox locates an affected region within an image, in normalized
// [0,1] coordinates.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// AffectedArea names a plant part showing damage. Box is nil when the
// source (such as the remote API) reports parts without locations; in
// that case Approximate is set and any fabricated box covers the whole
// image.
type AffectedArea struct {
	Part        PlantPart    `json:"part"`
	Box         *BoundingBox `json:"box,omitempty"`
	Approximate bool         `json:"approximate,omitempty"`
}

// DiagnosedCondition is one candidate disease with the engine's
// confidence in it. Confidence is always within [0,1].
type DiagnosedCondition struct {
	DiseaseID   string          `json:"disease_id"`
	Name        string          `json:"name"`
	NameHindi   string          `json:"name_hindi,omitempty"`
	Confidence  float64         `json:"confidence"`
	Severity    DiseaseSeverity `json:"severity"`
	Description string          `json:"description"`
}

// ActionType tells the farmer how soon to act on a recommendation.
type ActionType string

const (
	ActionImmediate  ActionType = "immediate"
	ActionScheduled  ActionType = "scheduled"
	ActionPreventive ActionType = "preventive"
	ActionMonitoring ActionType = "monitoring"
)

// Recommendation is a prioritized action for the farmer. Lower priority
// numbers are more urgent.
type Recommendation struct {
	ID               string     `json:"id"`
	Priority         int        `json:"priority"`
	ActionType       ActionType `json:"action_type"`
	Title            string     `json:"title"`
	TitleHindi       string     `json:"title_hindi"`
	Description      string     `json:"description"`
	DescriptionHindi string     `json:"description_hindi"`
	Deadline         *time.Time `json:"deadline,omitempty"`
}

// Location is an optional geotag on a diagnosis.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	District  string  `json:"district,omitempty"`
	State     string  `json:"state,omitempty"`
}

// WeatherContext captures conditions at diagnosis time, when known.
type WeatherContext struct {
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	RainfallMM   float64 `json:"rainfall_mm"`
	Condition    string  `json:"condition,omitempty"`
}

// DiagnosisResult is the complete outcome of one diagnosis run:
// candidate conditions, an overall health score, the bands it falls in,
// and the recommended actions.
type DiagnosisResult struct {
	ID              string               `json:"id" db:"id"`
	CropID          string               `json:"crop_id" db:"crop_id"`
	CropName        string               `json:"crop_name" db:"crop_name"`
	Conditions      []DiagnosedCondition `json:"conditions" db:"conditions"`
	HealthScore     float64              `json:"health_score" db:"health_score"`
	AffectedAreas   []AffectedArea       `json:"affected_areas,omitempty" db:"affected_areas"`
	Recommendations []Recommendation     `json:"recommendations" db:"recommendations"`
	ImageURL        string               `json:"image_url,omitempty" db:"image_url"`
	Location        *Location            `json:"location,omitempty" db:"location"`
	Weather         *WeatherContext      `json:"weather,omitempty" db:"weather"`
	DiagnosedAt     time.Time            `json:"diagnosed_at" db:"diagnosed_at"`
}

// HealthStatus derives the qualitative band for the result's score.
func (r *DiagnosisResult) HealthStatus() HealthStatus {
	return StatusForScore(r.HealthScore)
}
