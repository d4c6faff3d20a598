package entities

import (
	"time"
)

// DiagnosisEventType names the lifecycle events published on the bus.
type DiagnosisEventType string

const (
	EventDiagnosisCompleted DiagnosisEventType = "diagnosis.completed"
	EventDiagnosisDeleted   DiagnosisEventType = "diagnosis.deleted"
	EventCatalogSynced      DiagnosisEventType = "catalog.synced"
)

// DiagnosisEvent is published after diagnosis and catalog operations so
// downstream consumers (analytics, notifications) can react without
// coupling to the request path.
type DiagnosisEvent struct {
	ID          string             `json:"id"`
	Type        DiagnosisEventType `json:"type"`
	DiagnosisID string             `json:"diagnosis_id,omitempty"`
	CropID      string             `json:"crop_id,omitempty"`
	HealthScore float64            `json:"health_score,omitempty"`
	Status      HealthStatus       `json:"status,omitempty"`
	OccurredAt  time.Time          `json:"occurred_at"`
}
