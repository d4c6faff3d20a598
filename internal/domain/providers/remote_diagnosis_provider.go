package providers

import (
	"context"
	"io"
)

// RemoteTreatment is one treatment entry in a remote diagnosis payload.
// Organic entries carry Frequency, chemical entries carry Precautions.
type RemoteTreatment struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Method      string   `json:"method"`
	Frequency   string   `json:"frequency,omitempty"`
	Precautions []string `json:"precautions,omitempty"`
}

// RemoteDiagnosisPayload is the raw result returned by the remote image
// diagnosis API. Confidence is on a 0-100 scale and severity is a free
// string; the normalizer converts both to domain conventions.
type RemoteDiagnosisPayload struct {
	DiagnosisID        string            `json:"diagnosis_id"`
	DiseaseName        string            `json:"disease_name"`
	DiseaseNameLocal   string            `json:"disease_name_local"`
	Confidence         float64           `json:"confidence"`
	Severity           string            `json:"severity"`
	AffectedParts      []string          `json:"affected_parts"`
	Description        string            `json:"description"`
	Causes             []string          `json:"causes"`
	OrganicTreatments  []RemoteTreatment `json:"organic_treatments"`
	ChemicalTreatments []RemoteTreatment `json:"chemical_treatments"`
	PreventiveMeasures []string          `json:"preventive_measures"`
	Timestamp          string            `json:"timestamp"`
}

// RemoteDiagnosisProvider defines the interface to the hosted
// image-diagnosis service
type RemoteDiagnosisProvider interface {
	// DiagnoseImage uploads a crop photo and returns the raw remote result.
	// cropName and language are optional hints forwarded to the service.
	DiagnoseImage(ctx context.Context, image io.Reader, filename, cropName, language string) (*RemoteDiagnosisPayload, error)

	// Healthy reports whether the remote service is reachable
	Healthy(ctx context.Context) bool
}
