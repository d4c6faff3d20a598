package diagnosisapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fasalrakshak/backend/pkg/config"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

func newTestClient(url string) *Client {
	return NewClient(&config.DiagnosisAPIConfig{
		BaseURL:        url,
		APIKey:         "test-key",
		TimeoutSeconds: 5,
	})
}

func TestDiagnoseImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/diagnose", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "hi", r.Header.Get("Accept-Language"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Tomato", r.FormValue("crop_type"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "leaf.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"diagnosis_id": "remote-42",
			"disease_name": "Early Blight",
			"disease_name_local": "अगेती झुलसा",
			"confidence": 91.2,
			"severity": "high",
			"affected_parts": ["leaves"],
			"description": "Concentric rings on lower leaves",
			"organic_treatments": [{"name": "Neem oil", "description": "Spray weekly", "method": "Foliar", "frequency": "Weekly"}],
			"chemical_treatments": [],
			"preventive_measures": ["Rotate crops"],
			"timestamp": "2026-03-15T10:00:00Z"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	payload, err := client.DiagnoseImage(context.Background(), strings.NewReader("jpeg-bytes"), "leaf.jpg", "Tomato", "hi")

	require.NoError(t, err)
	assert.Equal(t, "remote-42", payload.DiagnosisID)
	assert.Equal(t, "Early Blight", payload.DiseaseName)
	assert.InDelta(t, 91.2, payload.Confidence, 1e-9)
	require.Len(t, payload.OrganicTreatments, 1)
	assert.Equal(t, "Neem oil", payload.OrganicTreatments[0].Name)
}

func TestDiagnoseImage_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.DiagnoseImage(context.Background(), strings.NewReader("x"), "leaf.jpg", "", "")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternal))
}

func TestHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	assert.True(t, newTestClient(server.URL).Healthy(context.Background()))

	server.Close()
	assert.False(t, newTestClient(server.URL).Healthy(context.Background()))
}
