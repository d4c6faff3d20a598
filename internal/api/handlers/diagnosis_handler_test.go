package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fasalrakshak/backend/internal/api/handlers"
	"github.com/fasalrakshak/backend/internal/application/services"
	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

type stubDiagnosisService struct {
	result *entities.DiagnosisResult
	err    error

	cropID          string
	symptomIDs      []string
	classifications []services.Classification
	imageFilename   string
	imageCropName   string
	imageLanguage   string
	deletedID       string
}

func (s *stubDiagnosisService) DiagnoseBySymptoms(ctx context.Context, cropID string, symptomIDs []string) (*entities.DiagnosisResult, error) {
	s.cropID = cropID
	s.symptomIDs = symptomIDs
	return s.result, s.err
}

func (s *stubDiagnosisService) DiagnoseByClassifications(ctx context.Context, cropID string, classifications []services.Classification) (*entities.DiagnosisResult, error) {
	s.cropID = cropID
	s.classifications = classifications
	return s.result, s.err
}

func (s *stubDiagnosisService) DiagnoseImage(ctx context.Context, image io.Reader, filename, cropName, language string) (*entities.DiagnosisResult, error) {
	s.imageFilename = filename
	s.imageCropName = cropName
	s.imageLanguage = language
	return s.result, s.err
}

func (s *stubDiagnosisService) GetHistory(ctx context.Context, filter repositories.HistoryFilter) ([]*entities.DiagnosisResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.result == nil {
		return nil, nil
	}
	return []*entities.DiagnosisResult{s.result}, nil
}

func (s *stubDiagnosisService) GetHistoryEntry(ctx context.Context, id string) (*entities.DiagnosisResult, error) {
	return s.result, s.err
}

func (s *stubDiagnosisService) DeleteHistoryEntry(ctx context.Context, id string) error {
	s.deletedID = id
	return s.err
}

func sampleResult() *entities.DiagnosisResult {
	return &entities.DiagnosisResult{
		ID:          "diag-1",
		CropID:      "tomato",
		CropName:    "Tomato",
		HealthScore: 65,
	}
}

func TestDiagnosisHandler_DiagnoseBySymptoms_Success(t *testing.T) {
	service := &stubDiagnosisService{result: sampleResult()}
	handler := handlers.NewDiagnosisHandler(service)

	body := `{"crop_id":"tomato","symptom_ids":["yellow-leaves","brown-spots"]}`
	req := httptest.NewRequest("POST", "/api/diagnose/symptoms", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.DiagnoseBySymptoms(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tomato", service.cropID)
	assert.Equal(t, []string{"yellow-leaves", "brown-spots"}, service.symptomIDs)

	var response entities.DiagnosisResult
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "diag-1", response.ID)
	assert.Equal(t, 65.0, response.HealthScore)
}

func TestDiagnosisHandler_DiagnoseBySymptoms_InvalidBody(t *testing.T) {
	service := &stubDiagnosisService{}
	handler := handlers.NewDiagnosisHandler(service)

	req := httptest.NewRequest("POST", "/api/diagnose/symptoms", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	handler.DiagnoseBySymptoms(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiagnosisHandler_DiagnoseBySymptoms_ValidationError(t *testing.T) {
	service := &stubDiagnosisService{err: apperrors.NewValidationError("crop ID is required")}
	handler := handlers.NewDiagnosisHandler(service)

	body := `{"symptom_ids":["yellow-leaves"]}`
	req := httptest.NewRequest("POST", "/api/diagnose/symptoms", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.DiagnoseBySymptoms(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "crop ID is required", response["error"])
}

func TestDiagnosisHandler_DiagnoseByClassifications_Success(t *testing.T) {
	service := &stubDiagnosisService{result: sampleResult()}
	handler := handlers.NewDiagnosisHandler(service)

	body := `{"crop_id":"tomato","classifications":[{"identifier":"late blight","confidence":0.9}]}`
	req := httptest.NewRequest("POST", "/api/diagnose/classifications", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.DiagnoseByClassifications(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, service.classifications, 1)
	assert.Equal(t, "late blight", service.classifications[0].Identifier)
	assert.Equal(t, 0.9, service.classifications[0].Confidence)
}

func TestDiagnosisHandler_DiagnoseByClassifications_Empty(t *testing.T) {
	service := &stubDiagnosisService{}
	handler := handlers.NewDiagnosisHandler(service)

	body := `{"crop_id":"tomato","classifications":[]}`
	req := httptest.NewRequest("POST", "/api/diagnose/classifications", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.DiagnoseByClassifications(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiagnosisHandler_DiagnoseImage_Success(t *testing.T) {
	service := &stubDiagnosisService{result: sampleResult()}
	handler := handlers.NewDiagnosisHandler(service)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "leaf.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("crop_name", "Tomato"))
	require.NoError(t, writer.WriteField("language", "hi"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/diagnose/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()

	handler.DiagnoseImage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "leaf.jpg", service.imageFilename)
	assert.Equal(t, "Tomato", service.imageCropName)
	assert.Equal(t, "hi", service.imageLanguage)
}

func TestDiagnosisHandler_DiagnoseImage_MissingFile(t *testing.T) {
	service := &stubDiagnosisService{}
	handler := handlers.NewDiagnosisHandler(service)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("crop_name", "Tomato"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/diagnose/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()

	handler.DiagnoseImage(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiagnosisHandler_DiagnoseImage_RemoteFailure(t *testing.T) {
	service := &stubDiagnosisService{err: apperrors.NewExternalError("diagnosis API unavailable", nil)}
	handler := handlers.NewDiagnosisHandler(service)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "leaf.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/diagnose/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()

	handler.DiagnoseImage(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDiagnosisHandler_GetHistory_Success(t *testing.T) {
	service := &stubDiagnosisService{result: sampleResult()}
	handler := handlers.NewDiagnosisHandler(service)

	req := httptest.NewRequest("GET", "/api/history?crop_id=tomato&limit=10", nil)
	w := httptest.NewRecorder()

	handler.GetHistory(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, float64(1), response["count"])
}

func TestDiagnosisHandler_GetHistoryEntry_NotFound(t *testing.T) {
	service := &stubDiagnosisService{err: apperrors.NewNotFoundError("diagnosis not found")}
	handler := handlers.NewDiagnosisHandler(service)

	req := httptest.NewRequest("GET", "/api/history/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.GetHistoryEntry(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDiagnosisHandler_DeleteHistoryEntry_Success(t *testing.T) {
	service := &stubDiagnosisService{}
	handler := handlers.NewDiagnosisHandler(service)

	req := httptest.NewRequest("DELETE", "/api/history/diag-1", nil)
	req.SetPathValue("id", "diag-1")
	w := httptest.NewRecorder()

	handler.DeleteHistoryEntry(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "diag-1", service.deletedID)
}
