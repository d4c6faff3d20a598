package services_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fasalrakshak/backend/internal/application/services"
	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/providers"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

// Mocks

type MockCropRepository struct {
	mock.Mock
}

func (m *MockCropRepository) Create(ctx context.Context, crop *entities.Crop) error { return nil }
func (m *MockCropRepository) Upsert(ctx context.Context, crop *entities.Crop) error { return nil }
func (m *MockCropRepository) GetByID(ctx context.Context, id string) (*entities.Crop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Crop), args.Error(1)
}
func (m *MockCropRepository) GetByIDs(ctx context.Context, ids []string) ([]*entities.Crop, error) {
	return nil, nil
}
func (m *MockCropRepository) List(ctx context.Context, filter repositories.CropFilter) ([]*entities.Crop, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Crop), args.Error(1)
}
func (m *MockCropRepository) Delete(ctx context.Context, id string) error { return nil }

type MockDiseaseRepository struct {
	mock.Mock
}

func (m *MockDiseaseRepository) Create(ctx context.Context, disease *entities.Disease) error {
	return nil
}
func (m *MockDiseaseRepository) Upsert(ctx context.Context, disease *entities.Disease) error {
	return nil
}
func (m *MockDiseaseRepository) GetByID(ctx context.Context, id string) (*entities.Disease, error) {
	return nil, nil
}
func (m *MockDiseaseRepository) GetByIDs(ctx context.Context, ids []string) ([]*entities.Disease, error) {
	return nil, nil
}
func (m *MockDiseaseRepository) List(ctx context.Context, filter repositories.DiseaseFilter) ([]*entities.Disease, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Disease), args.Error(1)
}
func (m *MockDiseaseRepository) ListForCrop(ctx context.Context, cropID string) ([]*entities.Disease, error) {
	args := m.Called(ctx, cropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Disease), args.Error(1)
}
func (m *MockDiseaseRepository) Delete(ctx context.Context, id string) error { return nil }

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Save(ctx context.Context, result *entities.DiagnosisResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}
func (m *MockHistoryRepository) GetByID(ctx context.Context, id string) (*entities.DiagnosisResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DiagnosisResult), args.Error(1)
}
func (m *MockHistoryRepository) List(ctx context.Context, filter repositories.HistoryFilter) ([]*entities.DiagnosisResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DiagnosisResult), args.Error(1)
}
func (m *MockHistoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.DiagnosisEvent) error {
	args := m.Called(ctx, channel, event)
	return args.Error(0)
}
func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.DiagnosisEvent, error) {
	return nil, nil
}
func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string) error { return nil }
func (m *MockEventBus) Close() error                                          { return nil }

type MockRemoteProvider struct {
	mock.Mock
}

func (m *MockRemoteProvider) DiagnoseImage(ctx context.Context, image io.Reader, filename, cropName, language string) (*providers.RemoteDiagnosisPayload, error) {
	args := m.Called(ctx, image, filename, cropName, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.RemoteDiagnosisPayload), args.Error(1)
}
func (m *MockRemoteProvider) Healthy(ctx context.Context) bool { return true }

func newDiagnosisService(crops *MockCropRepository, diseases *MockDiseaseRepository, history *MockHistoryRepository, remote *MockRemoteProvider, bus *MockEventBus) *services.DiagnosisService {
	var remoteProvider providers.RemoteDiagnosisProvider
	if remote != nil {
		remoteProvider = remote
	}
	var eventBus providers.EventBus
	if bus != nil {
		eventBus = bus
	}
	return services.NewDiagnosisService(
		crops,
		diseases,
		history,
		remoteProvider,
		eventBus,
		services.NewSymptomMatchService(0.3),
		services.NewClassificationService(),
		services.NewRecommendationServiceWithClock(fixedClock),
		services.NewRemoteNormalizerServiceWithClock(fixedClock),
	)
}

// Tests

func TestDiagnoseBySymptoms(t *testing.T) {
	t.Run("successfully diagnoses and persists", func(t *testing.T) {
		crops := new(MockCropRepository)
		diseases := new(MockDiseaseRepository)
		history := new(MockHistoryRepository)
		bus := new(MockEventBus)
		svc := newDiagnosisService(crops, diseases, history, nil, bus)

		crop := &entities.Crop{ID: "rice", Name: "Rice"}
		disease := diseaseWithTreatments("blast")
		disease.Name = "Rice Blast"
		disease.Severity = entities.SeverityHigh
		disease.AffectedCrops = []string{"rice"}
		disease.Symptoms = symptoms("s1", "s2")

		crops.On("GetByID", mock.Anything, "rice").Return(crop, nil)
		diseases.On("ListForCrop", mock.Anything, "rice").Return([]*entities.Disease{disease}, nil)
		history.On("Save", mock.Anything, mock.MatchedBy(func(r *entities.DiagnosisResult) bool {
			return r.CropID == "rice" && len(r.Conditions) == 1 && r.ID != ""
		})).Return(nil)
		bus.On("Publish", mock.Anything, providers.EventChannelDiagnoses, mock.MatchedBy(func(e *entities.DiagnosisEvent) bool {
			return e.Type == entities.EventDiagnosisCompleted && e.CropID == "rice"
		})).Return(nil)

		result, err := svc.DiagnoseBySymptoms(context.Background(), "rice", []string{"s1", "s2"})

		require.NoError(t, err)
		require.Len(t, result.Conditions, 1)
		assert.Equal(t, "blast", result.Conditions[0].DiseaseID)
		assert.Equal(t, 1.0, result.Conditions[0].Confidence)
		// full-confidence high severity costs 40 on the field scale
		assert.InDelta(t, 60, result.HealthScore, 1e-9)
		assert.NotEmpty(t, result.Recommendations)
		history.AssertExpectations(t)
		bus.AssertExpectations(t)
	})

	t.Run("empty crop id matches the whole catalog", func(t *testing.T) {
		crops := new(MockCropRepository)
		diseases := new(MockDiseaseRepository)
		history := new(MockHistoryRepository)
		svc := newDiagnosisService(crops, diseases, history, nil, nil)

		wilt := diseaseWithTreatments("wilt")
		wilt.AffectedCrops = []string{"tomato"}
		wilt.Symptoms = symptoms("s1")

		diseases.On("List", mock.Anything, mock.Anything).Return([]*entities.Disease{wilt}, nil)
		history.On("Save", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.DiagnoseBySymptoms(context.Background(), "", []string{"s1"})

		require.NoError(t, err)
		assert.Empty(t, result.CropID)
		require.Len(t, result.Conditions, 1)
		assert.Equal(t, "wilt", result.Conditions[0].DiseaseID)
		crops.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown crop propagates not found", func(t *testing.T) {
		crops := new(MockCropRepository)
		svc := newDiagnosisService(crops, new(MockDiseaseRepository), new(MockHistoryRepository), nil, nil)

		crops.On("GetByID", mock.Anything, "nope").Return(nil, apperrors.NewNotFoundError("crop not found"))

		_, err := svc.DiagnoseBySymptoms(context.Background(), "nope", []string{"s1"})

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})

	t.Run("no matches yields perfect score and no recommendations", func(t *testing.T) {
		crops := new(MockCropRepository)
		diseases := new(MockDiseaseRepository)
		history := new(MockHistoryRepository)
		svc := newDiagnosisService(crops, diseases, history, nil, nil)

		crops.On("GetByID", mock.Anything, "rice").Return(&entities.Crop{ID: "rice"}, nil)
		diseases.On("ListForCrop", mock.Anything, "rice").Return([]*entities.Disease{}, nil)
		history.On("Save", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.DiagnoseBySymptoms(context.Background(), "rice", []string{"s1"})

		require.NoError(t, err)
		assert.Empty(t, result.Conditions)
		assert.Equal(t, 100.0, result.HealthScore)
		assert.Equal(t, entities.StatusHealthy, result.HealthStatus())
		assert.Empty(t, result.Recommendations)
	})
}

func TestDiagnoseByClassifications(t *testing.T) {
	t.Run("infers crop from labels when none given", func(t *testing.T) {
		crops := new(MockCropRepository)
		diseases := new(MockDiseaseRepository)
		history := new(MockHistoryRepository)
		svc := newDiagnosisService(crops, diseases, history, nil, nil)

		rice := &entities.Crop{ID: "rice", Name: "Rice"}
		blast := diseaseWithTreatments("blast")
		blast.Name = "Blast"
		blast.Type = entities.DiseaseFungal
		blast.AffectedCrops = []string{"rice"}

		diseases.On("List", mock.Anything, mock.Anything).Return([]*entities.Disease{blast}, nil)
		crops.On("List", mock.Anything, mock.Anything).Return([]*entities.Crop{rice}, nil)
		history.On("Save", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.DiagnoseByClassifications(context.Background(), "", []services.Classification{
			{Identifier: "rice leaf rust", Confidence: 0.7},
		})

		require.NoError(t, err)
		assert.Equal(t, "rice", result.CropID)
		require.Len(t, result.Conditions, 1)
		assert.Equal(t, 0.7, result.Conditions[0].Confidence)
	})

	t.Run("filters diseases by crop and orders by confidence", func(t *testing.T) {
		crops := new(MockCropRepository)
		diseases := new(MockDiseaseRepository)
		history := new(MockHistoryRepository)
		svc := newDiagnosisService(crops, diseases, history, nil, nil)

		rice := &entities.Crop{ID: "rice", Name: "Rice"}
		blast := diseaseWithTreatments("blast")
		blast.Name = "Rice Blast"
		blast.Type = entities.DiseaseFungal
		blast.AffectedCrops = []string{"rice"}
		rust := diseaseWithTreatments("rust")
		rust.Name = "Wheat Rust"
		rust.Type = entities.DiseaseFungal
		rust.AffectedCrops = []string{"wheat"}

		crops.On("GetByID", mock.Anything, "rice").Return(rice, nil)
		diseases.On("List", mock.Anything, mock.Anything).Return([]*entities.Disease{rust, blast}, nil)
		history.On("Save", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.DiagnoseByClassifications(context.Background(), "rice", []services.Classification{
			{Identifier: "mold on leaf", Confidence: 0.2},
			{Identifier: "leaf rust", Confidence: 0.9},
		})

		require.NoError(t, err)
		require.Len(t, result.Conditions, 2)
		for _, c := range result.Conditions {
			assert.Equal(t, "blast", c.DiseaseID)
		}
		assert.Equal(t, 0.9, result.Conditions[0].Confidence)
		assert.Equal(t, 0.2, result.Conditions[1].Confidence)
	})

	t.Run("empty classifications are rejected", func(t *testing.T) {
		svc := newDiagnosisService(new(MockCropRepository), new(MockDiseaseRepository), new(MockHistoryRepository), nil, nil)

		_, err := svc.DiagnoseByClassifications(context.Background(), "rice", nil)

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})
}

func TestDiagnoseImage(t *testing.T) {
	t.Run("normalizes remote payload and persists", func(t *testing.T) {
		crops := new(MockCropRepository)
		history := new(MockHistoryRepository)
		remote := new(MockRemoteProvider)
		svc := newDiagnosisService(crops, new(MockDiseaseRepository), history, remote, nil)

		crops.On("List", mock.Anything, mock.Anything).Return([]*entities.Crop{{ID: "potato", Name: "Potato"}}, nil)
		remote.On("DiagnoseImage", mock.Anything, mock.Anything, "leaf.jpg", "Potato", "hi").Return(samplePayload(), nil)
		history.On("Save", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.DiagnoseImage(context.Background(), strings.NewReader("jpeg-bytes"), "leaf.jpg", "Potato", "hi")

		require.NoError(t, err)
		assert.Equal(t, "potato", result.CropID)
		assert.Equal(t, "Late Blight", result.Conditions[0].Name)
	})

	t.Run("resolves crop by hindi name case-insensitively", func(t *testing.T) {
		crops := new(MockCropRepository)
		history := new(MockHistoryRepository)
		remote := new(MockRemoteProvider)
		svc := newDiagnosisService(crops, new(MockDiseaseRepository), history, remote, nil)

		maize := &entities.Crop{ID: "maize", Name: "Maize", NameHindi: "Makka"}
		crops.On("List", mock.Anything, mock.Anything).Return([]*entities.Crop{maize}, nil)
		remote.On("DiagnoseImage", mock.Anything, mock.Anything, "leaf.jpg", "MAKKA", "hi").Return(samplePayload(), nil)
		history.On("Save", mock.Anything, mock.Anything).Return(nil)

		result, err := svc.DiagnoseImage(context.Background(), strings.NewReader("jpeg-bytes"), "leaf.jpg", "MAKKA", "hi")

		require.NoError(t, err)
		assert.Equal(t, "maize", result.CropID)
	})

	t.Run("remote failure propagates", func(t *testing.T) {
		remote := new(MockRemoteProvider)
		svc := newDiagnosisService(new(MockCropRepository), new(MockDiseaseRepository), new(MockHistoryRepository), remote, nil)

		remote.On("DiagnoseImage", mock.Anything, mock.Anything, "leaf.jpg", "", "").
			Return(nil, apperrors.NewExternalError("diagnosis API unavailable", nil))

		_, err := svc.DiagnoseImage(context.Background(), strings.NewReader("jpeg-bytes"), "leaf.jpg", "", "")

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternal))
	})

	t.Run("nil image is rejected", func(t *testing.T) {
		svc := newDiagnosisService(new(MockCropRepository), new(MockDiseaseRepository), new(MockHistoryRepository), new(MockRemoteProvider), nil)

		_, err := svc.DiagnoseImage(context.Background(), nil, "leaf.jpg", "", "")

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})
}

func TestDeleteHistoryEntry(t *testing.T) {
	history := new(MockHistoryRepository)
	bus := new(MockEventBus)
	svc := newDiagnosisService(new(MockCropRepository), new(MockDiseaseRepository), history, nil, bus)

	history.On("Delete", mock.Anything, "diag-1").Return(nil)
	bus.On("Publish", mock.Anything, providers.EventChannelDiagnoses, mock.MatchedBy(func(e *entities.DiagnosisEvent) bool {
		return e.Type == entities.EventDiagnosisDeleted && e.DiagnosisID == "diag-1"
	})).Return(nil)

	require.NoError(t, svc.DeleteHistoryEntry(context.Background(), "diag-1"))
	history.AssertExpectations(t)
	bus.AssertExpectations(t)
}
