package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fasalrakshak/backend/internal/domain/entities"
	"github.com/fasalrakshak/backend/internal/domain/providers"
	"github.com/fasalrakshak/backend/internal/domain/repositories"
	apperrors "github.com/fasalrakshak/backend/pkg/errors"
)

// DiagnosisService orchestrates the three diagnosis paths (symptom
// checklist, classifier output, remote image analysis), persists results
// to history and publishes lifecycle events.
type DiagnosisService struct {
	crops       repositories.CropRepository
	diseases    repositories.DiseaseRepository
	history     repositories.DiagnosisHistoryRepository
	remote      providers.RemoteDiagnosisProvider
	eventBus    providers.EventBus
	matcher     *SymptomMatchService
	classifier  *ClassificationService
	scorer      *HealthScoreService
	recommender *RecommendationService
	normalizer  *RemoteNormalizerService
	now         func() time.Time
}

func NewDiagnosisService(
	crops repositories.CropRepository,
	diseases repositories.DiseaseRepository,
	history repositories.DiagnosisHistoryRepository,
	remote providers.RemoteDiagnosisProvider,
	eventBus providers.EventBus,
	matcher *SymptomMatchService,
	classifier *ClassificationService,
	recommender *RecommendationService,
	normalizer *RemoteNormalizerService,
) *DiagnosisService {
	return &DiagnosisService{
		crops:       crops,
		diseases:    diseases,
		history:     history,
		remote:      remote,
		eventBus:    eventBus,
		matcher:     matcher,
		classifier:  classifier,
		scorer:      NewHealthScoreService(FieldImpactPolicy{}),
		recommender: recommender,
		normalizer:  normalizer,
		now:         time.Now,
	}
}

// DiagnoseBySymptoms runs the symptom-overlap path. An empty cropID
// matches against the whole disease catalog without crop context.
// Symptom IDs the catalog does not know are simply absent from every
// disease's symptom set, so they lower no score and raise no error.
func (s *DiagnosisService) DiagnoseBySymptoms(ctx context.Context, cropID string, symptomIDs []string) (*entities.DiagnosisResult, error) {
	var (
		crop     *entities.Crop
		diseases []*entities.Disease
		err      error
	)
	if cropID != "" {
		crop, err = s.crops.GetByID(ctx, cropID)
		if err != nil {
			return nil, err
		}
		diseases, err = s.diseases.ListForCrop(ctx, cropID)
	} else {
		diseases, err = s.diseases.List(ctx, repositories.DiseaseFilter{})
	}
	if err != nil {
		return nil, err
	}

	conditions := s.matcher.Match(crop, diseases, symptomIDs)
	result := s.buildResult(crop, conditions, byID(diseases))
	return result, s.finalize(ctx, result)
}

// DiagnoseByClassifications runs the classifier-mapping path. When
// cropID is empty the crop is inferred from the labels; when that also
// fails the diagnosis proceeds without crop context.
func (s *DiagnosisService) DiagnoseByClassifications(ctx context.Context, cropID string, classifications []Classification) (*entities.DiagnosisResult, error) {
	if len(classifications) == 0 {
		return nil, apperrors.NewValidationError("at least one classification is required")
	}

	diseases, err := s.diseases.List(ctx, repositories.DiseaseFilter{})
	if err != nil {
		return nil, err
	}

	var crop *entities.Crop
	if cropID != "" {
		crop, err = s.crops.GetByID(ctx, cropID)
		if err != nil {
			return nil, err
		}
	} else {
		allCrops, err := s.crops.List(ctx, repositories.CropFilter{})
		if err != nil {
			return nil, err
		}
		crop = s.classifier.IdentifyCrop(classifications, allCrops)
	}

	conditions := s.classifier.Map(crop, classifications, diseases)
	result := s.buildResult(crop, conditions, byID(diseases))
	return result, s.finalize(ctx, result)
}

// DiagnoseImage uploads a crop photo to the remote service and
// normalizes the response. A crop name hint, when given, also resolves
// the crop in the catalog for history tagging.
func (s *DiagnosisService) DiagnoseImage(ctx context.Context, image io.Reader, filename, cropName, language string) (*entities.DiagnosisResult, error) {
	if image == nil {
		return nil, apperrors.NewValidationError("image is required")
	}
	if s.remote == nil {
		return nil, apperrors.NewExternalError("image diagnosis is not configured", nil)
	}

	payload, err := s.remote.DiagnoseImage(ctx, image, filename, cropName, language)
	if err != nil {
		return nil, err
	}

	crop := s.resolveCropByName(ctx, cropName)
	result := s.normalizer.Normalize(payload, crop)
	return result, s.finalize(ctx, result)
}

// GetHistory lists stored diagnoses newest-first.
func (s *DiagnosisService) GetHistory(ctx context.Context, filter repositories.HistoryFilter) ([]*entities.DiagnosisResult, error) {
	return s.history.List(ctx, filter)
}

// GetHistoryEntry retrieves one stored diagnosis.
func (s *DiagnosisService) GetHistoryEntry(ctx context.Context, id string) (*entities.DiagnosisResult, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("id is required")
	}
	return s.history.GetByID(ctx, id)
}

// DeleteHistoryEntry removes one stored diagnosis and announces the
// deletion on the bus.
func (s *DiagnosisService) DeleteHistoryEntry(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewValidationError("id is required")
	}
	if err := s.history.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, &entities.DiagnosisEvent{
		ID:          uuid.New().String(),
		Type:        entities.EventDiagnosisDeleted,
		DiagnosisID: id,
		OccurredAt:  s.now(),
	})
	return nil
}

// buildResult assembles score and recommendations for a set of matched
// conditions. crop may be nil on the classifier path.
func (s *DiagnosisService) buildResult(crop *entities.Crop, conditions []entities.DiagnosedCondition, diseasesByID map[string]*entities.Disease) *entities.DiagnosisResult {
	result := &entities.DiagnosisResult{
		ID:              uuid.New().String(),
		Conditions:      conditions,
		HealthScore:     s.scorer.Score(conditions),
		Recommendations: s.recommender.Recommend(conditions, diseasesByID),
		DiagnosedAt:     s.now(),
	}
	if crop != nil {
		result.CropID = crop.ID
		result.CropName = crop.Name
	}
	return result
}

// finalize persists the result and publishes the completion event.
// Storage failures are returned; a bus failure only logs, since the
// diagnosis itself succeeded.
func (s *DiagnosisService) finalize(ctx context.Context, result *entities.DiagnosisResult) error {
	if err := s.history.Save(ctx, result); err != nil {
		return apperrors.NewInternalError("failed to save diagnosis to history", err)
	}
	s.publish(ctx, &entities.DiagnosisEvent{
		ID:          uuid.New().String(),
		Type:        entities.EventDiagnosisCompleted,
		DiagnosisID: result.ID,
		CropID:      result.CropID,
		HealthScore: result.HealthScore,
		Status:      result.HealthStatus(),
		OccurredAt:  s.now(),
	})
	return nil
}

func (s *DiagnosisService) publish(ctx context.Context, event *entities.DiagnosisEvent) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelDiagnoses, event); err != nil {
		log.Warn().Err(err).Str("event_type", string(event.Type)).Msg("Failed to publish diagnosis event")
	}
}

// resolveCropByName finds a catalog crop whose name matches the hint,
// case-insensitively. A miss is not an error.
func (s *DiagnosisService) resolveCropByName(ctx context.Context, name string) *entities.Crop {
	if name == "" {
		return nil
	}
	crops, err := s.crops.List(ctx, repositories.CropFilter{})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to list crops for name resolution")
		return nil
	}
	target := strings.ToLower(name)
	for _, crop := range crops {
		if strings.ToLower(crop.Name) == target || strings.ToLower(crop.NameHindi) == target {
			return crop
		}
	}
	return nil
}

func byID(diseases []*entities.Disease) map[string]*entities.Disease {
	m := make(map[string]*entities.Disease, len(diseases))
	for _, d := range diseases {
		m[d.ID] = d
	}
	return m
}
