package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fasalrakshak/backend/internal/application/services"
	"github.com/fasalrakshak/backend/internal/domain/entities"
)

var fixedNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func diseaseWithTreatments(id string) *entities.Disease {
	return &entities.Disease{
		ID: id,
		OrganicTreatments: []entities.Treatment{
			{Name: "Neem Oil", NameHindi: "नीम का तेल", Type: entities.TreatmentOrganic, Description: "Spray neem oil weekly", DescriptionHindi: "साप्ताहिक नीम तेल छिड़कें"},
		},
		ChemicalTreatments: []entities.Treatment{
			{Name: "Mancozeb", NameHindi: "मैंकोजेब", Type: entities.TreatmentChemical, Description: "Apply fungicide"},
		},
		PreventiveMeasures:      []string{"Use resistant varieties"},
		PreventiveMeasuresHindi: []string{"प्रतिरोधी किस्में उगाएं"},
	}
}

func TestRecommend_TreatmentPrefersOrganic(t *testing.T) {
	svc := services.NewRecommendationServiceWithClock(fixedClock)
	disease := diseaseWithTreatments("d1")

	recs := svc.Recommend(
		[]entities.DiagnosedCondition{{DiseaseID: "d1", Severity: entities.SeverityLow, Confidence: 0.5}},
		map[string]*entities.Disease{"d1": disease},
	)

	require.Len(t, recs, 3)
	assert.Equal(t, "Apply Neem Oil", recs[0].Title)
	assert.Equal(t, "नीम का तेल लगाएं", recs[0].TitleHindi)
	assert.Equal(t, 1, recs[0].Priority)
	assert.Equal(t, entities.ActionScheduled, recs[0].ActionType)
}

func TestRecommend_ChemicalFallback(t *testing.T) {
	svc := services.NewRecommendationServiceWithClock(fixedClock)
	disease := diseaseWithTreatments("d1")
	disease.OrganicTreatments = nil

	recs := svc.Recommend(
		[]entities.DiagnosedCondition{{DiseaseID: "d1", Severity: entities.SeverityHigh, Confidence: 0.9}},
		map[string]*entities.Disease{"d1": disease},
	)

	require.NotEmpty(t, recs)
	assert.Equal(t, "Apply Mancozeb", recs[0].Title)
	assert.Equal(t, entities.ActionImmediate, recs[0].ActionType)
}

func TestRecommend_SeverityDrivesActionType(t *testing.T) {
	svc := services.NewRecommendationServiceWithClock(fixedClock)
	disease := diseaseWithTreatments("d1")
	conditionsFor := func(sev entities.DiseaseSeverity) []entities.DiagnosedCondition {
		return []entities.DiagnosedCondition{{DiseaseID: "d1", Severity: sev, Confidence: 0.8}}
	}
	catalog := map[string]*entities.Disease{"d1": disease}

	assert.Equal(t, entities.ActionScheduled, svc.Recommend(conditionsFor(entities.SeverityLow), catalog)[0].ActionType)
	assert.Equal(t, entities.ActionScheduled, svc.Recommend(conditionsFor(entities.SeverityModerate), catalog)[0].ActionType)
	assert.Equal(t, entities.ActionImmediate, svc.Recommend(conditionsFor(entities.SeverityHigh), catalog)[0].ActionType)
	assert.Equal(t, entities.ActionImmediate, svc.Recommend(conditionsFor(entities.SeverityCritical), catalog)[0].ActionType)
}

func TestRecommend_PreventiveAndMonitoring(t *testing.T) {
	svc := services.NewRecommendationServiceWithClock(fixedClock)
	disease := diseaseWithTreatments("d1")

	recs := svc.Recommend(
		[]entities.DiagnosedCondition{{DiseaseID: "d1", Severity: entities.SeverityModerate, Confidence: 0.6}},
		map[string]*entities.Disease{"d1": disease},
	)

	require.Len(t, recs, 3)

	preventive := recs[1]
	assert.Equal(t, 4, preventive.Priority)
	assert.Equal(t, entities.ActionPreventive, preventive.ActionType)
	assert.Equal(t, "Prevent spread", preventive.Title)
	assert.Equal(t, "फैलाव रोकें", preventive.TitleHindi)
	assert.Equal(t, "Use resistant varieties", preventive.Description)
	assert.Equal(t, "प्रतिरोधी किस्में उगाएं", preventive.DescriptionHindi)

	monitoring := recs[2]
	assert.Equal(t, 10, monitoring.Priority)
	assert.Equal(t, entities.ActionMonitoring, monitoring.ActionType)
	require.NotNil(t, monitoring.Deadline)
	assert.Equal(t, fixedNow.AddDate(0, 0, 4), *monitoring.Deadline)
}

func TestRecommend_TopThreeConditionsOnly(t *testing.T) {
	svc := services.NewRecommendationServiceWithClock(fixedClock)
	catalog := map[string]*entities.Disease{}
	var conditions []entities.DiagnosedCondition
	for _, id := range []string{"d1", "d2", "d3", "d4"} {
		d := diseaseWithTreatments(id)
		d.PreventiveMeasures = nil
		catalog[id] = d
		conditions = append(conditions, entities.DiagnosedCondition{DiseaseID: id, Severity: entities.SeverityLow, Confidence: 0.5})
	}

	recs := svc.Recommend(conditions, catalog)

	// three treatment actions plus monitoring; the fourth condition
	// contributes nothing
	require.Len(t, recs, 4)
	assert.Equal(t, []int{1, 2, 3, 10}, []int{recs[0].Priority, recs[1].Priority, recs[2].Priority, recs[3].Priority})
}

func TestRecommend_SortedByPriority(t *testing.T) {
	svc := services.NewRecommendationServiceWithClock(fixedClock)
	catalog := map[string]*entities.Disease{
		"d1": diseaseWithTreatments("d1"),
		"d2": diseaseWithTreatments("d2"),
	}

	recs := svc.Recommend([]entities.DiagnosedCondition{
		{DiseaseID: "d1", Severity: entities.SeverityHigh, Confidence: 0.9},
		{DiseaseID: "d2", Severity: entities.SeverityLow, Confidence: 0.4},
	}, catalog)

	// priorities: 1, 2 (treatments), 4, 5 (preventive), 10 (monitoring)
	require.Len(t, recs, 5)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i].Priority, recs[i-1].Priority)
	}
}

func TestRecommend_EmptyConditions(t *testing.T) {
	svc := services.NewRecommendationServiceWithClock(fixedClock)
	assert.Empty(t, svc.Recommend(nil, nil))
}

func TestRecommend_UnknownDiseaseSkipped(t *testing.T) {
	svc := services.NewRecommendationServiceWithClock(fixedClock)

	recs := svc.Recommend(
		[]entities.DiagnosedCondition{{DiseaseID: "missing", Severity: entities.SeverityHigh, Confidence: 0.9}},
		map[string]*entities.Disease{},
	)

	// only the monitoring follow-up survives
	require.Len(t, recs, 1)
	assert.Equal(t, entities.ActionMonitoring, recs[0].ActionType)
}
