package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DiagnosisConfig(t *testing.T) {
	os.Setenv("DIAGNOSIS_MATCH_THRESHOLD", "0.45")
	os.Setenv("DIAGNOSIS_HISTORY_LIMIT", "50")
	defer func() {
		os.Unsetenv("DIAGNOSIS_MATCH_THRESHOLD")
		os.Unsetenv("DIAGNOSIS_HISTORY_LIMIT")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 0.45, cfg.Diagnosis.MatchThreshold)
	assert.Equal(t, 50, cfg.Diagnosis.HistoryLimit)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("DIAGNOSIS_MATCH_THRESHOLD")
	os.Unsetenv("DIAGNOSIS_HISTORY_LIMIT")
	os.Unsetenv("DIAGNOSIS_API_BASE_URL")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 0.3, cfg.Diagnosis.MatchThreshold)
	assert.Equal(t, 100, cfg.Diagnosis.HistoryLimit)
	assert.Equal(t, "https://api.fasalrakshak.in/v1", cfg.DiagnosisAPI.BaseURL)
	assert.Equal(t, 60, cfg.DiagnosisAPI.TimeoutSeconds)
}

func TestLoad_InvalidFloatFallsBack(t *testing.T) {
	os.Setenv("DIAGNOSIS_MATCH_THRESHOLD", "not-a-number")
	defer os.Unsetenv("DIAGNOSIS_MATCH_THRESHOLD")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Diagnosis.MatchThreshold)
}
