package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-overtime/internal/domain"
	"github.com/ahrav/go-overtime/internal/engine"
)

func TestParseVerifyConfig_OverlaysDefaults(t *testing.T) {
	// Given configuration that only sets the duration
	raw := []byte("duration_ms: 250\n")

	// When parsing
	cfg, err := ParseVerifyConfig(raw)

	// Then unset fields keep their defaults
	require.NoError(t, err, "parsing should succeed")
	assert.Equal(t, DefaultPollingPeriodMs, cfg.PollingPeriodMs, "polling period should default")
	assert.Equal(t, 250, cfg.DurationMs, "duration should come from the file")
	assert.True(t, cfg.ReturnOnSuccess, "return-on-success should default to true")
	assert.Equal(t, 250*time.Millisecond, cfg.Duration(), "duration accessor should convert to time.Duration")
	assert.Equal(t, 10*time.Millisecond, cfg.PollingPeriod(), "polling accessor should convert to time.Duration")
}

func TestParseVerifyConfig_FullDocument(t *testing.T) {
	raw := []byte(`
polling_period_ms: 25
duration_ms: 5000
return_on_success: false
`)

	cfg, err := ParseVerifyConfig(raw)

	require.NoError(t, err, "parsing should succeed")
	assert.Equal(t, 25, cfg.PollingPeriodMs, "polling period should come from the file")
	assert.Equal(t, 5000, cfg.DurationMs, "duration should come from the file")
	assert.False(t, cfg.ReturnOnSuccess, "return-on-success should come from the file")
}

func TestParseVerifyConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"zero polling period", "polling_period_ms: 0\nduration_ms: 100\n"},
		{"negative duration", "duration_ms: -5\n"},
		{"polling period above cap", "polling_period_ms: 120000\nduration_ms: 100\n"},
		{"malformed yaml", "polling_period_ms: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVerifyConfig([]byte(tt.raw))
			assert.Error(t, err, "invalid configuration should be rejected")
		})
	}
}

func TestNewEngineFromConfig_BuildsWorkingEngine(t *testing.T) {
	// Given validated configuration and a check
	cfg, err := ParseVerifyConfig([]byte("polling_period_ms: 5\nduration_ms: 1000\n"))
	require.NoError(t, err, "parsing should succeed")
	check := engine.NewMockCheck()
	check.FailUntilAttempt = 1

	// When building and running the engine
	v, err := NewEngineFromConfig(cfg, check)
	require.NoError(t, err, "engine construction should succeed")
	err = v.Verify(context.Background(), domain.NewData())

	// Then the configured timing drives the verification
	require.NoError(t, err, "verification should succeed")
	assert.Equal(t, 5*time.Millisecond, v.PollingPeriod(), "polling period should match configuration")
	assert.Equal(t, time.Second, v.Timer().Duration(), "duration should match configuration")
	assert.Equal(t, 2, check.GetCallCount(), "check should have been polled to success")
}

func TestNewEngineFromConfig_RejectsNilCheck(t *testing.T) {
	cfg := DefaultVerifyConfig()
	_, err := NewEngineFromConfig(cfg, nil)
	assert.ErrorIs(t, err, domain.ErrNilCheck, "nil check should be rejected")
}
