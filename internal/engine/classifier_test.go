package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahrav/go-overtime/internal/domain"
)

// plainCheck does not declare the RecoveryAware capability.
type plainCheck struct{}

func (plainCheck) Name() string { return "plain" }

func (plainCheck) Verify(context.Context, *domain.Data) error { return nil }

func TestCanRecoverFromFailure_DefaultsToRecoverable(t *testing.T) {
	// Given a check that declares no recoverability capability
	// Then its failures are presumed transient
	assert.True(t, CanRecoverFromFailure(plainCheck{}),
		"checks without the capability should default to recoverable")
}

func TestCanRecoverFromFailure_HonorsCapabilityTag(t *testing.T) {
	tests := []struct {
		name          string
		unrecoverable bool
		want          bool
	}{
		{"recoverable tag", false, true},
		{"permanent tag", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := NewMockCheck()
			check.Unrecoverable = tt.unrecoverable

			assert.Equal(t, tt.want, CanRecoverFromFailure(check),
				"classification should follow the declared capability")
		})
	}
}
