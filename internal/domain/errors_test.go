package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertionError(t *testing.T) {
	tests := []struct {
		name    string
		check   string
		message string
		wantMsg string
	}{
		{
			name:    "missing interactions",
			check:   "called-twice",
			message: "wanted 2 interactions but recorded 0",
			wantMsg: "verification failed: check=called-twice, wanted 2 interactions but recorded 0",
		},
		{
			name:    "unexpected interaction",
			check:   "no-more-interactions",
			message: "unexpected call to Send",
			wantMsg: "verification failed: check=no-more-interactions, unexpected call to Send",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAssertionError(tt.check, tt.message)

			assert.Equal(t, tt.wantMsg, err.Error(), "Error message mismatch")
			assert.Equal(t, tt.check, err.Check, "Check mismatch")
			assert.Equal(t, tt.message, err.Message, "Message mismatch")
		})
	}
}

func TestAssertionError_IdentityPreserved(t *testing.T) {
	// The engine propagates assertion errors unchanged, so identity
	// comparisons must hold for the caller.
	err := NewAssertionError("called-twice", "wanted 2 interactions but recorded 1")
	var observed error = err

	assert.Same(t, err, observed, "assertion errors should survive propagation by identity")
}
