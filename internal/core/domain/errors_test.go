package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUsage", ErrUsage},
		{"ErrFormat", ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrFormat_Wrapped(t *testing.T) {
	err := fmt.Errorf("decode results.json: %w", ErrFormat)

	assert.True(t, errors.Is(err, ErrFormat))
	assert.False(t, errors.Is(err, ErrUsage))
}
