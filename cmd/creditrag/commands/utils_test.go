// ABOUTME: Tests for shared CLI helpers
// ABOUTME: Covers argument validation edge cases

package commands

import (
	"strings"
	"testing"
)

func TestValidatePositiveInt(t *testing.T) {
	tests := []struct {
		name        string
		value       int
		expectError bool
	}{
		{"positive", 5, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePositiveInt(tt.value, "k")
			if tt.expectError && err == nil {
				t.Errorf("validatePositiveInt(%d) should fail", tt.value)
			}
			if !tt.expectError && err != nil {
				t.Errorf("validatePositiveInt(%d) error = %v", tt.value, err)
			}
		})
	}
}

func TestValidatePositiveInt_ErrorNamesParameter(t *testing.T) {
	err := validatePositiveInt(-1, "chunk-size")
	if err == nil {
		t.Fatal("Expected error for negative value")
	}
	if !strings.Contains(err.Error(), "chunk-size") {
		t.Errorf("Error should name the parameter: %v", err)
	}
}
