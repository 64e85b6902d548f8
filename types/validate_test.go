package types_test

import (
	"testing"

	"github.com/krisalay/policy-cache/types"
	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	var nilSlice []byte
	zero := 0

	tests := []struct {
		name  string
		key   string
		value any
		want  bool
	}{
		{"string value", "k", "v", true},
		{"int value", "k", 1, true},
		{"zero int is a real value", "k", 0, true},
		{"false is a real value", "k", false, true},
		{"pointer", "k", &zero, true},
		{"struct", "k", struct{}{}, true},
		{"empty key", "", "v", false},
		{"nil value", "k", nil, false},
		{"empty string value", "k", "", false},
		{"typed nil pointer", "k", nilPtr, false},
		{"nil map", "k", nilMap, false},
		{"nil slice", "k", nilSlice, false},
		{"empty slice", "k", []int{}, false},
		{"empty map", "k", map[string]int{}, false},
		{"non-empty slice", "k", []int{1}, true},
		{"non-empty map", "k", map[string]int{"a": 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.Valid(tt.key, tt.value))
		})
	}
}
