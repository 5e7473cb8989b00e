package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		val      any
		expected string
	}{
		{name: "string", val: "INV-1", expected: "INV-1"},
		{name: "bytes", val: []byte("INV-2"), expected: "INV-2"},
		{name: "float without exponent", val: 100.5, expected: "100.5"},
		{name: "large float", val: 1234567.89, expected: "1234567.89"},
		{name: "int64", val: int64(42), expected: "42"},
		{name: "int", val: 7, expected: "7"},
		{name: "bool true", val: true, expected: "1"},
		{name: "bool false", val: false, expected: "0"},
		{name: "time", val: time.Date(2025, 12, 1, 13, 45, 0, 0, time.UTC), expected: "2025-12-01 13:45:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToString(tt.val))
		})
	}
}
