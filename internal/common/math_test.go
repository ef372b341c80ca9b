package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"positive number", 5, 5},
		{"negative number", -5, 5},
		{"zero", 0, 0},
		{"large negative", -1000000, 1000000},
		{"min int special case", math.MinInt32 + 1, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Abs(tt.input))
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi int
		expected  int
	}{
		{"inside", 3, 0, 5, 3},
		{"below", -2, 0, 5, 0},
		{"above", 9, 0, 5, 5},
		{"at bounds", 5, 5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.x, tt.lo, tt.hi))
		})
	}
}

func TestChebyshevDistance(t *testing.T) {
	assert.Equal(t, 0, ChebyshevDistance(2, 2, 2, 2))
	assert.Equal(t, 7, ChebyshevDistance(0, 0, 7, 7))
	assert.Equal(t, 7, ChebyshevDistance(0, 0, 7, 0))
	assert.Equal(t, 4, ChebyshevDistance(0, 0, 4, 2))
	assert.Equal(t, 3, ChebyshevDistance(-1, 5, 2, 3))
}
