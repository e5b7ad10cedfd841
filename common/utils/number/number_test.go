package number

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-2, 0, 1))
	assert.Equal(t, 1.0, Clamp(7, 0, 1))
}

func TestWrapToPi(t *testing.T) {
	testCases := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"zero", 0, 0},
		{"pi stays pi", math.Pi, math.Pi},
		{"minus pi flips", -math.Pi, math.Pi},
		{"three pi", 3 * math.Pi, math.Pi},
		{"past pi", math.Pi + 0.5, -math.Pi + 0.5},
		{"past minus pi", -math.Pi - 0.5, math.Pi - 0.5},
		{"full turn", 2 * math.Pi, 0},
	}

	for _, testCase := range testCases {
		assert.InDelta(t, testCase.expected, WrapToPi(testCase.angle), 1e-9, testCase.name)
	}
}

func TestWrapToTwoPi(t *testing.T) {
	testCases := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"zero", 0, 0},
		{"negative quarter", -math.Pi / 2, 3 * math.Pi / 2},
		{"full turn", 2 * math.Pi, 0},
		{"past full turn", 2*math.Pi + 1, 1},
	}

	for _, testCase := range testCases {
		assert.InDelta(t, testCase.expected, WrapToTwoPi(testCase.angle), 1e-9, testCase.name)
	}
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(42))
	assert.Equal(t, -1.0, Sign(-0.001))
	assert.Equal(t, 0.0, Sign(0))
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(0))
	assert.True(t, IsZero(1e-12))
	assert.False(t, IsZero(0.001))
}

func TestToFixed(t *testing.T) {
	assert.Equal(t, 1.235, ToFixed(1.23456, 3))
	assert.Equal(t, 1.234, ToFixed(1.2344, 3))
}
