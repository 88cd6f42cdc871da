package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitConversions(t *testing.T) {
	assert.InDelta(t, 36.934e-6, CubicCentimeterToCubicMeter(36.934), 1e-12)
	assert.InDelta(t, 4.184, KilocalorieToKilojoule(1), 1e-12)
	assert.InDelta(t, 298.15, CelsiusToKelvin(25), 1e-12)
	assert.InDelta(t, 1e5, BarToPascal(1), 1e-9)
}

func TestToFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"13.362", 13.362},
		{"-13.362", -13.362},
		{"  13.362 kcal", 13.362},
		{"-2", -2},
		{"+3", 3},
		{"1.5e-2", 0.015},
		{"1e5", 1e5},
		{"-", 0},
		{"+", 0},
		{"", 0},
		{"abc", 0},
		{"3abc", 3},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ToFloat(tc.in))
		})
	}
}
