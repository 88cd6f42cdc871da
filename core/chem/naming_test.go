package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeciesCharge(t *testing.T) {
	cases := []struct {
		name   string
		charge float64
	}{
		{"Ca+2", 2},
		{"Na+", 1},
		{"Cl-", -1},
		{"SO4-2", -2},
		{"Fe+3", 3},
		{"PO4-3", -3},
		{"CO2", 0},
		{"H2O", 0},
		{"CaCO3", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.charge, SpeciesCharge(tc.name))
		})
	}
}

func TestSpeciesCharge_Clamping(t *testing.T) {
	// A bare sign carries no digits but still denotes a unit charge.
	assert.Equal(t, float64(-1), SpeciesCharge("e-"))
	assert.Equal(t, float64(1), SpeciesCharge("H+"))
}

func TestCanonicalName(t *testing.T) {
	cases := []struct {
		name      string
		canonical string
	}{
		{"Ca+2", "Ca++"},
		{"Na+", "Na+"},
		{"Cl-", "Cl-"},
		{"SO4-2", "SO4--"},
		{"Fe+3", "Fe+++"},
		{"CO2", "CO2(aq)"},
		{"SiO2", "SiO2(aq)"},
		{"H2O", "H2O(l)"},
		{"CH4", "Methane(aq)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.canonical, CanonicalName(tc.name))
		})
	}
}
