package catalog

import (
	"testing"

	"thermodb/core/chem"
	"thermodb/core/phreeqc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New()
	require.NoError(t, c.Load(recordSource{set: testRecords()}))
	return c
}

func refAqueous(name string, logK float64) chem.AqueousSpecies {
	return chem.AqueousSpecies{
		Name:   name,
		Charge: chem.SpeciesCharge(name),
		Thermo: chem.NewPhreeqcThermoData(chem.PhreeqcParams{LogK: logK}),
	}
}

func TestReconcile_DirectMatches(t *testing.T) {
	c := loadTestCatalog(t)

	reference := chem.NewDatabase()
	reference.AddAqueousSpecies(refAqueous("H+", 1.1))
	reference.AddAqueousSpecies(refAqueous("Ca++", 2.2))
	reference.AddAqueousSpecies(refAqueous("CO3--", 3.3))

	merged, report, err := c.Reconcile(reference)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.Masters)
	assert.Equal(t, 3, report.Summary.DirectMatches)
	assert.Equal(t, 0, report.Summary.Substitutes)
	assert.Equal(t, 0, report.Summary.Unresolved)
	assert.Equal(t, []string{"H+", "Ca+2", "CO3-2"}, report.Primary)
	assert.Empty(t, report.Unresolved)

	t.Run("NameRestored", func(t *testing.T) {
		sp, ok := merged.AqueousSpecies("Ca+2")
		require.True(t, ok)
		require.Equal(t, chem.ThermoPhreeqc, sp.Thermo.Kind)
		assert.Equal(t, 2.2, sp.Thermo.Phreeqc.LogK)
		assert.False(t, merged.ContainsAqueousSpecies("Ca++"))
	})

	t.Run("NonMastersPassThrough", func(t *testing.T) {
		sp, ok := merged.AqueousSpecies("HCO3-")
		require.True(t, ok)
		assert.Equal(t, 10.329, sp.Thermo.Phreeqc.LogK)
	})
}

func TestReconcile_SubstituteClaims(t *testing.T) {
	c := loadTestCatalog(t)

	// The reference knows none of the masters directly but carries Calcite,
	// a product of both Ca+2 and CO3-2. Only the first master in declaration
	// order may claim it.
	reference := chem.NewDatabase()
	reference.AddAqueousSpecies(refAqueous("H+", 1.1))
	reference.AddMineralSpecies(chem.MineralSpecies{
		Name:   "Calcite",
		Thermo: chem.NewMineralThermoData(chem.PhreeqcParams{LogK: -8.3}, 37e-6),
	})

	merged, report, err := c.Reconcile(reference)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.DirectMatches)
	assert.Equal(t, 1, report.Summary.Substitutes)
	assert.Equal(t, 1, report.Summary.Unresolved)
	assert.Equal(t, []string{"H+", "Calcite"}, report.Primary)
	assert.Equal(t, []string{"CO3-2"}, report.Unresolved)

	t.Run("SubstituteTakesReferenceData", func(t *testing.T) {
		m, ok := merged.MineralSpecies("Calcite")
		require.True(t, ok)
		assert.Equal(t, -8.3, m.Thermo.Phreeqc.LogK)
	})

	t.Run("UnresolvedDowngradedToDefaultHKF", func(t *testing.T) {
		sp, ok := merged.AqueousSpecies("CO3-2")
		require.True(t, ok)
		assert.Equal(t, chem.ThermoHKF, sp.Thermo.Kind)
		require.NotNil(t, sp.Thermo.HKF)
		assert.Equal(t, chem.HKFParams{}, *sp.Thermo.HKF)
		// identity is preserved
		assert.Equal(t, float64(-2), sp.Charge)
	})
}

func TestReconcile_ClaimUniqueness(t *testing.T) {
	c := loadTestCatalog(t)

	// CO2(g) is a product of both H+ and CO3-2, Calcite of both Ca+2 and
	// CO3-2. Earlier masters claim first and each candidate is claimed at
	// most once, so CO3-2 finds all its products taken.
	reference := chem.NewDatabase()
	reference.AddGaseousSpecies(chem.GaseousSpecies{
		Name:   "CO2(g)",
		Thermo: chem.NewPhreeqcThermoData(chem.PhreeqcParams{LogK: -1.4}),
	})
	reference.AddMineralSpecies(chem.MineralSpecies{
		Name:   "Calcite",
		Thermo: chem.NewMineralThermoData(chem.PhreeqcParams{LogK: -8.3}, 37e-6),
	})

	_, report, err := c.Reconcile(reference)
	require.NoError(t, err)

	assert.Equal(t, []string{"CO2(g)", "Calcite"}, report.Primary)
	assert.Equal(t, []string{"CO3-2"}, report.Unresolved)
	assert.Equal(t, 2, report.Summary.Substitutes)
}

func TestReconcile_SubstituteMasterKeepsSourceData(t *testing.T) {
	// Fe+2 is the only master; the reference knows Fe+++ but not Fe++. The
	// substitute Fe+3 takes the reference data while Fe+2 itself passes
	// through with its source-native data untouched.
	set := &phreeqc.RecordSet{
		Elements: []phreeqc.ElementRecord{
			{Name: "Fe", MolarMass: 55.845},
		},
		Species: []phreeqc.SpeciesRecord{
			{
				Name:   "Fe+2",
				Charge: 2,
				Elements: []phreeqc.CompositionEntry{
					{Element: "Fe", Coefficient: 1},
				},
				Reaction: []phreeqc.ReactionEntry{
					{Species: "Fe+3", Coefficient: -1},
					{Species: "e-", Coefficient: -1},
				},
				LogK: 13.02,
			},
			{
				Name:   "Fe+3",
				Charge: 3,
				Elements: []phreeqc.CompositionEntry{
					{Element: "Fe", Coefficient: 1},
				},
				Reaction: []phreeqc.ReactionEntry{
					{Species: "Fe+2", Coefficient: -1},
					{Species: "e-", Coefficient: 1},
				},
				LogK: -13.02,
			},
		},
		Masters: []string{"Fe+2"},
	}
	c := New()
	require.NoError(t, c.Load(recordSource{set: set}))

	reference := chem.NewDatabase()
	reference.AddAqueousSpecies(refAqueous("Fe+++", 7.7))

	merged, report, err := c.Reconcile(reference)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fe+3"}, report.Primary)
	assert.Empty(t, report.Unresolved)
	assert.Equal(t, 1, report.Summary.Substitutes)

	substitute, ok := merged.AqueousSpecies("Fe+3")
	require.True(t, ok)
	assert.Equal(t, 7.7, substitute.Thermo.Phreeqc.LogK)

	master, ok := merged.AqueousSpecies("Fe+2")
	require.True(t, ok)
	require.Equal(t, chem.ThermoPhreeqc, master.Thermo.Kind)
	assert.Equal(t, 13.02, master.Thermo.Phreeqc.LogK)
}

func TestReconcile_AllUnresolved(t *testing.T) {
	c := loadTestCatalog(t)

	merged, report, err := c.Reconcile(chem.NewDatabase())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.Unresolved)
	assert.Empty(t, report.Primary)

	for _, name := range []string{"H+", "Ca+2", "CO3-2"} {
		sp, ok := merged.AqueousSpecies(name)
		require.True(t, ok)
		assert.Equal(t, chem.ThermoHKF, sp.Thermo.Kind, name)
	}

	// Non-master species keep their source-native data.
	sp, ok := merged.AqueousSpecies("HCO3-")
	require.True(t, ok)
	assert.Equal(t, chem.ThermoPhreeqc, sp.Thermo.Kind)
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	c := loadTestCatalog(t)

	reference := chem.NewDatabase()
	reference.AddAqueousSpecies(refAqueous("Ca++", 2.2))

	merged, _, err := c.Reconcile(reference)
	require.NoError(t, err)

	out, ok := merged.AqueousSpecies("Ca+2")
	require.True(t, ok)
	out.Thermo.Phreeqc.LogK = 99

	refSp, ok := reference.AqueousSpecies("Ca++")
	require.True(t, ok)
	assert.Equal(t, 2.2, refSp.Thermo.Phreeqc.LogK)
	assert.Equal(t, "Ca++", refSp.Name)
}
