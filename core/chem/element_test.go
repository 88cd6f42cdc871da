package chem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementMap_MarshalJSON(t *testing.T) {
	m := ElementMap{
		{Name: "Ca", MolarMass: 40.08}: 1,
		{Name: "O", MolarMass: 15.999}: 3,
		{Name: "C", MolarMass: 12.011}: 1,
	}

	payload, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Ca": 1, "C": 1, "O": 3}`, string(payload))

	t.Run("Empty", func(t *testing.T) {
		payload, err := json.Marshal(ElementMap{})
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(payload))
	})
}

func TestAqueousSpecies_MarshalJSON(t *testing.T) {
	s := AqueousSpecies{
		Name:     "Ca+2",
		Charge:   2,
		Elements: ElementMap{{Name: "Ca", MolarMass: 40.08}: 1},
		Thermo:   NewDefaultHKFThermoData(),
	}

	payload, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"elements":{"Ca":1}`)
	assert.Contains(t, string(payload), `"name":"Ca+2"`)
}
