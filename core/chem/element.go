package chem

import "encoding/json"

// Element represents a chemical element with its molar mass.
// Elements are immutable values; the name is the unique key.
type Element struct {
	// Name is the element symbol as declared by the source (e.g. "Ca", "Fe").
	Name string `json:"name"`

	// MolarMass is the gram formula weight in grams per mole.
	MolarMass float64 `json:"molar_mass"`
}

// ElementMap maps elements to their stoichiometric coefficients within a
// species formula. Coefficients may be fractional.
type ElementMap map[Element]float64

// MarshalJSON encodes the map keyed by element symbol, e.g. {"Ca": 1}.
// Struct-keyed maps are not encodable by encoding/json directly.
func (m ElementMap) MarshalJSON() ([]byte, error) {
	bySymbol := make(map[string]float64, len(m))
	for e, c := range m {
		bySymbol[e.Name] = c
	}
	return json.Marshal(bySymbol)
}

// Clone returns an independent copy of the element map.
func (m ElementMap) Clone() ElementMap {
	if m == nil {
		return nil
	}
	out := make(ElementMap, len(m))
	for e, c := range m {
		out[e] = c
	}
	return out
}
