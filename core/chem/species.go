package chem

// SpeciesKind identifies the phase kind of a species.
type SpeciesKind int

const (
	// KindAqueous is a dissolved species.
	KindAqueous SpeciesKind = iota

	// KindGaseous is a gas-phase species.
	KindGaseous

	// KindMineral is a solid-phase species.
	KindMineral
)

// String returns a short label for the species kind.
func (k SpeciesKind) String() string {
	switch k {
	case KindAqueous:
		return "aqueous"
	case KindGaseous:
		return "gaseous"
	case KindMineral:
		return "mineral"
	default:
		return "unknown"
	}
}

// AqueousSpecies is a dissolved species with an electrical charge.
type AqueousSpecies struct {
	// Name is the species name in source-format notation (charge as
	// trailing sign characters, e.g. "SO4-2").
	Name string `json:"name"`

	// Elements maps each constituent element to its stoichiometric
	// coefficient.
	Elements ElementMap `json:"elements"`

	// Charge is the electrical charge of the species.
	Charge float64 `json:"charge"`

	// Thermo is the active thermodynamic-data variant.
	Thermo ThermoData `json:"thermo"`
}

// Clone returns a deep copy of the species.
func (s AqueousSpecies) Clone() AqueousSpecies {
	s.Elements = s.Elements.Clone()
	s.Thermo = s.Thermo.Clone()
	return s
}

// GaseousSpecies is a gas-phase species.
type GaseousSpecies struct {
	Name     string     `json:"name"`
	Elements ElementMap `json:"elements"`
	Thermo   ThermoData `json:"thermo"`
}

// Clone returns a deep copy of the species.
func (s GaseousSpecies) Clone() GaseousSpecies {
	s.Elements = s.Elements.Clone()
	s.Thermo = s.Thermo.Clone()
	return s
}

// MineralSpecies is a solid-phase species.
type MineralSpecies struct {
	Name     string     `json:"name"`
	Elements ElementMap `json:"elements"`
	Thermo   ThermoData `json:"thermo"`
}

// Clone returns a deep copy of the species.
func (s MineralSpecies) Clone() MineralSpecies {
	s.Elements = s.Elements.Clone()
	s.Thermo = s.Thermo.Clone()
	return s
}
