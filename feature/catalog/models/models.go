package models

// Summary contains aggregate counts for a loaded catalog.
type Summary struct {
	Source         string `json:"source"`
	Elements       int    `json:"elements"`
	AqueousSpecies int    `json:"aqueous_species"`
	GaseousSpecies int    `json:"gaseous_species"`
	MineralSpecies int    `json:"mineral_species"`
	MasterSpecies  int    `json:"master_species"`
	GeneratedAt    string `json:"generated_at"`
}

// SpeciesDetail is the detailed view of a single species.
type SpeciesDetail struct {
	// Name is the source-format species name.
	Name string `json:"name"`

	// CanonicalName is the externally-used name form (aqueous only).
	CanonicalName string `json:"canonical_name,omitempty"`

	// Kind is "aqueous", "gaseous" or "mineral".
	Kind string `json:"kind"`

	// Charge is the ionic charge (aqueous only).
	Charge float64 `json:"charge"`

	// Elements maps element symbols to stoichiometric coefficients.
	Elements map[string]float64 `json:"elements"`

	// ThermoKind is the active thermodynamic-data variant.
	ThermoKind string `json:"thermo_kind"`

	// LogK is the equilibrium constant at reference temperature, when the
	// species carries source-native parameters.
	LogK float64 `json:"log_k"`

	// DeltaH is the reaction enthalpy proxy in kJ/mol.
	DeltaH float64 `json:"delta_h"`

	// Master indicates the species is a declared master species.
	Master bool `json:"master"`

	// Products lists the species whose reactions consume this master
	// species. Only populated for master species.
	Products []string `json:"products,omitempty"`
}

// MasterEntry is one row of the master-species listing.
type MasterEntry struct {
	Name          string   `json:"name"`
	CanonicalName string   `json:"canonical_name"`
	Products      []string `json:"products"`
}
