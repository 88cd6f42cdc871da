package phreeqc

// CompositionEntry is one (element name, coefficient) pair of a species
// formula.
type CompositionEntry struct {
	Element     string
	Coefficient float64
}

// ReactionEntry is one (participant name, coefficient) pair of a reaction
// equation. Negative coefficients denote reactants, positive denote
// products.
type ReactionEntry struct {
	Species     string
	Coefficient float64
}

// ElementRecord is a parsed element declaration.
type ElementRecord struct {
	// Name is the element symbol.
	Name string

	// MolarMass is the gram formula weight in grams per mole.
	MolarMass float64
}

// SpeciesRecord is a parsed aqueous species definition.
type SpeciesRecord struct {
	// Name is the source-format species name (charge as trailing signs).
	Name string

	// Charge is the ionic charge inferred from the name.
	Charge float64

	// Elements is the elemental composition derived from the formula.
	Elements []CompositionEntry

	// Reaction is the association reaction, excluding the species itself.
	// Empty for identity reactions (master species with no decomposition).
	Reaction []ReactionEntry

	// LogK is the equilibrium constant at the reference temperature.
	LogK float64

	// DeltaH is the reaction enthalpy proxy in kJ/mol.
	DeltaH float64

	// Analytic holds the six analytic log K temperature coefficients.
	Analytic [6]float64
}

// PhaseRecord is a parsed gas or mineral definition.
type PhaseRecord struct {
	// Name is the phase name (gases carry a "(g)" suffix by convention).
	Name string

	// Gas is the gas/mineral discriminant derived from the name.
	Gas bool

	// Elements is the elemental composition of the phase formula.
	Elements []CompositionEntry

	// Reaction is the dissolution reaction, excluding the phase itself.
	Reaction []ReactionEntry

	LogK     float64
	DeltaH   float64
	Analytic [6]float64

	// MolarVolume is the -Vm value in cubic centimeters per mole.
	MolarVolume float64
}

// RecordSet is the complete parsed content of one database file.
type RecordSet struct {
	// Elements lists declared elements in declaration order.
	Elements []ElementRecord

	// Species lists aqueous species definitions in declaration order.
	Species []SpeciesRecord

	// Phases lists gas and mineral definitions in declaration order.
	Phases []PhaseRecord

	// Masters lists master species names in declaration order.
	Masters []string
}

// Source supplies parsed records. Implementations report structural errors
// through the returned error; a non-nil error means the record set must not
// be used.
type Source interface {
	Records() (*RecordSet, error)
}
