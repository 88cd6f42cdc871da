package chem

// ReactionTerm is a single participant of a reaction equation.
type ReactionTerm struct {
	// Species is the participant name in source-format notation.
	Species string `json:"species"`

	// Coefficient is the stoichiometric coefficient. Negative values denote
	// reactants, positive values denote products.
	Coefficient float64 `json:"coefficient"`
}

// ReactionEquation is an ordered list of participants describing how a
// species or phase decomposes into more elementary species. An empty
// equation means the species is itself elementary (a master species with no
// decomposition recorded).
type ReactionEquation []ReactionTerm

// Empty reports whether the equation has no participants.
func (e ReactionEquation) Empty() bool {
	return len(e) == 0
}

// Contains reports whether the given species name participates in the
// equation, regardless of reactant/product side.
func (e ReactionEquation) Contains(name string) bool {
	for _, term := range e {
		if term.Species == name {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the equation.
func (e ReactionEquation) Clone() ReactionEquation {
	if e == nil {
		return nil
	}
	out := make(ReactionEquation, len(e))
	copy(out, e)
	return out
}
