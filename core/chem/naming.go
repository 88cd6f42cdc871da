package chem

import (
	"strings"

	"thermodb/core/utils"
)

// SpeciesCharge infers the ionic charge encoded in a source-format species
// name. The charge is the numeric value of the substring starting at the
// first '-' or '+' character; a bare sign with no digits denotes -1 or +1.
// Negative charges are clamped to at most -1 and positive charges to at
// least +1. A name without sign characters has charge 0.
func SpeciesCharge(name string) float64 {
	if i := strings.IndexByte(name, '-'); i >= 0 {
		charge := utils.ToFloat(name[i:])
		if charge > -1 {
			charge = -1
		}
		return charge
	}
	if i := strings.IndexByte(name, '+'); i >= 0 {
		charge := utils.ToFloat(name[i:])
		if charge < 1 {
			charge = 1
		}
		return charge
	}
	return 0
}

// CanonicalName maps a source-format aqueous species name (charge encoded as
// trailing sign characters, e.g. "SO4-2") to the canonical external form
// (charge as repeated sign suffix, phase tags for neutral species, e.g.
// "SO4--"). Gas and mineral names are identical across conventions and must
// not be passed through this function.
func CanonicalName(name string) string {
	charge := SpeciesCharge(name)
	switch {
	case name == "H2O":
		return "H2O(l)"
	case name == "CH4":
		return "Methane(aq)"
	case charge == 0:
		return name + "(aq)"
	case charge < 0:
		return name[:strings.IndexByte(name, '-')] + strings.Repeat("-", int(-charge))
	default:
		return name[:strings.IndexByte(name, '+')] + strings.Repeat("+", int(charge))
	}
}
