// Package phreeqc reads PHREEQC-style thermodynamic database files into raw
// record sets.
//
// The package covers the subset of the PHREEQC database grammar needed by
// the catalog loader:
//
//   - SOLUTION_MASTER_SPECIES: element declarations (name, gram formula
//     weight) and the ordered list of master species
//   - SOLUTION_SPECIES: association reactions defining aqueous species,
//     with log_k, delta_h and -analytic parameter lines
//   - PHASES: dissolution reactions defining gases and minerals, with the
//     additional -Vm molar-volume parameter
//
// Records are plain data carriers; entity construction, naming rules, and
// indexing live in the catalog feature. A Reader is a scoped resource built
// per load call; it holds no global state.
package phreeqc
