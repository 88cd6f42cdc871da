// Package chem defines the typed domain model for chemical-thermodynamics
// catalogs: elements, species (aqueous, gaseous, mineral), reaction
// equations, thermodynamic parameter variants, and the Database container
// that holds a finalized set of entities.
//
// # Entities
//
// Entities are built once by a loader and are treated as immutable values
// afterwards, with one exception: the thermodynamic-data variant of a
// species may be replaced wholesale during reconciliation. Names and
// elemental compositions are never rewritten after construction.
//
// # Thermodynamic Data Variants
//
// A species carries exactly one ThermoData variant at a time:
//   - Phreeqc: source-native reaction parameters (log K, delta H, analytic)
//   - HKF: a zero/default HKF parameter set (no reaction data available)
//   - Mineral: source-native parameters plus a single-node molar-volume table
//
// Switching variants is an atomic replace, never a merge.
//
// # Database
//
// The Database container answers exact-name membership queries per species
// kind and preserves insertion order for deterministic iteration.
package chem
