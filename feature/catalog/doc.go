// Package catalog implements the thermodynamic catalog feature.
//
// It loads a PHREEQC-style database into a typed Catalog (elements, aqueous
// species, gases, minerals), identifies the master species declared by the
// source, and builds a reverse index from each master species to the set of
// species whose reaction equation consumes it.
//
// # Reconciliation
//
// A loaded Catalog can be reconciled against an independently loaded
// reference database. Per master species, the reconciler decides whether
// the reference supplies authoritative thermodynamic data directly, via a
// substitute product species, or not at all; it then rewrites every species
// accordingly into a freshly owned merged database. Species identities
// (names, compositions) are always preserved; only thermodynamic data is
// replaced.
//
// # Components
//
//   - Catalog: the loaded entity collections plus the master-species index.
//   - Service: orchestrates loading (local file or object storage), caching,
//     and reconciliation.
//   - Handler: exposes HTTP endpoints for catalog queries.
//   - Feature: registers the feature with the application loader.
package catalog
