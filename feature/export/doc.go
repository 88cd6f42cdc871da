// Package export persists a finalized thermodynamic database to a
// relational store through GORM.
//
// The merged database produced by reconciliation is flattened into two
// tables: elements (name, molar mass) and species (kind, charge, active
// thermodynamic variant with its scalar parameters, composition as JSON).
// Export replaces the table contents wholesale; there is no incremental
// update, mirroring the clear-then-rebuild policy of catalog loads.
//
// The sqlite driver is the default target, producing a local snapshot file;
// MySQL is supported through the same configuration.
package export
