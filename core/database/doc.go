// Package database handles export database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to
// configure sqlite or MySQL connections based on the application's
// configuration. The default driver is sqlite, producing a local snapshot
// file of a merged catalog.
//
// # Connect
//
// The generic Connect function establishes a connection to the database
// selected by Config.Driver.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used to verify
// exported tables against the models defined in the export feature.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "species")
package database
