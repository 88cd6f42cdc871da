// Package config provides configuration management for thermodb.
//
// It utilizes Viper for loading configuration from environment variables,
// config files (config.yaml), and command-line flags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: export database connection details (sqlite/MySQL)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: logging level and format
//   - Catalog: source/reference database identifiers and cache TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.Source)
package config
