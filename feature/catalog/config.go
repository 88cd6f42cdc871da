package catalog

// Config holds configuration for the catalog feature.
type Config struct {
	// Source is the path or object name of the source database file.
	Source string `mapstructure:"source" default:"phreeqc.dat"`

	// Reference is the path or object name of the reference database file.
	Reference string `mapstructure:"reference" default:""`

	// FromStorage fetches database files from object storage instead of the
	// local filesystem.
	FromStorage bool `mapstructure:"from_storage" default:"false"`

	// CacheTTLSeconds is the time-to-live for loaded catalogs on the serve
	// path. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}
