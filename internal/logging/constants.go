package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the log output easy to filter and aggregate.
const (
	FieldFile     = "file_path"
	FieldFormat   = "format"
	FieldCategory = "category"
	FieldCount    = "count"
	FieldRow      = "row"
	FieldRule     = "rule"
	FieldProvider = "provider"
	FieldDuration = "duration_ms"
	FieldDatabase = "database"
)
