package glamgen

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Query generated (or check passed)
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid settings, shape file or parameters
	ExitTemplateNotFound = 11 // Template set or template does not exist
	ExitFormattingFailed = 12 // Substituted text is not valid SQL
	ExitStaleOutput      = 13 // --check found a query that is out of date
)

const (
	// DefaultShape is the shape rendered when --shape is not given.
	DefaultShape = "telemetry"

	// DefaultTemplate is the template used by shapes that do not name one.
	DefaultTemplate = "glam/clients_scalar_aggregates_v1.sql"

	// DefaultOutputRoot is the directory generated queries are written under.
	DefaultOutputRoot = "sql"

	// QueryFileName is the file name of a generated query inside its table directory.
	QueryFileName = "query.sql"

	// HeaderPrefix is the provenance comment prefix the default header starts with.
	HeaderPrefix = "-- generated by: glamgen render"
)
