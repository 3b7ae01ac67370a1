package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldBackend     = "backend"
	FieldFingerprint = "fingerprint"
	FieldRows        = "rows"
	FieldCategories  = "categories"
	FieldDateFrom    = "date_from"
	FieldDateTo      = "date_to"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentSource   = "source"
	ComponentRefresh  = "refresh"
	ComponentPipeline = "pipeline"
	ComponentStorage  = "storage"
)
