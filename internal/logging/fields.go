package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Configuration fields.
	FieldConfig  = "config"
	FieldFlavor  = "flavor"
	FieldBackend = "backend"
	FieldDataDir = "data_dir"

	// Session fields.
	FieldCommand   = "command"
	FieldDocuments = "documents"
	FieldCaret     = "caret"
	FieldFontSize  = "font_size"
	FieldView      = "view"
	FieldRevision  = "revision"
	FieldIndex     = "index"
	FieldOperation = "operation"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
