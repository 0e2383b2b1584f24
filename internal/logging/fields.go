package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldConfig = "config"
	FieldDir    = "dir"

	// Generation fields.
	FieldDryRun    = "dry_run"
	FieldLinter    = "linter"
	FieldLinters   = "linters"
	FieldRule      = "rule"
	FieldRules     = "rules"
	FieldCode      = "code"
	FieldCategory  = "category"
	FieldWritten   = "written"
	FieldUnchanged = "unchanged"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
