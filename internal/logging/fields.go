// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Run option fields.
	FieldDelta     = "delta"
	FieldStartLine = "start_line"
	FieldEndLine   = "end_line"
	FieldStyle     = "style"
	FieldUnitWidth = "unit_width"
	FieldWrite     = "write"
	FieldBackup    = "backup"
	FieldJobs      = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesSkipped    = "files_skipped"
	FieldFilesChanged    = "files_changed"
	FieldFilesWritten    = "files_written"
	FieldEditsTotal      = "edits_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
