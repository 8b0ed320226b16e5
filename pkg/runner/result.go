package runner

import "github.com/yaklabco/realign/pkg/fix"

// FileResult is the outcome of realigning a single file.
type FileResult struct {
	// Path is the file that was processed.
	Path string

	// Edits are the realignment edits computed for the file.
	Edits []fix.TextEdit

	// Diff describes the change as a unified diff. Nil when nothing changed.
	Diff *fix.Diff

	// Changed reports whether any edit survived validation.
	Changed bool

	// Written reports whether the file was rewritten in place.
	Written bool

	// BackedUp reports whether a sidecar backup was created for this write.
	BackedUp bool

	// Skipped reports that the file was left untouched without error,
	// with SkipReason saying why (binary content, concurrent modification).
	Skipped    bool
	SkipReason string
}

// FileOutcome pairs a path with its result or processing error.
type FileOutcome struct {
	Path string

	// Result is nil when Error is set.
	Result *FileResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files processed without error.
	FilesProcessed int

	// FilesSkipped counts files skipped (binary, concurrently modified).
	FilesSkipped int

	// FilesErrored counts files that failed to process.
	FilesErrored int

	// FilesChanged counts files with at least one edit.
	FilesChanged int

	// FilesWritten counts files rewritten in place.
	FilesWritten int

	// EditsTotal is the total number of edits across all files.
	EditsTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasChanges reports whether any file produced edits.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	fr := outcome.Result
	if fr.Skipped {
		r.Stats.FilesSkipped++
	}
	if fr.Changed {
		r.Stats.FilesChanged++
	}
	if fr.Written {
		r.Stats.FilesWritten++
	}
	r.Stats.EditsTotal += len(fr.Edits)
}
