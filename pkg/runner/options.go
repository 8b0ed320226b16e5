// Package runner orchestrates realignment over one or more files.
package runner

import "github.com/yaklabco/realign/pkg/config"

// Options controls a realignment run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// picked up during directory discovery. Explicitly named files are always
	// processed regardless of extension.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories
	// during discovery, relative to WorkingDir.
	ExcludeGlobs []string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Delta is the signed column shift to apply.
	Delta int

	// StartLine and EndLine bound the shifted region as a 1-based inclusive
	// line span. Zero values mean the start and end of the file respectively.
	StartLine int
	EndLine   int

	// Config is the indentation policy for this run.
	Config config.Indentation

	// Write rewrites files in place. When false the runner only computes
	// edits and diffs.
	Write bool

	// Backup creates a sidecar backup before the first in-place write.
	Backup bool
}

// DefaultExtensions returns the extensions picked up during directory
// discovery. Markdown files are the only ones realign can parse into a
// structured tree, so they are the only ones worth walking for.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
