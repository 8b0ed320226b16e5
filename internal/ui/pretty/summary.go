package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/realign/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 files changed (7 edits), 1 written, 1 skipped".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesChanged == 0 && stats.FilesErrored == 0 {
		checked := fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, pluralFile(stats.FilesProcessed))
		return s.Success.Render("Nothing to realign") + s.Dim.Render(checked) + "\n"
	}

	var parts []string

	if stats.FilesChanged > 0 {
		changed := fmt.Sprintf("%d %s changed (%d %s)",
			stats.FilesChanged, pluralFile(stats.FilesChanged),
			stats.EditsTotal, pluralEdit(stats.EditsTotal))
		parts = append(parts, s.Bold.Render(changed))
	}

	if stats.FilesWritten > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

func pluralFile(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

func pluralEdit(n int) string {
	if n == 1 {
		return "edit"
	}
	return "edits"
}
