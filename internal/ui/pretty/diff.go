package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/realign/pkg/fix"
)

// FormatDiff renders a unified diff with styled headers, hunk markers,
// and add/remove lines. Returns the empty string for an empty diff.
func (s *Styles) FormatDiff(diff *fix.Diff) string {
	if !diff.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(diff.Path, "/")

	var builder strings.Builder
	builder.WriteString(s.DiffHeader.Render(fmt.Sprintf("--- a/%s", path)))
	builder.WriteByte('\n')
	builder.WriteString(s.DiffHeader.Render(fmt.Sprintf("+++ b/%s", path)))
	builder.WriteByte('\n')

	for _, hunk := range diff.Hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		builder.WriteString(s.DiffHunk.Render(header))
		builder.WriteByte('\n')

		for _, line := range hunk.Lines {
			switch line.Kind {
			case fix.DiffLineAdd:
				builder.WriteString(s.DiffAdd.Render("+" + line.Content))
			case fix.DiffLineRemove:
				builder.WriteString(s.DiffRemove.Render("-" + line.Content))
			default:
				builder.WriteString(s.DiffContext.Render(" " + line.Content))
			}
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}
