package fix

import (
	"fmt"
	"strings"
)

// Diff represents a unified diff between original and modified content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []DiffHunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// DiffHunk represents a single hunk in a unified diff.
type DiffHunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in the original.
	OriginalStart int

	// OriginalCount is the number of lines from the original in this hunk.
	OriginalCount int

	// ModifiedStart is the 1-based line number where the hunk starts in the modified.
	ModifiedStart int

	// ModifiedCount is the number of lines from the modified in this hunk.
	ModifiedCount int

	// Lines contains the diff lines in this hunk.
	Lines []DiffLine
}

// DiffLine represents a single line in a diff hunk.
type DiffLine struct {
	// Kind indicates whether this is a context, add, or remove line.
	Kind DiffLineKind

	// Content is the line content (without the diff prefix).
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged context line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line added in the modified version.
	DiffLineAdd

	// DiffLineRemove is a line removed from the original version.
	DiffLineRemove
)

// contextLines is the number of context lines to show around changes.
const contextLines = 3

// GenerateDiff creates a unified diff between original and modified content.
// Returns nil if there are no changes.
func GenerateDiff(path string, original, modified []byte) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	ops := diffOps(origLines, modLines)
	if !hasChanges(ops) {
		return nil
	}

	hunks := groupIntoHunks(ops)

	var additions, deletions int
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				additions++
			case DiffLineRemove:
				deletions++
			}
		}
	}

	return &Diff{
		Path:      path,
		Hunks:     hunks,
		Additions: additions,
		Deletions: deletions,
	}
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String returns the diff in unified diff format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case DiffLineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case DiffLineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// splitLines splits content into lines, removing the trailing newline if present.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := strings.Split(string(content), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOp represents a single diff operation.
type diffOp struct {
	kind    DiffLineKind
	content string
}

// diffOps computes the line-level operation sequence via a longest common
// subsequence table. Realignment diffs are small and line-local, so the
// quadratic table stays cheap.
func diffOps(orig, mod []string) []diffOp {
	n, m := len(orig), len(mod)

	// lcs[i][j] is the LCS length of orig[i:] and mod[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var ops []diffOp
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, diffOp{kind: DiffLineContext, content: orig[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, diffOp{kind: DiffLineRemove, content: orig[i]})
			i++
		default:
			ops = append(ops, diffOp{kind: DiffLineAdd, content: mod[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, diffOp{kind: DiffLineRemove, content: orig[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, diffOp{kind: DiffLineAdd, content: mod[j]})
	}

	return ops
}

func hasChanges(ops []diffOp) bool {
	for _, op := range ops {
		if op.kind != DiffLineContext {
			return true
		}
	}
	return false
}

// groupIntoHunks groups operations into hunks, keeping contextLines of
// unchanged lines around each run of changes and merging runs whose
// context windows would touch.
func groupIntoHunks(ops []diffOp) []DiffHunk {
	// Precompute the 1-based original/modified line number at each op.
	origAt := make([]int, len(ops))
	modAt := make([]int, len(ops))
	orig, mod := 1, 1
	for i, op := range ops {
		origAt[i] = orig
		modAt[i] = mod
		switch op.kind {
		case DiffLineContext:
			orig++
			mod++
		case DiffLineRemove:
			orig++
		case DiffLineAdd:
			mod++
		}
	}

	var hunks []DiffHunk

	i := 0
	for i < len(ops) {
		if ops[i].kind == DiffLineContext {
			i++
			continue
		}

		// Extend to the last change whose context window touches this run.
		last := i
		for k := i + 1; k < len(ops) && k-last <= 2*contextLines; k++ {
			if ops[k].kind != DiffLineContext {
				last = k
			}
		}

		start := max(i-contextLines, 0)
		end := min(last+contextLines+1, len(ops))

		hunk := DiffHunk{
			OriginalStart: origAt[start],
			ModifiedStart: modAt[start],
		}
		for _, op := range ops[start:end] {
			hunk.Lines = append(hunk.Lines, DiffLine{Kind: op.kind, Content: op.content})
			switch op.kind {
			case DiffLineContext:
				hunk.OriginalCount++
				hunk.ModifiedCount++
			case DiffLineRemove:
				hunk.OriginalCount++
			case DiffLineAdd:
				hunk.ModifiedCount++
			}
		}
		hunks = append(hunks, hunk)

		i = end
	}

	return hunks
}
