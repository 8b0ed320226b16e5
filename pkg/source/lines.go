package source

import "sort"

// BuildLines constructs line metadata from buffer content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Handle last line (may not have trailing newline).
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineIndexAt returns the 0-based index of the line containing offset.
// Offsets at or past the end of content map to the last line.
// Returns -1 for negative offsets or an empty buffer.
func (b *Buffer) LineIndexAt(offset int) int {
	if offset < 0 || len(b.Lines) == 0 {
		return -1
	}

	if offset >= len(b.Content) {
		return len(b.Lines) - 1
	}

	// Binary search to find the line containing the offset.
	idx := sort.Search(len(b.Lines), func(i int) bool {
		return b.Lines[i].EndOffset > offset
	})

	if idx >= len(b.Lines) {
		idx = len(b.Lines) - 1
	}
	return idx
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes.
// Returns (0, 0) if the offset is out of range.
func (b *Buffer) LineAt(offset int) (int, int) {
	idx := b.LineIndexAt(offset)
	if idx < 0 {
		return 0, 0
	}

	info := b.Lines[idx]
	if offset < info.StartOffset {
		return 0, 0
	}

	// 1-based line and column.
	return idx + 1, offset - info.StartOffset + 1
}

// Offset converts 1-based line and column numbers to a byte offset.
// Returns (offset, true) on success, or (0, false) if out of range.
func (b *Buffer) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(b.Lines) {
		return 0, false
	}

	info := b.Lines[line-1]

	// Column 1 is the first byte of the line.
	if col < 1 {
		return 0, false
	}

	offset := info.StartOffset + col - 1

	// Allow column to point just past the end of the line.
	if offset > info.EndOffset {
		return 0, false
	}

	return offset, true
}

// LineStartAt returns the start offset of the line containing offset.
// Returns 0 when the offset is out of range.
func (b *Buffer) LineStartAt(offset int) int {
	idx := b.LineIndexAt(offset)
	if idx < 0 {
		return 0
	}
	return b.Lines[idx].StartOffset
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (b *Buffer) LineContent(line int) []byte {
	if line < 1 || line > len(b.Lines) {
		return nil
	}

	info := b.Lines[line-1]
	return b.Content[info.StartOffset:info.NewlineStart]
}

// LineRange returns the Range of a 1-based line number, excluding the newline.
// Returns an empty Range if the line number is out of range.
func (b *Buffer) LineRange(line int) Range {
	if line < 1 || line > len(b.Lines) {
		return Range{}
	}

	info := b.Lines[line-1]
	return Range{Start: info.StartOffset, End: info.NewlineStart}
}
