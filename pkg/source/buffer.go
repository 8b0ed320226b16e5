// Package source provides the immutable text buffer and range arithmetic
// used by the realignment engine. A Buffer is built once per file and
// shared read-only; all mutation happens through emitted edits, never
// through the buffer itself.
package source

// Buffer is an immutable view of a source file: the raw content plus a
// line index for offset/position conversion.
type Buffer struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line in a buffer.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewBuffer creates a Buffer from content and builds its line index.
func NewBuffer(path string, content []byte) *Buffer {
	return &Buffer{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	return len(b.Content)
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.Lines)
}
