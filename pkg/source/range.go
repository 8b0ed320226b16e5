package source

// Range is a half-open [Start, End) byte interval into a Buffer.
// Ranges are value types; no operation on a Range mutates a Buffer.
type Range struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// NewRange creates a Range from start and end offsets.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps returns true if the two ranges share at least one byte, or if
// one is a zero-width point strictly inside the other. Merely touching
// ranges do not overlap.
func (r Range) Overlaps(other Range) bool {
	if r.IsEmpty() && other.IsEmpty() {
		return false
	}
	if r.IsEmpty() {
		return other.Start < r.Start && r.Start < other.End
	}
	if other.IsEmpty() {
		return r.Start < other.Start && other.Start < r.End
	}
	return r.Start < other.End && other.Start < r.End
}

// Join returns the smallest range covering both r and other.
func (r Range) Join(other Range) Range {
	return Range{
		Start: min(r.Start, other.Start),
		End:   max(r.End, other.End),
	}
}

// Resize returns a range with the same start and the given length.
func (r Range) Resize(n int) Range {
	return Range{Start: r.Start, End: r.Start + n}
}

// Shift returns the range moved n bytes to the right (negative n moves left).
func (r Range) Shift(n int) Range {
	return Range{Start: r.Start + n, End: r.End + n}
}

// InBounds returns true if the range lies fully within the buffer.
func (r Range) InBounds(buf *Buffer) bool {
	return r.Start >= 0 && r.End <= len(buf.Content) && r.Start <= r.End
}

// Text returns the source text covered by the range.
// Returns nil when the range is out of bounds.
func (r Range) Text(buf *Buffer) []byte {
	if !r.InBounds(buf) {
		return nil
	}
	return buf.Content[r.Start:r.End]
}

// BeginColumn returns the 0-based byte column of the range's start within
// its line.
func (r Range) BeginColumn(buf *Buffer) int {
	return r.Start - buf.LineStartAt(r.Start)
}

// LineText returns the full text of the line containing the range's start,
// excluding the newline.
func (r Range) LineText(buf *Buffer) []byte {
	idx := buf.LineIndexAt(r.Start)
	if idx < 0 {
		return nil
	}
	info := buf.Lines[idx]
	return buf.Content[info.StartOffset:info.NewlineStart]
}
