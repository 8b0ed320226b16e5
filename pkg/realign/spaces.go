package realign

import (
	"strings"

	"github.com/yaklabco/realign/pkg/fix"
	"github.com/yaklabco/realign/pkg/source"
)

// applySpaces shifts each line's leading boundary by delta space columns.
//
// Positive delta inserts at each line-start offset. Negative delta
// removes |delta| characters at the indentation boundary: forward from
// the line-start offset when the character there is a space, backward
// otherwise. The backward case handles declared ranges whose start sits
// mid-run, past the line's first whitespace. Lines whose candidate range
// intersects a protected range, leaves the buffer, or contains anything
// but spaces and tabs are skipped.
func (e *Engine) applySpaces(r source.Range, delta int, protected []source.Range) []fix.TextEdit {
	acc := fix.NewAccumulator()

	for p := range LineStarts(e.buf, r) {
		if delta > 0 {
			point := source.NewRange(p, p)
			if overlapsProtected(point, protected) {
				continue
			}
			if e.atLineTerminator(p) {
				continue
			}
			acc.Insert(p, strings.Repeat(" ", delta))
			continue
		}

		width := -delta
		var candidate source.Range
		if p < e.buf.Len() && e.buf.Content[p] == ' ' {
			candidate = source.NewRange(p, p+width)
		} else {
			candidate = source.NewRange(p-width, p)
		}

		if !candidate.InBounds(e.buf) {
			continue
		}
		if overlapsProtected(candidate, protected) {
			continue
		}
		if !isBlank(candidate.Text(e.buf)) {
			continue
		}
		acc.Remove(candidate)
	}

	return acc.Take()
}

// atLineTerminator reports whether the byte at offset p is a line
// terminator (LF, or the CR of a CRLF pair) or past the end of content.
// Inserting indentation there would only create trailing whitespace on
// an empty line.
func (e *Engine) atLineTerminator(p int) bool {
	if p >= e.buf.Len() {
		return true
	}
	c := e.buf.Content[p]
	if c == '\n' {
		return true
	}
	return c == '\r' && p+1 < e.buf.Len() && e.buf.Content[p+1] == '\n'
}
