package realign

import (
	"iter"

	"github.com/yaklabco/realign/pkg/source"
)

// LineStarts returns a lazy, restartable sequence of the absolute byte
// offsets at which each physical line touched by r begins. The first
// element is always r.Start; later elements are the offsets following
// each newline inside r's own text. Splitting never looks outside r: a
// newline at r's last byte does not introduce a trailing empty line.
func LineStarts(buf *source.Buffer, r source.Range) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !r.InBounds(buf) {
			return
		}
		if !yield(r.Start) {
			return
		}

		text := buf.Content[r.Start:r.End]
		for i, c := range text {
			if c != '\n' {
				continue
			}
			next := r.Start + i + 1
			if next >= r.End {
				return
			}
			if !yield(next) {
				return
			}
		}
	}
}
