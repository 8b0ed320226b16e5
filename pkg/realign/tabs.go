package realign

import (
	"strings"

	"github.com/yaklabco/realign/pkg/fix"
	"github.com/yaklabco/realign/pkg/source"
)

// applyTabs shifts each line's indentation by whole tab units,
// normalizing the leading whitespace to a pure run of tabs.
//
// A delta that is not a multiple of the unit width aborts the whole call:
// such deltas arise only from mixed space/tab indentation, and applying
// them partially would make repeated correction passes oscillate between
// two states instead of converging.
func (e *Engine) applyTabs(r source.Range, delta int, protected []source.Range) []fix.TextEdit {
	if delta%e.cfg.UnitWidth != 0 {
		return nil
	}
	tabDelta := delta / e.cfg.UnitWidth

	acc := fix.NewAccumulator()

	for p := range LineStarts(e.buf, r) {
		run := e.leadingWhitespaceRun(p)
		if run.IsEmpty() && tabDelta < 0 {
			continue
		}
		if overlapsProtected(run, protected) {
			continue
		}

		text := run.Text(e.buf)
		tabs, spaces := 0, 0
		for _, c := range text {
			if c == '\t' {
				tabs++
			} else {
				spaces++
			}
		}

		// Integer division discards fractional space indentation below one
		// unit, normalizing toward pure-tab indentation.
		currentUnits := (tabs*e.cfg.UnitWidth + spaces) / e.cfg.UnitWidth
		newUnits := max(currentUnits+tabDelta, 0)
		newText := strings.Repeat("\t", newUnits)

		if string(text) == newText {
			continue
		}
		acc.Replace(run, newText)
	}

	return acc.Take()
}

// leadingWhitespaceRun returns the run of spaces and tabs at the
// indentation boundary of the line containing p. When everything between
// the line's true start and p is itself blank, the run is scanned from
// the true start; otherwise it is scanned from p, so a declared range
// starting after real content never swallows that content.
func (e *Engine) leadingWhitespaceRun(p int) source.Range {
	start := p
	if lineStart := e.buf.LineStartAt(p); isBlank(e.buf.Content[lineStart:p]) {
		start = lineStart
	}

	end := start
	for end < e.buf.Len() {
		c := e.buf.Content[end]
		if c != ' ' && c != '\t' {
			break
		}
		end++
	}

	return source.NewRange(start, end)
}
