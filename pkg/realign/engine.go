// Package realign implements the indentation realignment engine: given a
// syntax subtree and a signed column delta, it emits a minimal set of
// non-overlapping text edits that shift the leading indentation of every
// physical line the subtree covers, never touching string-literal bodies,
// quoted-block bodies, or structured comments.
//
// The engine never returns an error: every situation in which it cannot
// act safely degrades to skipping a line or producing no edits at all.
// Callers branch on whether edits were produced, never on a fault.
package realign

import (
	"github.com/yaklabco/realign/pkg/config"
	"github.com/yaklabco/realign/pkg/fix"
	"github.com/yaklabco/realign/pkg/source"
)

// Engine realigns indentation within one buffer. It holds the buffer and
// the resolved indentation configuration for a single correction run;
// both are read-only.
type Engine struct {
	buf *source.Buffer
	cfg config.Indentation
}

// New creates an Engine for the given buffer and configuration.
func New(buf *source.Buffer, cfg config.Indentation) *Engine {
	return &Engine{buf: buf, cfg: cfg}
}

// Realign shifts the leading indentation of every physical line covered
// by target, by delta columns (space style) or delta columns converted to
// whole indentation units (tab style). Edits are returned in ascending
// offset order and are pairwise non-overlapping.
//
// The call is a no-op when delta is zero, the target is absent, or the
// target subtree lies inside a structured comment.
func (e *Engine) Realign(target Target, delta int) []fix.TextEdit {
	if delta == 0 {
		return nil
	}

	rng, node, ok := target.resolve()
	if !ok {
		return nil
	}
	if node != nil && node.InsideDocComment() {
		return nil
	}

	protected := ProtectedRanges(node)

	switch e.cfg.Style {
	case config.StyleTabs:
		return e.applyTabs(rng, delta, protected)
	default:
		return e.applySpaces(rng, delta, protected)
	}
}

// isBlank reports whether text consists solely of spaces and tabs.
// Empty text is blank.
func isBlank(text []byte) bool {
	for _, c := range text {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}
