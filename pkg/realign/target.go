package realign

import (
	"github.com/yaklabco/realign/pkg/source"
	"github.com/yaklabco/realign/pkg/syntree"
)

// Target identifies what a realign call operates on: either a syntax
// subtree (with protected-region detection) or a plain byte range (no
// subtree, nothing protected). The zero Target is absent and makes any
// call a no-op.
type Target struct {
	node *syntree.Node
	rng  source.Range
	kind targetKind
}

type targetKind uint8

const (
	targetNone targetKind = iota
	targetNode
	targetRange
)

// NodeTarget returns a Target for a syntax subtree.
// A nil node yields the absent Target.
func NodeTarget(n *syntree.Node) Target {
	if n == nil {
		return Target{}
	}
	return Target{node: n, kind: targetNode}
}

// RangeTarget returns a Target for a plain byte range with no subtree.
func RangeTarget(r source.Range) Target {
	return Target{rng: r, kind: targetRange}
}

// resolve derives the byte range once at the boundary. The node is nil
// for plain-range targets. ok is false for the absent Target.
func (t Target) resolve() (source.Range, *syntree.Node, bool) {
	switch t.kind {
	case targetNode:
		return t.node.Span, t.node, true
	case targetRange:
		return t.rng, nil, true
	default:
		return source.Range{}, nil, false
	}
}

// AlignTo identifies the column an element's terminal token is aligned
// to: another node's starting column, an explicit column, or the line
// start (the zero AlignTo).
type AlignTo struct {
	node   *syntree.Node
	column int
}

// AlignToNode aligns to the 0-based starting column of n.
// A nil node aligns to column 0.
func AlignToNode(n *syntree.Node) AlignTo {
	return AlignTo{node: n}
}

// AlignToColumn aligns to an explicit 0-based column.
func AlignToColumn(col int) AlignTo {
	return AlignTo{column: col}
}

// AlignToLineStart aligns to column 0.
func AlignToLineStart() AlignTo {
	return AlignTo{}
}

func (a AlignTo) resolveColumn(buf *source.Buffer) int {
	if a.node != nil {
		return a.node.Span.BeginColumn(buf)
	}
	if a.column < 0 {
		return 0
	}
	return a.column
}
