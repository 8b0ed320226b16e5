package realign

import (
	"github.com/yaklabco/realign/pkg/source"
	"github.com/yaklabco/realign/pkg/syntree"
)

// ProtectedRanges returns the byte ranges under node that must never be
// edited: the bodies of multi-line quoted blocks and string literals,
// excluding their delimiters. Literals missing either delimiter
// contribute nothing. A nil node (plain-range target) yields nil.
// Pure function of the subtree.
func ProtectedRanges(node *syntree.Node) []source.Range {
	if node == nil {
		return nil
	}

	var protected []source.Range

	//nolint:errcheck // the callback never fails
	syntree.Walk(node, func(n *syntree.Node) error {
		switch n.Kind {
		case syntree.KindStringLiteral, syntree.KindQuotedBlock:
			if !n.HasOpen() || !n.HasClose() {
				return nil
			}
			body := source.NewRange(n.Open.End, n.Close.Start)
			if !body.IsEmpty() {
				protected = append(protected, body)
			}
		}
		return nil
	})

	return protected
}

// overlapsProtected reports whether the candidate edit range intersects
// any protected range. A zero-width candidate (an insertion point)
// intersects when it falls inside a protected range, including at its
// first byte.
func overlapsProtected(r source.Range, protected []source.Range) bool {
	for _, p := range protected {
		if r.IsEmpty() {
			if p.Contains(r.Start) {
				return true
			}
			continue
		}
		if r.Overlaps(p) {
			return true
		}
	}
	return false
}
