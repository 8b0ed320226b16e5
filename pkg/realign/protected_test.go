package realign_test

import (
	"testing"

	"github.com/yaklabco/realign/pkg/realign"
	"github.com/yaklabco/realign/pkg/source"
	"github.com/yaklabco/realign/pkg/syntree"
)

// literal builds a delimited literal node: span [start, end), with
// delimiters of openLen and closeLen bytes at each edge.
func literal(kind syntree.Kind, start, end, openLen, closeLen int) *syntree.Node {
	n := syntree.New(kind, source.NewRange(start, end))
	if openLen > 0 {
		n.Open = source.NewRange(start, start+openLen)
	}
	if closeLen > 0 {
		n.Close = source.NewRange(end-closeLen, end)
	}
	return n
}

func TestProtectedRanges(t *testing.T) {
	t.Parallel()

	t.Run("nil node yields nothing", func(t *testing.T) {
		t.Parallel()
		if got := realign.ProtectedRanges(nil); got != nil {
			t.Errorf("ProtectedRanges(nil) = %v, want nil", got)
		}
	})

	t.Run("quoted block body excludes delimiters", func(t *testing.T) {
		t.Parallel()

		// Fence of 3 bytes on each side around a 10-byte body.
		root := syntree.New(syntree.KindRoot, source.NewRange(0, 20))
		block := literal(syntree.KindQuotedBlock, 2, 18, 3, 3)
		syntree.AppendChild(root, block)

		got := realign.ProtectedRanges(root)
		if len(got) != 1 {
			t.Fatalf("got %d ranges, want 1", len(got))
		}
		if got[0] != source.NewRange(5, 15) {
			t.Errorf("body = %v, want [5, 15)", got[0])
		}
	})

	t.Run("string literal between quotes", func(t *testing.T) {
		t.Parallel()

		root := syntree.New(syntree.KindRoot, source.NewRange(0, 10))
		lit := literal(syntree.KindStringLiteral, 2, 8, 1, 1)
		syntree.AppendChild(root, lit)

		got := realign.ProtectedRanges(root)
		if len(got) != 1 || got[0] != source.NewRange(3, 7) {
			t.Fatalf("got %v, want [[3, 7)]", got)
		}
	})

	t.Run("literal missing a delimiter is skipped", func(t *testing.T) {
		t.Parallel()

		root := syntree.New(syntree.KindRoot, source.NewRange(0, 10))
		// A bare character literal with no closing token.
		syntree.AppendChild(root, literal(syntree.KindStringLiteral, 2, 4, 1, 0))

		if got := realign.ProtectedRanges(root); len(got) != 0 {
			t.Errorf("got %v, want none", got)
		}
	})

	t.Run("empty body is skipped", func(t *testing.T) {
		t.Parallel()

		root := syntree.New(syntree.KindRoot, source.NewRange(0, 10))
		syntree.AppendChild(root, literal(syntree.KindStringLiteral, 2, 4, 1, 1))

		if got := realign.ProtectedRanges(root); len(got) != 0 {
			t.Errorf("got %v, want none", got)
		}
	})

	t.Run("nested literals collected across the subtree", func(t *testing.T) {
		t.Parallel()

		root := syntree.New(syntree.KindRoot, source.NewRange(0, 40))
		block := syntree.New(syntree.KindBlock, source.NewRange(0, 40))
		syntree.AppendChild(root, block)
		syntree.AppendChild(block, literal(syntree.KindStringLiteral, 2, 8, 1, 1))
		syntree.AppendChild(block, literal(syntree.KindQuotedBlock, 10, 30, 4, 4))

		got := realign.ProtectedRanges(root)
		if len(got) != 2 {
			t.Fatalf("got %d ranges, want 2", len(got))
		}
	})

	t.Run("other kinds contribute nothing", func(t *testing.T) {
		t.Parallel()

		root := syntree.New(syntree.KindRoot, source.NewRange(0, 20))
		syntree.AppendChild(root, literal(syntree.KindBlock, 0, 20, 2, 2))

		if got := realign.ProtectedRanges(root); len(got) != 0 {
			t.Errorf("got %v, want none", got)
		}
	})
}
