package syntree_test

import (
	"testing"

	"github.com/yaklabco/realign/pkg/source"
	"github.com/yaklabco/realign/pkg/syntree"
)

func TestAppendChild(t *testing.T) {
	t.Parallel()

	root := syntree.New(syntree.KindRoot, source.NewRange(0, 20))
	a := syntree.New(syntree.KindBlock, source.NewRange(0, 10))
	b := syntree.New(syntree.KindBlock, source.NewRange(10, 20))

	syntree.AppendChild(root, a)
	syntree.AppendChild(root, b)

	if root.FirstChild != a || root.LastChild != b {
		t.Fatal("child pointers not wired")
	}
	if a.Next != b || b.Prev != a {
		t.Fatal("sibling pointers not wired")
	}
	if a.Parent != root || b.Parent != root {
		t.Fatal("parent pointers not wired")
	}
	if got := len(root.Children()); got != 2 {
		t.Fatalf("Children() length = %d, want 2", got)
	}
}

func TestInsideDocComment(t *testing.T) {
	t.Parallel()

	root := syntree.New(syntree.KindRoot, source.NewRange(0, 30))
	comment := syntree.New(syntree.KindDocComment, source.NewRange(0, 20))
	inner := syntree.New(syntree.KindOther, source.NewRange(5, 10))
	outside := syntree.New(syntree.KindOther, source.NewRange(20, 30))

	syntree.AppendChild(root, comment)
	syntree.AppendChild(comment, inner)
	syntree.AppendChild(root, outside)

	if !comment.InsideDocComment() {
		t.Error("comment itself should report inside")
	}
	if !inner.InsideDocComment() {
		t.Error("descendant of comment should report inside")
	}
	if outside.InsideDocComment() {
		t.Error("sibling of comment should not report inside")
	}
	if root.InsideDocComment() {
		t.Error("root should not report inside")
	}
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	root := syntree.New(syntree.KindRoot, source.NewRange(0, 40))
	block := syntree.New(syntree.KindBlock, source.NewRange(0, 40))
	lit := syntree.New(syntree.KindStringLiteral, source.NewRange(2, 8))
	quoted := syntree.New(syntree.KindQuotedBlock, source.NewRange(10, 30))
	nested := syntree.New(syntree.KindStringLiteral, source.NewRange(32, 38))

	syntree.AppendChild(root, block)
	syntree.AppendChild(block, lit)
	syntree.AppendChild(block, quoted)
	syntree.AppendChild(block, nested)

	lits := syntree.FindByKind(root, syntree.KindStringLiteral)
	if len(lits) != 2 {
		t.Fatalf("found %d string literals, want 2", len(lits))
	}

	first := syntree.FindFirst(root, func(n *syntree.Node) bool {
		return n.Kind == syntree.KindQuotedBlock
	})
	if first != quoted {
		t.Error("FindFirst did not return the quoted block")
	}
}
