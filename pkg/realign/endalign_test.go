package realign_test

import (
	"testing"

	"github.com/yaklabco/realign/pkg/fix"
	"github.com/yaklabco/realign/pkg/realign"
	"github.com/yaklabco/realign/pkg/source"
	"github.com/yaklabco/realign/pkg/syntree"
)

// delimited builds a node whose closing delimiter is the given range.
func delimited(span, close source.Range) *syntree.Node {
	n := syntree.New(syntree.KindBlock, span)
	n.Close = close
	return n
}

func TestAlignEndBlankWhitespaceReplaced(t *testing.T) {
	t.Parallel()

	//          0123456789
	content := "begin\n  end"
	e, buf := spaceEngine(content)

	node := delimited(source.NewRange(0, 11), source.NewRange(8, 11))

	edits := e.AlignEnd(node, realign.AlignToColumn(4))
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}
	if edits[0].Range() != source.NewRange(6, 8) {
		t.Errorf("edit range = %v, want [6, 8)", edits[0].Range())
	}
	if edits[0].NewText != "    " {
		t.Errorf("edit text = %q, want four spaces", edits[0].NewText)
	}

	prepared, err := fix.Prepare(edits, buf.Len())
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	if result := string(fix.Apply(buf.Content, prepared)); result != "begin\n    end" {
		t.Errorf("applied = %q, want %q", result, "begin\n    end")
	}
}

func TestAlignEndNonBlankPushesNewLine(t *testing.T) {
	t.Parallel()

	//          0         1
	//          0123456789012345
	content := "begin foo end"
	e, buf := spaceEngine(content)

	node := delimited(source.NewRange(0, 13), source.NewRange(10, 13))

	edits := e.AlignEnd(node, realign.AlignToColumn(2))
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}
	if !edits[0].IsInsert() {
		t.Fatalf("expected an insert, got %+v", edits[0])
	}
	if edits[0].NewText != "\n  " {
		t.Errorf("insert text = %q, want %q", edits[0].NewText, "\n  ")
	}

	prepared, err := fix.Prepare(edits, buf.Len())
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	if result := string(fix.Apply(buf.Content, prepared)); result != "begin foo \n  end" {
		t.Errorf("applied = %q, want %q", result, "begin foo \n  end")
	}
}

func TestAlignEndToNodeColumn(t *testing.T) {
	t.Parallel()

	//          0         1
	//          0123456789012345678
	content := "  begin\nbody\n      end"
	e, buf := spaceEngine(content)

	opener := syntree.New(syntree.KindBlock, source.NewRange(2, 7))
	node := delimited(source.NewRange(2, 22), source.NewRange(19, 22))

	edits := e.AlignEnd(node, realign.AlignToNode(opener))
	prepared, err := fix.Prepare(edits, buf.Len())
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	// The opener starts at column 2, so "end" is re-indented to column 2.
	if result := string(fix.Apply(buf.Content, prepared)); result != "  begin\nbody\n  end" {
		t.Errorf("applied = %q, want %q", result, "  begin\nbody\n  end")
	}
}

func TestAlignEndDefaultsToLineStart(t *testing.T) {
	t.Parallel()

	content := "begin\n   end"
	e, buf := spaceEngine(content)

	node := delimited(source.NewRange(0, 12), source.NewRange(9, 12))

	edits := e.AlignEnd(node, realign.AlignToLineStart())
	prepared, err := fix.Prepare(edits, buf.Len())
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	if result := string(fix.Apply(buf.Content, prepared)); result != "begin\nend" {
		t.Errorf("applied = %q, want %q", result, "begin\nend")
	}
}

func TestAlignEndTabStyle(t *testing.T) {
	t.Parallel()

	content := "begin\n    end"
	e, buf := tabEngine(content, 2)

	node := delimited(source.NewRange(0, 13), source.NewRange(10, 13))

	edits := e.AlignEnd(node, realign.AlignToColumn(2))
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}
	if edits[0].NewText != "\t\t" {
		t.Errorf("edit text = %q, want two tabs", edits[0].NewText)
	}
	if edits[0].Range() != source.NewRange(6, 10) {
		t.Errorf("edit range = %v, want [6, 10)", edits[0].Range())
	}
	_ = buf
}

func TestAlignEndMissingTerminalToken(t *testing.T) {
	t.Parallel()

	e, _ := spaceEngine("begin end")

	node := syntree.New(syntree.KindBlock, source.NewRange(0, 9))
	if edits := e.AlignEnd(node, realign.AlignToColumn(2)); edits != nil {
		t.Errorf("node without closing delimiter produced edits: %+v", edits)
	}
	if edits := e.AlignEnd(nil, realign.AlignToColumn(2)); edits != nil {
		t.Errorf("nil node produced edits: %+v", edits)
	}
}
