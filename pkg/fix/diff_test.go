package fix_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/realign/pkg/fix"
)

func TestGenerateDiffNoChanges(t *testing.T) {
	t.Parallel()

	content := []byte("a\nb\nc\n")
	if d := fix.GenerateDiff("f.txt", content, content); d != nil {
		t.Errorf("identical content should produce nil diff, got %+v", d)
	}
	if d := fix.GenerateDiff("f.txt", nil, nil); d != nil {
		t.Error("empty content should produce nil diff")
	}
}

func TestGenerateDiffSingleChange(t *testing.T) {
	t.Parallel()

	orig := []byte("a\n  foo\nc\n")
	mod := []byte("a\n    foo\nc\n")

	d := fix.GenerateDiff("f.txt", orig, mod)
	if !d.HasChanges() {
		t.Fatal("expected changes")
	}
	if d.Additions != 1 || d.Deletions != 1 {
		t.Errorf("additions/deletions = %d/%d, want 1/1", d.Additions, d.Deletions)
	}
	if len(d.Hunks) != 1 {
		t.Fatalf("hunks = %d, want 1", len(d.Hunks))
	}

	out := d.String()
	for _, want := range []string{"--- a/f.txt", "+++ b/f.txt", "-  foo", "+    foo", " a", " c"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateDiffSeparateHunks(t *testing.T) {
	t.Parallel()

	var origLines, modLines []string
	for i := 0; i < 20; i++ {
		origLines = append(origLines, "ctx")
		modLines = append(modLines, "ctx")
	}
	origLines[0] = "first-old"
	modLines[0] = "first-new"
	origLines[19] = "last-old"
	modLines[19] = "last-new"

	d := fix.GenerateDiff("f.txt",
		[]byte(strings.Join(origLines, "\n")),
		[]byte(strings.Join(modLines, "\n")))

	if len(d.Hunks) != 2 {
		t.Fatalf("hunks = %d, want 2 (changes are far apart)", len(d.Hunks))
	}
	if d.Hunks[0].OriginalStart != 1 {
		t.Errorf("first hunk start = %d, want 1", d.Hunks[0].OriginalStart)
	}
	if d.Hunks[1].OriginalStart != 17 {
		t.Errorf("second hunk start = %d, want 17", d.Hunks[1].OriginalStart)
	}
}

func TestGenerateDiffLineInsertion(t *testing.T) {
	t.Parallel()

	orig := []byte("foo bar\n")
	mod := []byte("foo\n  bar\n")

	d := fix.GenerateDiff("f.txt", orig, mod)
	if d.Deletions != 1 || d.Additions != 2 {
		t.Errorf("deletions/additions = %d/%d, want 1/2", d.Deletions, d.Additions)
	}
}
