package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/realign/pkg/config"
	"github.com/yaklabco/realign/pkg/fsutil"
	"github.com/yaklabco/realign/pkg/runner"
)

func TestProcessFileMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	writeFile(t, path, "intro\n```\ncode\n```\noutro\n")

	r := runner.New()
	result, err := r.ProcessFile(context.Background(), path, runner.Options{
		Delta:  2,
		Config: config.Default(),
	})
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if !result.Changed {
		t.Fatal("Changed = false, want true")
	}
	if result.Written {
		t.Error("Written = true without Write option")
	}
	if result.Diff == nil || !result.Diff.HasChanges() {
		t.Fatal("expected a non-empty diff")
	}

	// The code block body must not be touched.
	diffText := result.Diff.String()
	if strings.Contains(diffText, "+  code") {
		t.Errorf("code block body was shifted:\n%s", diffText)
	}
	if !strings.Contains(diffText, "+  intro") {
		t.Errorf("intro line was not shifted:\n%s", diffText)
	}

	// Dry run leaves the file alone.
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "intro\n```\ncode\n```\noutro\n" {
		t.Errorf("file modified without Write option: %q", got)
	}
}

func TestProcessFilePlainTextLineSpan(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	writeFile(t, path, "a\nb\nc\n")

	r := runner.New()
	result, err := r.ProcessFile(context.Background(), path, runner.Options{
		Delta:     1,
		StartLine: 2,
		EndLine:   2,
		Config:    config.Default(),
		Write:     true,
	})
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if !result.Written {
		t.Fatal("Written = false, want true")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "a\n b\nc\n" {
		t.Errorf("content = %q, want %q", got, "a\n b\nc\n")
	}
}

func TestProcessFileNegativeDelta(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	writeFile(t, path, "  a\n  b\n")

	r := runner.New()
	result, err := r.ProcessFile(context.Background(), path, runner.Options{
		Delta:  -2,
		Config: config.Default(),
		Write:  true,
	})
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}
	if !result.Written {
		t.Fatal("Written = false, want true")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "a\nb\n" {
		t.Errorf("content = %q, want %q", got, "a\nb\n")
	}
}

func TestProcessFileBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	writeFile(t, path, "x\n")

	r := runner.New()
	result, err := r.ProcessFile(context.Background(), path, runner.Options{
		Delta:  2,
		Config: config.Default(),
		Write:  true,
		Backup: true,
	})
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if !result.BackedUp {
		t.Fatal("BackedUp = false, want true")
	}

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backup) != "x\n" {
		t.Errorf("backup = %q, want original content", backup)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "  x\n" {
		t.Errorf("content = %q, want %q", got, "  x\n")
	}
}

func TestProcessFileSkipsBinary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "blob.md")
	if err := os.WriteFile(path, []byte{0x00, 0x01, 0x02, 0xff}, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	r := runner.New()
	result, err := r.ProcessFile(context.Background(), path, runner.Options{
		Delta:  2,
		Config: config.Default(),
	})
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if !result.Skipped {
		t.Fatal("Skipped = false, want true for binary content")
	}
	if result.SkipReason != "binary file" {
		t.Errorf("SkipReason = %q", result.SkipReason)
	}
}

func TestProcessFileNoEdits(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	writeFile(t, path, "hello\n")

	r := runner.New()
	result, err := r.ProcessFile(context.Background(), path, runner.Options{
		Delta:  0,
		Config: config.Default(),
		Write:  true,
	})
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if result.Changed {
		t.Error("Changed = true for zero delta")
	}
	if result.Written {
		t.Error("Written = true for zero delta")
	}
	if result.Diff != nil {
		t.Error("Diff should be nil when nothing changed")
	}
}

func TestProcessFileSpanOutOfRange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "short.txt")
	writeFile(t, path, "one\n")

	r := runner.New()
	result, err := r.ProcessFile(context.Background(), path, runner.Options{
		Delta:     2,
		StartLine: 10,
		EndLine:   20,
		Config:    config.Default(),
	})
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	if result.Changed {
		t.Error("Changed = true for span past end of file")
	}
}

func TestRunDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "alpha\n")
	writeFile(t, filepath.Join(dir, "b.md"), "beta\n")
	writeFile(t, filepath.Join(dir, "skip.txt"), "gamma\n")

	r := runner.New()
	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Delta:      1,
		Config:     config.Default(),
		Write:      true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 2 {
		t.Errorf("FilesDiscovered = %d, want 2", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesProcessed != 2 {
		t.Errorf("FilesProcessed = %d, want 2", result.Stats.FilesProcessed)
	}
	if result.Stats.FilesWritten != 2 {
		t.Errorf("FilesWritten = %d, want 2", result.Stats.FilesWritten)
	}
	if !result.HasChanges() {
		t.Error("HasChanges() = false")
	}

	got, err := os.ReadFile(filepath.Join(dir, "a.md"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != " alpha\n" {
		t.Errorf("a.md = %q, want %q", got, " alpha\n")
	}

	// Outcomes come back in sorted path order.
	if len(result.Files) != 2 {
		t.Fatalf("len(Files) = %d, want 2", len(result.Files))
	}
	if filepath.Base(result.Files[0].Path) != "a.md" {
		t.Errorf("Files[0] = %s, want a.md first", result.Files[0].Path)
	}

	untouched, err := os.ReadFile(filepath.Join(dir, "skip.txt"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(untouched) != "gamma\n" {
		t.Errorf("skip.txt = %q, want untouched", untouched)
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := runner.New()
	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{dir},
		WorkingDir: dir,
		Delta:      1,
		Config:     config.Default(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 0 {
		t.Errorf("FilesDiscovered = %d, want 0", result.Stats.FilesDiscovered)
	}
	if result.HasChanges() {
		t.Error("HasChanges() = true for empty run")
	}
}

func TestRunTabStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	writeFile(t, path, "\tindented\n")

	r := runner.New()
	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{path},
		WorkingDir: dir,
		Delta:      4,
		Config:     config.Indentation{Style: config.StyleTabs, UnitWidth: 4},
		Write:      true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stats.FilesWritten != 1 {
		t.Fatalf("FilesWritten = %d, want 1", result.Stats.FilesWritten)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "\t\tindented\n" {
		t.Errorf("content = %q, want %q", got, "\t\tindented\n")
	}
}
