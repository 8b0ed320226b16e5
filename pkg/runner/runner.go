package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/realign/pkg/fix"
	"github.com/yaklabco/realign/pkg/fsutil"
	"github.com/yaklabco/realign/pkg/parser/markdown"
	"github.com/yaklabco/realign/pkg/realign"
	"github.com/yaklabco/realign/pkg/source"
)

// Runner processes files through the realignment engine.
type Runner struct {
	parser *markdown.Parser
}

// New creates a Runner.
func New() *Runner {
	return &Runner{parser: markdown.New()}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are collected in deterministic path order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; re-sort by discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}

		fr, err := r.ProcessFile(ctx, path, opts)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Result = fr
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ProcessFile realigns a single file according to opts.
//
// Files with binary content are skipped, not errored. When opts.Write is
// set, the file is re-checked for external modification before the
// rewrite; a concurrent change skips the write rather than clobbering it.
func (r *Runner) ProcessFile(ctx context.Context, path string, opts Options) (*FileResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	if enry.IsBinary(content) {
		return &FileResult{Path: path, Skipped: true, SkipReason: "binary file"}, nil
	}

	buf, target, err := r.resolveTarget(ctx, path, content, opts)
	if err != nil {
		return nil, err
	}

	result := &FileResult{Path: path}

	engine := realign.New(buf, opts.Config)
	edits := engine.Realign(target, opts.Delta)
	if len(edits) == 0 {
		return result, nil
	}

	prepared, err := fix.Prepare(edits, buf.Len())
	if err != nil {
		return nil, fmt.Errorf("prepare edits for %s: %w", path, err)
	}

	modified := fix.Apply(buf.Content, prepared)

	result.Edits = prepared
	result.Changed = true
	result.Diff = fix.GenerateDiff(path, buf.Content, modified)

	if !opts.Write {
		return result, nil
	}

	externallyModified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("check %s before write: %w", path, err)
	}
	if externallyModified {
		result.Skipped = true
		result.SkipReason = "file changed during processing"
		return result, nil
	}

	if opts.Backup {
		created, err := fsutil.CreateBackup(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("back up %s: %w", path, err)
		}
		result.BackedUp = created
	}

	if err := fsutil.WriteAtomic(ctx, path, modified, info.Mode); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	result.Written = true

	return result, nil
}

// resolveTarget builds the buffer and picks the realignment target.
// Markdown files get a parsed syntax tree so code blocks and spans stay
// protected; everything else gets a plain line-span range.
func (r *Runner) resolveTarget(ctx context.Context, path string, content []byte, opts Options) (*source.Buffer, realign.Target, error) {
	if isMarkdown(path, opts.effectiveExtensions()) {
		buf, root, err := r.parser.Parse(ctx, path, content)
		if err != nil {
			return nil, realign.Target{}, fmt.Errorf("parse %s: %w", path, err)
		}

		if opts.StartLine <= 0 && opts.EndLine <= 0 {
			return buf, realign.NodeTarget(root), nil
		}

		span, ok := lineSpan(buf, opts.StartLine, opts.EndLine)
		if !ok {
			return buf, realign.Target{}, nil
		}

		// Restrict the walked span while keeping the subtree, so
		// protected regions anywhere in the document still apply.
		restricted := *root
		restricted.Span = span
		return buf, realign.NodeTarget(&restricted), nil
	}

	buf := source.NewBuffer(path, content)
	span, ok := lineSpan(buf, opts.StartLine, opts.EndLine)
	if !ok {
		return buf, realign.Target{}, nil
	}
	return buf, realign.RangeTarget(span), nil
}

// lineSpan converts a 1-based inclusive line span into a byte range over
// buf. Zero bounds default to the first and last line. ok is false when
// the span selects no lines.
func lineSpan(buf *source.Buffer, startLine, endLine int) (source.Range, bool) {
	count := buf.LineCount()
	if count == 0 {
		return source.Range{}, false
	}

	if startLine <= 0 {
		startLine = 1
	}
	if endLine <= 0 || endLine > count {
		endLine = count
	}
	if startLine > count || startLine > endLine {
		return source.Range{}, false
	}

	start := buf.LineRange(startLine).Start
	end := buf.LineRange(endLine).End
	return source.NewRange(start, end), true
}

// isMarkdown reports whether path carries one of the given extensions.
func isMarkdown(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
