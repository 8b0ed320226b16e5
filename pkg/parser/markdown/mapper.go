package markdown

import (
	"bytes"

	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/realign/pkg/source"
	"github.com/yaklabco/realign/pkg/syntree"
)

// mapper converts a goldmark AST into a syntree.Node tree. Only the
// structure the realigner cares about is preserved: block nesting plus
// the literal nodes whose bodies must never be edited.
type mapper struct {
	buf *source.Buffer
}

func newMapper(buf *source.Buffer) *mapper {
	return &mapper{buf: buf}
}

// mapDocument converts a goldmark document into a tree rooted at a
// KindRoot node covering the whole buffer.
func (m *mapper) mapDocument(doc ast.Node) *syntree.Node {
	root := syntree.New(syntree.KindRoot, source.NewRange(0, m.buf.Len()))
	m.mapChildren(doc, root)
	return root
}

func (m *mapper) mapChildren(gmParent ast.Node, parent *syntree.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if node := m.mapNode(child); node != nil {
			syntree.AppendChild(parent, node)
		}
	}
}

func (m *mapper) mapNode(gmNode ast.Node) *syntree.Node {
	switch n := gmNode.(type) {
	case *ast.FencedCodeBlock:
		return m.mapFencedCodeBlock(n)

	case *ast.CodeBlock:
		return m.mapIndentedCodeBlock(n)

	case *ast.HTMLBlock:
		return m.mapHTMLBlock(n)
	}

	if gmNode.Type() == ast.TypeInline {
		return nil
	}

	// Generic block: keep the nesting, collect inline code spans.
	node := syntree.New(syntree.KindBlock, m.blockSpan(gmNode))
	m.mapChildren(gmNode, node)
	m.collectCodeSpans(gmNode, node)

	// Grow the span to cover mapped children (container blocks like
	// lists have no line segments of their own).
	for child := node.FirstChild; child != nil; child = child.Next {
		if node.Span.IsEmpty() {
			node.Span = child.Span
		} else {
			node.Span = node.Span.Join(child.Span)
		}
	}
	if node.Span.IsEmpty() && !node.HasChildren() {
		return nil
	}
	return node
}

// blockSpan returns the union of a block node's own line segments.
func (m *mapper) blockSpan(gmNode ast.Node) source.Range {
	lines := gmNode.Lines()
	if lines == nil || lines.Len() == 0 {
		return source.Range{}
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	return source.NewRange(first.Start, last.Stop)
}

// mapFencedCodeBlock produces a quoted-block node whose Open and Close
// delimiters are the fence lines, leaving the body protected. A fence
// left unclosed at end of input has no Close delimiter.
func (m *mapper) mapFencedCodeBlock(n *ast.FencedCodeBlock) *syntree.Node {
	body := m.blockSpan(n)
	if body.IsEmpty() {
		// Empty body: there is nothing to protect, and goldmark gives us
		// no segment to locate the fences from.
		return nil
	}

	// The opening fence is the full line preceding the body.
	openLine := m.buf.LineIndexAt(body.Start - 1)
	if openLine < 0 {
		return nil
	}
	open := source.NewRange(m.buf.Lines[openLine].StartOffset, body.Start)

	fenceChar := fenceCharOf(open.Text(m.buf))
	if fenceChar == 0 {
		// The fence line could not be located (e.g. the block sits behind
		// a container marker). Fall back to zero-width delimiters so the
		// body stays protected.
		node := syntree.New(syntree.KindQuotedBlock, body)
		node.Open = source.NewRange(body.Start, body.Start)
		node.Close = source.NewRange(body.End, body.End)
		return node
	}

	node := syntree.New(syntree.KindQuotedBlock, source.NewRange(open.Start, body.End))
	node.Open = open

	if closeLine := m.closingFenceLine(body.End, fenceChar); closeLine >= 0 {
		info := m.buf.Lines[closeLine]
		node.Close = source.NewRange(info.StartOffset, info.EndOffset)
		node.Span = source.NewRange(open.Start, info.EndOffset)
	}

	return node
}

// closingFenceLine returns the index of the line at offset if it is a
// closing fence of the given character, or -1.
func (m *mapper) closingFenceLine(offset int, fenceChar byte) int {
	if fenceChar == 0 || offset >= m.buf.Len() {
		return -1
	}
	idx := m.buf.LineIndexAt(offset)
	if idx < 0 {
		return -1
	}
	if m.buf.Lines[idx].StartOffset != offset {
		// The body's last segment ended before its newline; the fence is
		// on the following line.
		if offset < m.buf.Lines[idx].NewlineStart {
			return -1
		}
		idx++
		if idx >= len(m.buf.Lines) {
			return -1
		}
	}

	line := bytes.TrimLeft(m.buf.LineContent(idx+1), " \t>")
	run := 0
	for run < len(line) && line[run] == fenceChar {
		run++
	}
	if run < 3 {
		return -1
	}
	return idx
}

// fenceCharOf returns the fence character (backtick or tilde) used by an
// opening fence line, or 0 if none is found.
func fenceCharOf(openLine []byte) byte {
	trimmed := bytes.TrimLeft(openLine, " \t>")
	if len(trimmed) == 0 {
		return 0
	}
	if c := trimmed[0]; c == '`' || c == '~' {
		return c
	}
	return 0
}

// mapIndentedCodeBlock produces a quoted-block node with zero-width
// delimiters at its bounds: an indented code block has no fence lines,
// but its body must still never be edited.
func (m *mapper) mapIndentedCodeBlock(n *ast.CodeBlock) *syntree.Node {
	body := m.blockSpan(n)
	if body.IsEmpty() {
		return nil
	}

	node := syntree.New(syntree.KindQuotedBlock, body)
	node.Open = source.NewRange(body.Start, body.Start)
	node.Close = source.NewRange(body.End, body.End)
	return node
}

// mapHTMLBlock maps HTML comment blocks to structured comments; other
// HTML blocks stay generic.
func (m *mapper) mapHTMLBlock(n *ast.HTMLBlock) *syntree.Node {
	span := m.blockSpan(n)
	if span.IsEmpty() {
		return nil
	}
	if n.HTMLBlockType == ast.HTMLBlockType2 {
		return syntree.New(syntree.KindDocComment, span)
	}
	return syntree.New(syntree.KindBlock, span)
}

// collectCodeSpans walks gmNode's own inline content and appends a
// string literal child for every code span, with the backtick runs as
// delimiters. Nested blocks are skipped; they are mapped as their own
// nodes and collect their own spans.
func (m *mapper) collectCodeSpans(gmNode ast.Node, parent *syntree.Node) {
	//nolint:errcheck // the walker never fails
	ast.Walk(gmNode, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n != gmNode && n.Type() == ast.TypeBlock {
			return ast.WalkSkipChildren, nil
		}
		span, ok := n.(*ast.CodeSpan)
		if !ok {
			return ast.WalkContinue, nil
		}
		if lit := m.mapCodeSpan(span); lit != nil {
			syntree.AppendChild(parent, lit)
		}
		return ast.WalkSkipChildren, nil
	})
}

func (m *mapper) mapCodeSpan(n *ast.CodeSpan) *syntree.Node {
	body := m.inlineSpan(n)
	if body.IsEmpty() {
		return nil
	}

	open := backtickRunLeft(m.buf.Content, body.Start)
	closing := backtickRunRight(m.buf.Content, body.End)
	if open.IsEmpty() || closing.IsEmpty() {
		return nil
	}

	node := syntree.New(syntree.KindStringLiteral, open.Join(closing))
	node.Open = open
	node.Close = closing
	return node
}

// inlineSpan returns the union of the text segments below an inline node.
func (m *mapper) inlineSpan(gmNode ast.Node) source.Range {
	span := source.Range{}

	//nolint:errcheck // the walker never fails
	ast.Walk(gmNode, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if txt, ok := n.(*ast.Text); ok {
			seg := source.NewRange(txt.Segment.Start, txt.Segment.Stop)
			if span.IsEmpty() {
				span = seg
			} else {
				span = span.Join(seg)
			}
		}
		return ast.WalkContinue, nil
	})

	return span
}

// backtickRunLeft returns the run of backticks ending at offset.
func backtickRunLeft(content []byte, offset int) source.Range {
	start := offset
	for start > 0 && content[start-1] == '`' {
		start--
	}
	return source.NewRange(start, offset)
}

// backtickRunRight returns the run of backticks starting at offset.
func backtickRunRight(content []byte, offset int) source.Range {
	end := offset
	for end < len(content) && content[end] == '`' {
		end++
	}
	return source.NewRange(offset, end)
}
