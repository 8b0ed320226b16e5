// Package markdown provides a goldmark-based frontend that derives the
// syntax tree consumed by the realignment engine from Markdown sources.
// Fenced and indented code blocks become quoted blocks, code spans become
// string literals, and HTML comment blocks become structured comments.
package markdown

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/realign/pkg/source"
	"github.com/yaklabco/realign/pkg/syntree"
)

// Parser converts Markdown bytes into a Buffer plus syntax tree.
type Parser struct {
	md goldmark.Markdown
}

// New creates a Markdown parser with GFM extensions enabled.
func New() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Parse builds the source buffer and the realignment syntax tree for the
// given content. The returned tree's root covers the whole buffer.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*source.Buffer, *syntree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("parse cancelled: %w", err)
	}

	buf := source.NewBuffer(path, content)

	reader := text.NewReader(content)
	doc := p.md.Parser().Parse(reader, gmparser.WithContext(gmparser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("parse cancelled: %w", err)
	}

	root := newMapper(buf).mapDocument(doc)
	return buf, root, nil
}
