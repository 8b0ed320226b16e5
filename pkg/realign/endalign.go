package realign

import (
	"strings"

	"github.com/yaklabco/realign/pkg/config"
	"github.com/yaklabco/realign/pkg/fix"
	"github.com/yaklabco/realign/pkg/source"
	"github.com/yaklabco/realign/pkg/syntree"
)

// AlignEnd rewrites the whitespace immediately before node's terminal
// (closing) token so the token starts at the target column. When the
// token shares its line with preceding content, the token is instead
// pushed onto its own new line at the target column, preserving that
// content.
//
// AlignEnd is independent of Realign: it uses neither the line walker
// nor protected ranges, since a single token's immediately preceding
// whitespace cannot contain string or comment bodies. A node without a
// closing delimiter yields no edits.
func (e *Engine) AlignEnd(node *syntree.Node, to AlignTo) []fix.TextEdit {
	if node == nil || !node.HasClose() {
		return nil
	}

	col := to.resolveColumn(e.buf)
	closeStart := node.Close.Start
	leading := source.NewRange(e.buf.LineStartAt(closeStart), closeStart)

	acc := fix.NewAccumulator()
	if isBlank(leading.Text(e.buf)) {
		acc.Replace(leading, e.indentString(col))
	} else {
		acc.Insert(closeStart, "\n"+e.indentString(col))
	}
	return acc.Take()
}

// indentString renders n indentation characters in the configured style:
// n tabs under tab style, n spaces under space style.
func (e *Engine) indentString(n int) string {
	if e.cfg.Style == config.StyleTabs {
		return strings.Repeat("\t", n)
	}
	return strings.Repeat(" ", n)
}
