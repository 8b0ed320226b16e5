// Package syntree defines the syntax subtree consumed by the realignment
// engine. The tree is produced by a frontend (see pkg/parser) and is
// read-only input here: nodes carry byte ranges and kind tags, never text.
package syntree

import "github.com/yaklabco/realign/pkg/source"

// Kind classifies a node for the purposes of realignment.
type Kind uint8

const (
	// KindOther is any node with no special realignment behavior.
	KindOther Kind = iota

	// KindRoot is the tree root.
	KindRoot

	// KindBlock is a structural grouping node (list item, blockquote, ...).
	KindBlock

	// KindStringLiteral is a single-line delimited literal whose body must
	// never be edited.
	KindStringLiteral

	// KindQuotedBlock is a multi-line quoted block (fenced code, heredoc)
	// whose body must never be edited.
	KindQuotedBlock

	// KindDocComment is a structured comment; realignment inside one is a
	// no-op.
	KindDocComment
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindBlock:
		return "block"
	case KindStringLiteral:
		return "string-literal"
	case KindQuotedBlock:
		return "quoted-block"
	case KindDocComment:
		return "doc-comment"
	default:
		return "other"
	}
}

// Node is a single element of the syntax tree. Nodes form a tree with
// parent/child/sibling pointers; there are no cycles.
type Node struct {
	// Kind identifies what type of node this is.
	Kind Kind

	// Span is the full byte range of the node, delimiters included.
	Span source.Range

	// Open is the opening delimiter token's range. Zero (empty at offset 0)
	// when the node has no opening delimiter.
	Open source.Range

	// Close is the closing delimiter token's range. Zero when the node has
	// no closing delimiter.
	Close source.Range

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node
}

// New creates a node of the given kind covering span.
func New(kind Kind, span source.Range) *Node {
	return &Node{Kind: kind, Span: span}
}

// HasOpen returns true if the node has an opening delimiter.
func (n *Node) HasOpen() bool {
	return !n.Open.IsEmpty() || n.Open.Start > 0
}

// HasClose returns true if the node has a closing delimiter.
func (n *Node) HasClose() bool {
	return !n.Close.IsEmpty() || n.Close.Start > 0
}

// AppendChild adds child as the last child of parent.
func AppendChild(parent, child *Node) {
	child.Parent = parent
	child.Prev = parent.LastChild

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	}
	parent.LastChild = child

	if parent.FirstChild == nil {
		parent.FirstChild = child
	}
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// InsideDocComment returns true if the node or any of its ancestors is a
// structured comment.
func (n *Node) InsideDocComment() bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind == KindDocComment {
			return true
		}
	}
	return false
}
