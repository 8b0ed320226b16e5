// Package fix provides the text edit types and application logic consumed
// by the realignment engine. The engine emits edits; this package
// validates, orders, and applies them.
package fix

import "github.com/yaklabco/realign/pkg/source"

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Range returns the byte range the edit covers.
func (e TextEdit) Range() source.Range {
	return source.NewRange(e.StartOffset, e.EndOffset)
}

// IsInsert returns true if the edit inserts text without removing any.
func (e TextEdit) IsInsert() bool {
	return e.StartOffset == e.EndOffset && e.NewText != ""
}

// IsDelete returns true if the edit removes text without inserting any.
func (e TextEdit) IsDelete() bool {
	return e.StartOffset < e.EndOffset && e.NewText == ""
}

// Accumulator collects text edits for a file.
type Accumulator struct {
	edits []TextEdit
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{edits: make([]TextEdit, 0)}
}

// Replace adds an edit that replaces the given range with newText.
func (a *Accumulator) Replace(r source.Range, newText string) {
	a.edits = append(a.edits, TextEdit{
		StartOffset: r.Start,
		EndOffset:   r.End,
		NewText:     newText,
	})
}

// Insert adds an edit that inserts text at the given offset.
func (a *Accumulator) Insert(offset int, text string) {
	a.Replace(source.NewRange(offset, offset), text)
}

// Remove adds an edit that deletes the given range.
func (a *Accumulator) Remove(r source.Range) {
	a.Replace(r, "")
}

// Len returns the number of accumulated edits.
func (a *Accumulator) Len() int {
	return len(a.edits)
}

// Take returns the accumulated edits and resets the accumulator.
func (a *Accumulator) Take() []TextEdit {
	edits := a.edits
	a.edits = nil
	return edits
}
