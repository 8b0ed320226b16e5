package fix_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/realign/pkg/fix"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		edits      []fix.TextEdit
		contentLen int
		wantErr    bool
	}{
		{
			name:       "valid edits",
			edits:      []fix.TextEdit{{StartOffset: 0, EndOffset: 2}, {StartOffset: 3, EndOffset: 3}},
			contentLen: 10,
			wantErr:    false,
		},
		{
			name:       "negative start",
			edits:      []fix.TextEdit{{StartOffset: -1, EndOffset: 2}},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name:       "end before start",
			edits:      []fix.TextEdit{{StartOffset: 5, EndOffset: 2}},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name:       "end past content",
			edits:      []fix.TextEdit{{StartOffset: 0, EndOffset: 11}},
			contentLen: 10,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.Validate(tt.edits, tt.contentLen)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrepareDetectsConflicts(t *testing.T) {
	t.Parallel()

	edits := []fix.TextEdit{
		{StartOffset: 0, EndOffset: 4, NewText: "a"},
		{StartOffset: 2, EndOffset: 6, NewText: "b"},
	}

	_, err := fix.Prepare(edits, 10)
	if err == nil {
		t.Fatal("expected conflict error")
	}

	var conflict *fix.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("error type = %T, want *ConflictError", err)
	}
}

func TestPrepareSortsEdits(t *testing.T) {
	t.Parallel()

	edits := []fix.TextEdit{
		{StartOffset: 6, EndOffset: 6, NewText: "x"},
		{StartOffset: 0, EndOffset: 0, NewText: "y"},
	}

	prepared, err := fix.Prepare(edits, 10)
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	if prepared[0].StartOffset != 0 || prepared[1].StartOffset != 6 {
		t.Errorf("edits not sorted: %+v", prepared)
	}

	// Input slice is left untouched.
	if edits[0].StartOffset != 6 {
		t.Error("Prepare mutated its input")
	}
}
