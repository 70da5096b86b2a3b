package board_test

import (
	"testing"

	"go.pawnframe.dev/chesscore/board"
)

// TestParseMoveSyntaxErrors checks that malformed coordinate strings are
// rejected before any legality check, with MoveSyntaxError and the
// offending field identified.
func TestParseMoveSyntaxErrors(t *testing.T) {
	b, err := board.NewBoard(board.StartFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		move  string
		field string
	}{
		{"e2e", "length"},
		{"e2e4qq", "length"},
		{"z2e4", "source square"},
		{"e0e4", "source square"},
		{"e2z4", "target square"},
		{"e2e9", "target square"},
		{"e7e8x", "promotion"},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			_, err := b.ParseMove(tt.move)
			if err == nil {
				t.Fatalf("want error for %q, got nil", tt.move)
			}

			perr, ok := err.(*board.MoveParseError)
			if !ok {
				t.Fatalf("want *board.MoveParseError, got %T", err)
			}
			if perr.Kind != board.MoveSyntaxError {
				t.Errorf("want MoveSyntaxError for %q, got %v", tt.move, perr.Kind)
			}
			if perr.Field != tt.field {
				t.Errorf("want field %q for %q, got %q", tt.field, tt.move, perr.Field)
			}
		})
	}
}

// TestParseMoveIllegalError checks that a syntactically valid move which
// is not legal in the current position is reported as MoveIllegalError,
// distinct from a syntax error.
func TestParseMoveIllegalError(t *testing.T) {
	b, err := board.NewBoard(board.StartFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a1a4 is syntactically well-formed but plainly illegal from the
	// start position: a rook cannot jump to the center on move one.
	_, err = b.ParseMove("a1a4")
	if err == nil {
		t.Fatal("want error for an illegal move, got nil")
	}

	perr, ok := err.(*board.MoveParseError)
	if !ok {
		t.Fatalf("want *board.MoveParseError, got %T", err)
	}
	if perr.Kind != board.MoveIllegalError {
		t.Errorf("want MoveIllegalError, got %v", perr.Kind)
	}
}

// TestParseMoveLegal checks a well-formed, legal move parses cleanly.
func TestParseMoveLegal(t *testing.T) {
	b, err := board.NewBoard(board.StartFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, err := b.ParseMove("e2e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.String() != "e2e4" {
		t.Errorf("want e2e4, got %s", m)
	}
}
