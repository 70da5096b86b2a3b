package board_test

import (
	"testing"

	"go.pawnframe.dev/chesscore/board"
)

// TestRepetitionDetection plays a knight shuffle back to the starting
// position and checks that IsRepetition recognizes the repeat.
func TestRepetitionDetection(t *testing.T) {
	b, err := board.NewBoard(board.StartFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for _, s := range line {
		m, err := b.ParseMove(s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		b.MakeMove(m)
	}

	if !b.IsRepetition() {
		t.Error("expected a repetition after the knight shuffle returns to the start position")
	}
}

// TestHasUpcomingRepetitionNoFalsePositive checks that a fresh game with
// no reversible history reports no upcoming repetition.
func TestHasUpcomingRepetitionNoFalsePositive(t *testing.T) {
	b, err := board.NewBoard(board.StartFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.HasUpcomingRepetition() {
		t.Error("fresh start position should report no upcoming repetition")
	}
}

// TestHasUpcomingRepetitionTruePositive plays the first three plies of a
// knight shuffle back to the start position (one reversible move short
// of actually repeating) and checks that HasUpcomingRepetition detects
// the cycle before it closes.
func TestHasUpcomingRepetitionTruePositive(t *testing.T) {
	b, err := board.NewBoard(board.StartFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := []string{"g1f3", "g8f6", "f3g1"}
	for _, s := range line {
		m, err := b.ParseMove(s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		b.MakeMove(m)
	}

	if !b.HasUpcomingRepetition() {
		t.Error("want an upcoming repetition one move before the knight shuffle closes")
	}
}
