package board_test

import (
	"testing"

	"go.pawnframe.dev/chesscore/board"
)

// TestPerftShallow checks perft at shallow depths against well known
// reference counts for the start position, cheap enough to run in
// every test invocation.
func TestPerftShallow(t *testing.T) {
	tests := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, test := range tests {
		b, err := board.NewBoard(board.StartFEN)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := b.Perft(test.depth); got != test.want {
			t.Errorf("perft(%d) from start position: want %d got %d", test.depth, test.want, got)
		}
	}
}

// TestDivide checks that Divide's per-move leaf counts sum to the same
// total as Perft at the same depth, and that it visits every move it is
// handed exactly once via its after callback.
func TestDivide(t *testing.T) {
	b, err := board.NewBoard(board.StartFEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const depth = 3
	moves := b.GenerateMoves()

	var visited int
	results := b.Divide(depth, moves, func(board.DivideResult) {
		visited++
	})

	if visited != len(moves) {
		t.Errorf("after callback ran %d times, want %d", visited, len(moves))
	}
	if len(results) != len(moves) {
		t.Fatalf("got %d divide results, want %d", len(results), len(moves))
	}

	var total uint64
	for _, r := range results {
		total += r.Nodes
	}

	if want := b.Perft(depth); total != want {
		t.Errorf("divide total %d does not match perft(%d) %d", total, depth, want)
	}
}

// TestPerftScenarios runs the full set of reference perft scenarios at
// their documented depth. These are expensive (hundreds of millions of
// nodes for the deepest cases) and are skipped in short mode.
func TestPerftScenarios(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping expensive perft scenarios in short mode")
	}

	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{
			name:  "start position",
			fen:   board.StartFEN,
			depth: 6,
			want:  119060324,
		},
		{
			name:  "kiwipete",
			fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			depth: 5,
			want:  193690690,
		},
		{
			name:  "endgame",
			fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			depth: 7,
			want:  178633661,
		},
		{
			name:  "promotions",
			fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
			depth: 5,
			want:  15833292,
		},
		{
			name:  "complex",
			fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
			depth: 5,
			want:  89941194,
		},
		{
			name:  "symmetric middlegame",
			fen:   "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
			depth: 5,
			want:  164075551,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b, err := board.NewBoard(test.fen)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := b.Perft(test.depth); got != test.want {
				t.Errorf("perft(%d) of %s: want %d got %d", test.depth, test.name, test.want, got)
			}
		})
	}
}
