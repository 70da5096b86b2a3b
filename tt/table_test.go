package tt_test

import (
	"testing"

	"go.pawnframe.dev/chesscore/move"
	"go.pawnframe.dev/chesscore/piece"
	"go.pawnframe.dev/chesscore/square"
	"go.pawnframe.dev/chesscore/tt"
	"go.pawnframe.dev/chesscore/zobrist"
)

func TestEntrySize(t *testing.T) {
	if tt.EntrySize != 16 {
		t.Errorf("want 16-byte entries, got %d", tt.EntrySize)
	}
}

func TestStoreProbe(t *testing.T) {
	table := tt.NewTable(1)

	hash := zobrist.Key(0xdeadbeefcafef00d)
	mv := move.New(square.E2, square.E4, piece.WhitePawn, false)

	table.Store(hash, tt.Entry{Move: mv, Score: 1.5, Age: 3, Depth: 8, Flag: tt.Exact})

	got := table.Probe(hash)
	if got.Move != mv || got.Score != 1.5 || got.Depth != 8 || got.Flag != tt.Exact {
		t.Errorf("probe returned unexpected entry: %+v", got)
	}
}

func TestStoreReplacement(t *testing.T) {
	table := tt.NewTable(1)
	hash := zobrist.Key(42)

	shallow := tt.Entry{Depth: 1, Age: 0, Flag: tt.Alpha}
	deep := tt.Entry{Depth: 20, Age: 0, Flag: tt.Exact}

	table.Store(hash, deep)
	table.Store(hash, shallow)

	if got := table.Probe(hash); got.Depth != deep.Depth {
		t.Errorf("a shallower entry should not replace a deeper one; got depth %d", got.Depth)
	}
}

func TestClear(t *testing.T) {
	table := tt.NewTable(1)
	hash := zobrist.Key(7)

	table.Store(hash, tt.Entry{Depth: 10, Flag: tt.Exact})
	table.Clear()

	if got := table.Probe(hash); got.Depth != 0 {
		t.Errorf("expected empty entry after Clear, got depth %d", got.Depth)
	}
}
