package move_test

import (
	"testing"

	"go.pawnframe.dev/chesscore/move"
	"go.pawnframe.dev/chesscore/piece"
	"go.pawnframe.dev/chesscore/square"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name   string
		m      move.Move
		ep     square.Square
		want   move.Kind
	}{
		{
			name: "quiet knight move",
			m:    move.New(square.B1, square.C3, piece.WhiteKnight, false),
			ep:   square.None,
			want: move.Quiet,
		},
		{
			name: "pawn capture",
			m:    move.New(square.E4, square.D5, piece.WhitePawn, true),
			ep:   square.None,
			want: move.Capture,
		},
		{
			name: "pawn double push",
			m:    move.New(square.E2, square.E4, piece.WhitePawn, false),
			ep:   square.None,
			want: move.DoublePush,
		},
		{
			name: "en passant",
			m:    move.New(square.E5, square.D6, piece.WhitePawn, true),
			ep:   square.D6,
			want: move.EnPassant,
		},
		{
			name: "kingside castle",
			m:    move.New(square.E1, square.G1, piece.WhiteKing, false),
			ep:   square.None,
			want: move.Castle,
		},
		{
			name: "promotion",
			m:    move.New(square.E7, square.E8, piece.WhitePawn, false).SetPromotion(piece.WhiteQueen),
			ep:   square.None,
			want: move.Promotion,
		},
		{
			name: "promotion capture",
			m:    move.New(square.E7, square.D8, piece.WhitePawn, true).SetPromotion(piece.WhiteQueen),
			ep:   square.None,
			want: move.PromotionCapture,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.m.Kind(test.ep); got != test.want {
				t.Errorf("%s: want %v got %v", test.m, test.want, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		m    move.Move
		want string
	}{
		{move.Null, "0000"},
		{move.New(square.E2, square.E4, piece.WhitePawn, false), "e2e4"},
		{move.New(square.E7, square.E8, piece.WhitePawn, false).SetPromotion(piece.WhiteQueen), "e7e8q"},
	}

	for _, test := range tests {
		if got := test.m.String(); got != test.want {
			t.Errorf("want %q got %q", test.want, got)
		}
	}
}
