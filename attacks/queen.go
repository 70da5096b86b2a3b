package attacks

import (
	"go.pawnframe.dev/chesscore/bitboard"
	"go.pawnframe.dev/chesscore/square"
)

func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(s, occ) | Bishop(s, occ)
}
