// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package attacks provides precalculated attack tables for every piece
// on every square of the chessboard, including magic-indexed tables for
// the sliding pieces.
package attacks

import (
	"sync"

	"go.pawnframe.dev/chesscore/attacks/magic"
	"go.pawnframe.dev/chesscore/bitboard"
	"go.pawnframe.dev/chesscore/piece"
	"go.pawnframe.dev/chesscore/square"
)

// King and Knight hold the precalculated attack bitboards of a king and
// a knight respectively from every square on the board.
var King [square.N]bitboard.Board
var Knight [square.N]bitboard.Board

// Pawn holds the precalculated attack bitboards of a pawn of the given
// color from every square on the board.
var Pawn [piece.ColorN][square.N]bitboard.Board

var RookTable magic.Table
var BishopTable magic.Table

var once sync.Once

// Init populates every attack table used by the package. It is
// idempotent and safe to call from multiple goroutines; later calls
// after the first are no-ops.
func Init() {
	once.Do(func() {
		for s := square.A8; s <= square.H1; s++ {
			King[s] = kingAttacksFrom(s)
			Knight[s] = knightAttacksFrom(s)

			Pawn[piece.White][s] = whitePawnAttacksFrom(s)
			Pawn[piece.Black][s] = blackPawnAttacksFrom(s)
		}

		RookTable = magic.Table{
			MaxMaskN: MaxRookBlockerSets,
			MoveFunc: rook,
		}
		RookTable.Populate()

		BishopTable = magic.Table{
			MaxMaskN: MaxBishopBlockerSets,
			MoveFunc: bishop,
		}
		BishopTable.Populate()
	})
}

// MaxRookBlockerSets and MaxBishopBlockerSets are the largest number of
// blocker permutations possible for a rook or bishop on any square.
const MaxRookBlockerSets = 4096
const MaxBishopBlockerSets = 512

// board is a helper used while constructing the king and knight attack
// tables: it accumulates a bitboard of target squares reachable from an
// origin square via a set of (file, rank) deltas, discarding any that
// would wrap around an edge of the board.
type board struct {
	origin square.Square
	board  bitboard.Board
}

func (b *board) addAttack(dx, dy int) {
	file := int(b.origin.File()) + dx
	rank := int(b.origin.Rank()) + dy

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return
	}

	b.board.Set(square.New(square.File(file), square.Rank(rank)))
}
