// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package bitboard

import (
	"math/bits"

	"go.pawnframe.dev/chesscore/square"
)

// Between[a][b] is the set of squares strictly between a and b if they
// share a file, rank, or diagonal, and Empty otherwise.
var Between [square.N][square.N]Board

// Line[a][b] is the full line (file, rank, or diagonal) passing through
// both a and b, or just Squares[b] if the two squares aren't aligned.
var Line [square.N][square.N]Board

// BetweenStraight and BetweenDiagonal are the file/rank-only and
// diagonal-only restrictions of Between, used where a caller needs to
// tell apart a horizontal/vertical pin from a diagonal one.
var BetweenStraight [square.N][square.N]Board
var BetweenDiagonal [square.N][square.N]Board

func init() {
	for a := square.A8; a <= square.H1; a++ {
		for b := square.A8; b <= square.H1; b++ {
			if a == b {
				continue
			}

			// this init runs before the one in consts.go that fills
			// Squares, so single-square bitboards are built by shifting
			occ := Board(1)<<a | Board(1)<<b

			switch {
			case a.File() == b.File():
				mask := Files[a.File()]
				Between[a][b] = hyperbola(a, occ, mask) & hyperbola(b, occ, mask)
				Line[a][b] = mask
				BetweenStraight[a][b] = Between[a][b]

			case a.Rank() == b.Rank():
				mask := Ranks[a.Rank()]
				Between[a][b] = hyperbola(a, occ, mask) & hyperbola(b, occ, mask)
				Line[a][b] = mask
				BetweenStraight[a][b] = Between[a][b]

			case a.Diagonal() == b.Diagonal():
				mask := Diagonals[a.Diagonal()]
				Between[a][b] = hyperbola(a, occ, mask) & hyperbola(b, occ, mask)
				Line[a][b] = mask
				BetweenDiagonal[a][b] = Between[a][b]

			case a.AntiDiagonal() == b.AntiDiagonal():
				mask := AntiDiagonals[a.AntiDiagonal()]
				Between[a][b] = hyperbola(a, occ, mask) & hyperbola(b, occ, mask)
				Line[a][b] = mask
				BetweenDiagonal[a][b] = Between[a][b]

			default:
				// unaligned: no squares between, and the degenerate
				// "line" through them is just the target square
				Line[a][b] = Board(1) << b
			}
		}
	}
}

// hyperbola computes the hyperbola quintessence sliding attack set from
// s along mask, treating the squares of occ that lie in mask as occupied.
// Used only to derive the static Between/Line tables at init time; the
// movegen-facing version lives in the attacks package.
func hyperbola(s square.Square, occ, mask Board) Board {
	r := Board(1) << s
	o := occ & mask
	return ((o - 2*r) ^ reverseBoard(reverseBoard(o)-2*reverseBoard(r))) & mask
}

func reverseBoard(b Board) Board {
	return Board(bits.Reverse64(uint64(b)))
}
