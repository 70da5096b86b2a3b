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

package board

import (
	"go.pawnframe.dev/chesscore/attacks"
	"go.pawnframe.dev/chesscore/move"
	"go.pawnframe.dev/chesscore/piece"
	"go.pawnframe.dev/chesscore/square"
	"go.pawnframe.dev/chesscore/zobrist"
)

// cuckooSize is the number of slots in the cuckoo table, which every key
// can occupy at one of two slots (cuckooIndex1, cuckooIndex2). It must be
// a power of two at least as large as the number of
// reversible (non-pawn, non-capture) piece moves on an empty board, so
// that the insertion loop in init() always terminates.
const cuckooSize = 8192
const cuckooMask = cuckooSize - 1

// cuckooKeys[slot] holds the zobrist difference a move introduces if it
// is the only move played (i.e. Hash(before) ^ Hash(after) for a single
// reversible move), and cuckooMoves[slot] the move producing it.
// Entries are populated by init() using the standard two-hash cuckoo
// insertion scheme: https://www.chessprogramming.org/Repetitions
var cuckooKeys [cuckooSize]uint64
var cuckooMoves [cuckooSize]move.Move

func cuckooIndex1(key uint64) uint64 {
	return key & cuckooMask
}

func cuckooIndex2(key uint64) uint64 {
	return (key >> 32) & cuckooMask
}

// lookupCuckoo reports the move stored under key, probing both of its
// candidate slots, and whether one actually held it.
func lookupCuckoo(key uint64) (move.Move, bool) {
	if slot := cuckooIndex1(key); cuckooKeys[slot] == key && cuckooMoves[slot] != move.Null {
		return cuckooMoves[slot], true
	}

	if slot := cuckooIndex2(key); cuckooKeys[slot] == key && cuckooMoves[slot] != move.Null {
		return cuckooMoves[slot], true
	}

	return move.Null, false
}

func init() {
	attacks.Init()

	for _, c := range []piece.Color{piece.White, piece.Black} {
		for _, t := range []piece.Type{piece.Knight, piece.Bishop, piece.Rook, piece.Queen, piece.King} {
			p := piece.New(t, c)

			for from := square.A8; from <= square.H1; from++ {
				for to := from + 1; to <= square.H1; to++ {
					if !reversiblyAttacks(t, from, to) {
						continue
					}

					mv := move.New(from, to, p, false)
					key := uint64(zobrist.PieceSquare[p][from] ^ zobrist.PieceSquare[p][to] ^ zobrist.SideToMove)

					insertCuckoo(key, mv)
				}
			}
		}
	}
}

// reversiblyAttacks reports whether a piece of type t standing on from
// attacks to on an otherwise empty board, used to decide whether the
// from<->to transition is one a real move can produce and reverse.
func reversiblyAttacks(t piece.Type, from, to square.Square) bool {
	switch t {
	case piece.Knight:
		return attacks.Knight[from].IsSet(to)
	case piece.King:
		return attacks.King[from].IsSet(to)
	case piece.Bishop:
		return attacks.Bishop(from, 0).IsSet(to)
	case piece.Rook:
		return attacks.Rook(from, 0).IsSet(to)
	case piece.Queen:
		return attacks.Queen(from, 0).IsSet(to)
	default:
		return false
	}
}

// insertCuckoo inserts (key, mv) into the cuckoo table, evicting and
// relocating existing entries along the classic cuckoo-hashing
// displacement chain as needed.
func insertCuckoo(key uint64, mv move.Move) {
	slot := cuckooIndex1(key)

	for i := 0; i < cuckooSize; i++ {
		key, cuckooKeys[slot] = cuckooKeys[slot], key
		mv, cuckooMoves[slot] = cuckooMoves[slot], mv

		if mv == move.Null {
			return
		}

		if slot == cuckooIndex1(key) {
			slot = cuckooIndex2(key)
		} else {
			slot = cuckooIndex1(key)
		}
	}
}
