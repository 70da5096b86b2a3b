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
	"fmt"
	"strconv"
	"strings"

	"go.pawnframe.dev/chesscore/move/castling"
	"go.pawnframe.dev/chesscore/piece"
	"go.pawnframe.dev/chesscore/square"
	"go.pawnframe.dev/chesscore/zobrist"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseError reports a malformed FEN string along with which part of it
// failed to parse.
type ParseError struct {
	FEN    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse fen %q: %s", e.FEN, e.Reason)
}

// NewBoard creates a Board from the given FEN string. It returns a
// *ParseError if the string does not have the required six
// whitespace-separated fields or any field is malformed.
func NewBoard(fen string) (*Board, error) {
	fields := strings.Split(strings.TrimSpace(fen), " ")
	if len(fields) != 6 {
		return nil, &ParseError{FEN: fen, Reason: fmt.Sprintf("want 6 fields, got %d", len(fields))}
	}

	b := &Board{}

	if err := b.parsePlacement(fields[0]); err != nil {
		return nil, &ParseError{FEN: fen, Reason: err.Error()}
	}

	switch fields[1] {
	case "w":
		b.SideToMove = piece.White
	case "b":
		b.SideToMove = piece.Black
		b.Hash ^= zobrist.SideToMove
	default:
		return nil, &ParseError{FEN: fen, Reason: "invalid side to move: " + fields[1]}
	}

	b.CastlingRights = castling.NewRights(fields[2])
	if fields[2] != "-" && b.CastlingRights.String() != fields[2] {
		return nil, &ParseError{FEN: fen, Reason: "invalid castling rights: " + fields[2]}
	}
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.EnPassantTarget = square.None
	if fields[3] != "-" {
		ep, err := square.None, fmt.Errorf("want 2 characters")
		if len(fields[3]) == 2 {
			ep, err = parseSquareToken(fields[3])
		}
		if err != nil {
			return nil, &ParseError{FEN: fen, Reason: "invalid en passant square: " + fields[3]}
		}
		b.EnPassantTarget = ep
		b.Hash ^= zobrist.EnPassant[ep.File()]
	}

	drawClock, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, &ParseError{FEN: fen, Reason: "invalid half-move clock: " + fields[4]}
	}
	b.DrawClock = drawClock

	fullMoves, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, &ParseError{FEN: fen, Reason: "invalid full-move counter: " + fields[5]}
	}
	b.FullMoves = fullMoves

	b.refreshCaches()

	return b, nil
}

func (b *Board) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("want 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := square.Rank(i)
		file := square.FileA

		for _, c := range rankStr {
			if file > square.FileH {
				return fmt.Errorf("rank %d overflows the board", i)
			}

			if n, err := strconv.Atoi(string(c)); err == nil {
				if n < 1 || n > 8 {
					return fmt.Errorf("invalid empty-square count %q in rank %d", c, i)
				}
				file += square.File(n)
				continue
			}

			if !strings.ContainsRune("PNBRQKpnbrqk", c) {
				return fmt.Errorf("invalid piece %q in rank %d", c, i)
			}

			p := piece.NewFromString(string(c))
			b.FillSquare(square.New(file, rank), p)
			file++
		}

		if file != square.FileN {
			return fmt.Errorf("rank %d has %d squares, want 8", i, file)
		}
	}

	return nil
}

// FEN generates the complete FEN string representing the current board
// position.
func (b *Board) FEN() string {
	return fmt.Sprintf(
		"%s %s %s %s %d %d",
		b.Position.FEN(),
		b.SideToMove.String(),
		b.CastlingRights.String(),
		b.EnPassantTarget.String(),
		b.DrawClock,
		b.FullMoves,
	)
}
