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

	"go.pawnframe.dev/chesscore/move"
	"go.pawnframe.dev/chesscore/piece"
	"go.pawnframe.dev/chesscore/square"
)

// MoveErrorKind distinguishes a syntactically malformed coordinate move
// from one that is well-formed but not legal in the current position.
type MoveErrorKind uint8

const (
	MoveSyntaxError MoveErrorKind = iota
	MoveIllegalError
)

// MoveParseError reports a malformed or illegal coordinate move string,
// along with the field/token that failed.
type MoveParseError struct {
	Move   string
	Kind   MoveErrorKind
	Field  string
	Reason string
}

func (e *MoveParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parse move %q: %s", e.Move, e.Reason)
	}
	return fmt.Sprintf("parse move %q: %s: %s", e.Move, e.Field, e.Reason)
}

// ParseMove parses s as a move in pure coordinate notation
// (<from><to>[promotion]) and checks it against the board's legal moves,
// since the board's own generator never produces a pseudo-legal-but-not-
// legal move.
//
// Two distinct kinds of error can occur: a syntax error (wrong length,
// an out-of-range square letter, an unknown promotion letter) reported
// before any legality is considered, and an illegal-in-context error
// (the move is well-formed but names no legal move from this position).
// A syntax error identifies the failing field, per spec.md §7's error
// kinds; an illegal-in-context error leaves Field empty.
func (b *Board) ParseMove(s string) (move.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return move.Null, &MoveParseError{Move: s, Kind: MoveSyntaxError, Field: "length", Reason: "must be 4 or 5"}
	}

	from, err := parseSquareToken(s[0:2])
	if err != nil {
		return move.Null, &MoveParseError{Move: s, Kind: MoveSyntaxError, Field: "source square", Reason: err.Error()}
	}

	to, err := parseSquareToken(s[2:4])
	if err != nil {
		return move.Null, &MoveParseError{Move: s, Kind: MoveSyntaxError, Field: "target square", Reason: err.Error()}
	}

	hasPromotion := len(s) == 5
	var promotion piece.Type
	if hasPromotion {
		promotion, err = parsePromotionLetter(s[4])
		if err != nil {
			return move.Null, &MoveParseError{Move: s, Kind: MoveSyntaxError, Field: "promotion", Reason: err.Error()}
		}
	}

	for _, m := range b.GenerateMoves() {
		if m.Source() != from || m.Target() != to {
			continue
		}
		if m.IsPromotion() != hasPromotion {
			continue
		}
		if hasPromotion && m.ToPiece().Type() != promotion {
			continue
		}
		return m, nil
	}

	return move.Null, &MoveParseError{Move: s, Kind: MoveIllegalError, Reason: "not a legal move in this position"}
}

// parseSquareToken parses a two-character square identifier like "e4",
// rejecting anything outside the a-h/1-8 range instead of deferring to
// square.NewFromString, which panics on invalid input — a parser must
// report malformed input as an error, never as a panic.
func parseSquareToken(tok string) (square.Square, error) {
	file := tok[0]
	if file < 'a' || file > 'h' {
		return square.None, fmt.Errorf("invalid file %q", tok[0:1])
	}

	rank := tok[1]
	if rank < '1' || rank > '8' {
		return square.None, fmt.Errorf("invalid rank %q", tok[1:2])
	}

	return square.New(square.File(file-'a'), square.Rank1-square.Rank(rank-'1')), nil
}

// parsePromotionLetter parses the optional fifth character of a
// coordinate move as one of the four promotable piece types.
func parsePromotionLetter(c byte) (piece.Type, error) {
	switch c {
	case 'q':
		return piece.Queen, nil
	case 'r':
		return piece.Rook, nil
	case 'b':
		return piece.Bishop, nil
	case 'n':
		return piece.Knight, nil
	default:
		return piece.NoType, fmt.Errorf("unknown promotion letter %q", string(c))
	}
}
