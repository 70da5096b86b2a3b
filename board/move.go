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
	"go.pawnframe.dev/chesscore/bitboard"
	"go.pawnframe.dev/chesscore/move"
	"go.pawnframe.dev/chesscore/move/castling"
	"go.pawnframe.dev/chesscore/piece"
	"go.pawnframe.dev/chesscore/square"
	"go.pawnframe.dev/chesscore/zobrist"
)

// MakeMove plays the given move on the board, updating every piece of
// position state incrementally and pushing the irreversible parts of
// the previous state onto History so UnmakeMove can restore them. It
// returns whether the move was reversible (a quiet, non-pawn move),
// which callers like search heuristics use without recomputing it from
// the move's kind themselves.
func (b *Board) MakeMove(m move.Move) bool {
	us := b.SideToMove
	them := us.Other()

	from := m.Source()
	to := m.Target()

	moving := m.FromPiece()
	captured := b.Position[to]

	kind := m.Kind(b.EnPassantTarget)

	// the en-passant victim sits beside the destination square, not on
	// it, so the generic b.Position[to] lookup above finds nothing
	if kind == move.EnPassant {
		captured = b.Position[square.New(to.File(), from.Rank())]
	}

	b.History[b.Plys] = BoardState{
		Move:            m,
		CapturedPiece:   captured,
		CastlingRights:  b.CastlingRights,
		EnPassantTarget: b.EnPassantTarget,
		DrawClock:       b.DrawClock,
		Hash:            b.Hash,
	}
	b.Plys++

	// reset en passant target; it is only valid for one ply
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
		b.EnPassantTarget = square.None
	}

	b.DrawClock++
	if moving.Type() == piece.Pawn || kind == move.Capture || kind == move.PromotionCapture {
		b.DrawClock = 0
	}

	switch kind {
	case move.EnPassant:
		capturedSq := square.New(to.File(), from.Rank())
		b.ClearSquare(capturedSq)
		b.ClearSquare(from)
		b.FillSquare(to, moving)

	case move.Castle:
		b.ClearSquare(from)
		b.FillSquare(to, moving)

		rook := castling.Rooks[to]
		b.ClearSquare(rook.From)
		b.FillSquare(rook.To, rook.RookType)

	case move.Promotion, move.PromotionCapture:
		if captured != piece.NoPiece {
			b.ClearSquare(to)
		}
		b.ClearSquare(from)
		b.FillSquare(to, m.ToPiece())

	case move.DoublePush:
		b.ClearSquare(from)
		b.FillSquare(to, moving)

		target := (from + to) / 2 // the square the pawn passed over
		// only set the en passant square if an enemy pawn can capture it,
		// so the hash of a position never depends on an uncapturable
		// target, which would desync from a hash recomputed off its FEN
		if b.Pawns(them)&attacks.Pawn[us][target] != bitboard.Empty {
			b.EnPassantTarget = target
			b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
		}

	default: // Quiet, Capture
		if captured != piece.NoPiece {
			b.ClearSquare(to)
		}
		b.ClearSquare(from)
		b.FillSquare(to, moving)
	}

	b.Hash ^= zobrist.Castling[b.CastlingRights]
	b.CastlingRights &^= castling.RightUpdates[from] | castling.RightUpdates[to]
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.SideToMove = them
	b.Hash ^= zobrist.SideToMove

	if us == piece.Black {
		b.FullMoves++
	}

	b.refreshCaches()

	return m.IsReversible()
}

// UnmakeMove reverses the effects of the most recently played move,
// restoring both the reversible and irreversible position state.
func (b *Board) UnmakeMove() {
	b.Plys--
	state := b.History[b.Plys]

	m := state.Move
	from := m.Source()
	to := m.Target()

	us := b.SideToMove.Other()
	kind := m.Kind(state.EnPassantTarget)

	switch kind {
	case move.EnPassant:
		b.ClearSquare(to)
		b.FillSquare(from, m.FromPiece())
		capturedSq := square.New(to.File(), from.Rank())
		b.FillSquare(capturedSq, state.CapturedPiece)

	case move.Castle:
		rook := castling.Rooks[to]
		b.ClearSquare(rook.To)
		b.FillSquare(rook.From, rook.RookType)

		b.ClearSquare(to)
		b.FillSquare(from, m.FromPiece())

	case move.Promotion, move.PromotionCapture:
		b.ClearSquare(to)
		b.FillSquare(from, m.FromPiece())
		if state.CapturedPiece != piece.NoPiece {
			b.FillSquare(to, state.CapturedPiece)
		}

	default: // Quiet, Capture, DoublePush
		b.ClearSquare(to)
		b.FillSquare(from, m.FromPiece())
		if state.CapturedPiece != piece.NoPiece {
			b.FillSquare(to, state.CapturedPiece)
		}
	}

	if us == piece.Black {
		b.FullMoves--
	}

	b.SideToMove = us
	b.CastlingRights = state.CastlingRights
	b.EnPassantTarget = state.EnPassantTarget
	b.DrawClock = state.DrawClock
	b.Hash = state.Hash

	b.refreshCaches()
}

// NewMove builds a move.Move from the board's current position data for
// the given source/target squares, inferring the moving piece and
// whether the move is a capture from the board itself.
func (b *Board) NewMove(from, to square.Square) move.Move {
	moving := b.Position[from]
	isCapture := b.Position[to] != piece.NoPiece || (moving.Type() == piece.Pawn && to == b.EnPassantTarget)
	return move.New(from, to, moving, isCapture)
}

// stage identifies a phase of staged move generation. Moves are produced
// in this exact order so that callers which only need the first few
// plausible moves (quiescence search, move-count-only perft) can stop
// early without ever materializing the cheaper stages.
type stage uint8

const (
	stageCastles stage = iota
	stagePawnCaptures
	stagePieceCaptures
	stageKingCaptures
	stageEnPassant
	stagePawnPushes
	stagePieceQuiets
	stageKingQuiets
	stageDone
)

// Generator produces the legal moves of a position lazily, one stage at
// a time. Each stage buffers its own moves and hands them out before
// moving to the next, so a caller that only needs to know "is there any
// legal move" or "the first N moves" never pays for the later stages.
type Generator struct {
	b *Board

	st     stage
	buf    []move.Move
	bufPos int
}

// NewGenerator creates a move Generator over the current position of b.
func NewGenerator(b *Board) *Generator {
	return &Generator{b: b, st: stageCastles}
}

// Next returns the next legal move in staged order, and false once
// every stage has been exhausted.
func (g *Generator) Next() (move.Move, bool) {
	for {
		for g.bufPos < len(g.buf) {
			m := g.buf[g.bufPos]
			g.bufPos++
			return m, true
		}

		if g.st == stageDone {
			return move.Null, false
		}

		g.buf = g.buf[:0]
		g.bufPos = 0
		g.fill(g.st)
		g.st++
	}
}

func (g *Generator) fill(st stage) {
	b := g.b

	// double check: only the king can move, and only king stages apply
	if b.CheckN >= 2 {
		switch st {
		case stageKingCaptures:
			g.buf = append(g.buf, b.kingMoves(true)...)
		case stageKingQuiets:
			g.buf = append(g.buf, b.kingMoves(false)...)
		}
		return
	}

	switch st {
	case stageCastles:
		g.buf = append(g.buf, b.genCastlingMoves()...)
	case stagePawnCaptures:
		g.buf = append(g.buf, b.genPawnMoves(true)...)
	case stagePieceCaptures:
		g.buf = append(g.buf, b.pieceMoves(true)...)
	case stageKingCaptures:
		g.buf = append(g.buf, b.kingMoves(true)...)
	case stageEnPassant:
		g.buf = append(g.buf, b.genEnPassant()...)
	case stagePawnPushes:
		g.buf = append(g.buf, b.genPawnMoves(false)...)
	case stagePieceQuiets:
		g.buf = append(g.buf, b.pieceMoves(false)...)
	case stageKingQuiets:
		g.buf = append(g.buf, b.kingMoves(false)...)
	}
}

// GenerateMoves drains a fresh Generator into a slice; a convenience
// wrapper for callers that don't need the staged, lazy interface.
func (b *Board) GenerateMoves() []move.Move {
	g := NewGenerator(b)
	moves := make([]move.Move, 0, 48)
	for {
		m, ok := g.Next()
		if !ok {
			return moves
		}
		moves = append(moves, m)
	}
}

// pinAllowed filters targets of a piece on from by its pin-mask: a piece
// pinned diagonally may only move along the diagonal pin line, and a
// piece pinned horizontally/vertically only along that line; unpinned
// pieces are unrestricted.
func (b *Board) pinAllowed(from square.Square, targets bitboard.Board) bitboard.Board {
	sq := bitboard.Squares[from]

	if b.PinnedD&sq != bitboard.Empty || b.PinnedHV&sq != bitboard.Empty {
		return targets & bitboard.Line[b.Kings[b.SideToMove]][from]
	}

	return targets
}

func (b *Board) genCastlingMoves() []move.Move {
	if b.CheckN != 0 {
		return nil
	}

	us := b.SideToMove
	kingSq := b.Kings[us]

	var moves []move.Move

	targets := attacks.KingAll(kingSq, b.Occupied, b.CastlingRights) &^ attacks.King[kingSq]
	for targets != bitboard.Empty {
		to := targets.Pop()
		if b.castleIsLegal(kingSq, to) {
			moves = append(moves, b.NewMove(kingSq, to))
		}
	}

	return moves
}

// castleIsLegal checks that no square the king passes through (including
// its origin and destination) is attacked, since a king may not castle
// out of, through, or into check.
func (b *Board) castleIsLegal(from, to square.Square) bool {
	path := bitboard.BetweenStraight[from][to] | bitboard.Squares[from] | bitboard.Squares[to]
	return path&b.SeenByEnemy == bitboard.Empty
}

func (b *Board) genEnPassant() []move.Move {
	if b.EnPassantTarget == square.None {
		return nil
	}

	us := b.SideToMove
	them := us.Other()
	ep := b.EnPassantTarget

	var moves []move.Move

	candidates := attacks.Pawn[them][ep] & b.Pawns(us)
	for candidates != bitboard.Empty {
		from := candidates.Pop()

		if !b.enPassantIsLegal(from, ep) {
			continue
		}

		moves = append(moves, b.NewMove(from, ep))
	}

	return moves
}

// enPassantIsLegal checks that an en-passant capture resolves any
// current check (by capturing the checking pawn or blocking on the
// target square) and leaves the king free of slider attacks once both
// pawns have moved. The latter covers pins of the capturing pawn as well
// as the rare horizontal check exposed when both the capturing pawn and
// the captured pawn leave the fourth/fifth rank simultaneously.
func (b *Board) enPassantIsLegal(from, ep square.Square) bool {
	us := b.SideToMove
	them := us.Other()

	captured := square.New(ep.File(), from.Rank())

	if b.CheckMask&(bitboard.Squares[ep]|bitboard.Squares[captured]) == bitboard.Empty {
		return false
	}

	occ := b.Occupied
	occ &^= bitboard.Squares[from]
	occ &^= bitboard.Squares[captured]
	occ |= bitboard.Squares[ep]

	kingSq := b.Kings[us]
	rookAttackers := (b.Rooks(them) | b.Queens(them)) & attacks.Rook(kingSq, occ)
	bishopAttackers := (b.Bishops(them) | b.Queens(them)) & attacks.Bishop(kingSq, occ)
	return rookAttackers|bishopAttackers == bitboard.Empty
}

// genPawnMoves generates pawn moves for one of two mutually exclusive
// stages: diagonal captures (including promote-captures, on the
// capture stage) when tactical is true, or pushes — single, double,
// and straight-push promotions — on the push stage when tactical is
// false. A promotion's stage follows how the pawn got to the back
// rank, not the mere fact that it promotes: spec.md's stage order
// keeps promote-captures with captures and push-promotions with
// pushes.
func (b *Board) genPawnMoves(tactical bool) []move.Move {
	us := b.SideToMove
	var moves []move.Move

	pawns := b.Pawns(us)
	for pawns != bitboard.Empty {
		from := pawns.Pop()

		if tactical {
			captureTargets := attacks.Pawn[us][from] & b.Enemies & b.CheckMask
			captureTargets = b.pinAllowed(from, captureTargets)

			for captureTargets != bitboard.Empty {
				to := captureTargets.Pop()
				moves = append(moves, b.addPawnMove(from, to)...)
			}

			continue
		}

		single := attacks.PawnPush(bitboard.Squares[from], us) &^ b.Occupied
		pushTargets := single & b.CheckMask
		pushTargets = b.pinAllowed(from, pushTargets)

		for pushTargets != bitboard.Empty {
			to := pushTargets.Pop()
			moves = append(moves, b.addPawnMove(from, to)...)
		}

		if single == bitboard.Empty {
			continue
		}

		double := attacks.PawnPush(single, us) &^ b.Occupied & doublePushRank(us)
		double &= b.CheckMask
		double = b.pinAllowed(from, double)

		for double != bitboard.Empty {
			to := double.Pop()
			moves = append(moves, b.NewMove(from, to))
		}
	}

	return moves
}

func doublePushRank(c piece.Color) bitboard.Board {
	if c == piece.White {
		return bitboard.Rank4
	}
	return bitboard.Rank5
}

// addPawnMove expands a single pawn move into either one plain move, or
// the four promotion moves if the target square is on the back rank.
func (b *Board) addPawnMove(from, to square.Square) []move.Move {
	us := b.SideToMove

	if to.Rank() != promotionRank(us) {
		return []move.Move{b.NewMove(from, to)}
	}

	base := b.NewMove(from, to)
	return []move.Move{
		base.SetPromotion(piece.New(piece.Queen, us)),
		base.SetPromotion(piece.New(piece.Rook, us)),
		base.SetPromotion(piece.New(piece.Bishop, us)),
		base.SetPromotion(piece.New(piece.Knight, us)),
	}
}

func promotionRank(c piece.Color) square.Rank {
	if c == piece.White {
		return square.Rank8
	}
	return square.Rank1
}

// pieceMoves generates the knight, bishop, rook, and queen moves; when
// captures is true only moves onto an enemy piece are returned,
// otherwise only moves onto an empty square.
func (b *Board) pieceMoves(captures bool) []move.Move {
	us := b.SideToMove
	var moves []move.Move

	dest := b.Enemies
	if !captures {
		dest = ^b.Occupied
	}
	dest &= b.CheckMask

	knights := b.Knights(us)
	for knights != bitboard.Empty {
		from := knights.Pop()
		// a pinned knight can never move without exposing the king: its
		// attack squares never lie on the king's pin line, so pinAllowed
		// reduces a pinned knight's targets to nothing on its own.
		targets := b.pinAllowed(from, attacks.Knight[from]&dest)

		for targets != bitboard.Empty {
			to := targets.Pop()
			moves = append(moves, b.NewMove(from, to))
		}
	}

	bishops := b.Bishops(us)
	for bishops != bitboard.Empty {
		from := bishops.Pop()
		targets := b.pinAllowed(from, attacks.Bishop(from, b.Occupied)&dest)
		for targets != bitboard.Empty {
			to := targets.Pop()
			moves = append(moves, b.NewMove(from, to))
		}
	}

	rooks := b.Rooks(us)
	for rooks != bitboard.Empty {
		from := rooks.Pop()
		targets := b.pinAllowed(from, attacks.Rook(from, b.Occupied)&dest)
		for targets != bitboard.Empty {
			to := targets.Pop()
			moves = append(moves, b.NewMove(from, to))
		}
	}

	queens := b.Queens(us)
	for queens != bitboard.Empty {
		from := queens.Pop()
		targets := b.pinAllowed(from, attacks.Queen(from, b.Occupied)&dest)
		for targets != bitboard.Empty {
			to := targets.Pop()
			moves = append(moves, b.NewMove(from, to))
		}
	}

	return moves
}

// kingMoves generates the king's moves; when captures is true only
// moves onto an enemy piece, otherwise only moves onto an empty square.
// The king may never move to a square attacked by the enemy.
func (b *Board) kingMoves(captures bool) []move.Move {
	us := b.SideToMove
	from := b.Kings[us]

	dest := b.Enemies
	if !captures {
		dest = ^b.Occupied
	}

	targets := attacks.King[from] & dest &^ b.SeenByEnemy

	var moves []move.Move
	for targets != bitboard.Empty {
		to := targets.Pop()
		moves = append(moves, b.NewMove(from, to))
	}

	return moves
}
