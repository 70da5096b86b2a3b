// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package tt implements a transposition table, an open-addressed,
// fixed-size cache of previously searched positions keyed by their
// zobrist hash. It is an external collaborator of the board package:
// the board never reads or writes it, only a search layer built on top
// of board.Board would.
package tt

import (
	"math/bits"
	"unsafe"

	"go.pawnframe.dev/chesscore/move"
	"go.pawnframe.dev/chesscore/zobrist"
)

// EntrySize is the size in bytes of a single Entry.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// DefaultSizeMB is the transposition table size used when none is
// configured, matching the memory budget of the original engine.
const DefaultSizeMB = 16

// Flag classifies the bound represented by an Entry's Score.
type Flag uint8

// constants representing the three possible node bound types.
const (
	Alpha Flag = iota // score is an upper bound
	Beta              // score is a lower bound
	Exact             // score is exact
)

// Entry is a single transposition table slot. Its layout is fixed at 16
// bytes: a packed move, a float32 score, a 16-bit age, an 8-bit depth,
// and an 8-bit flag. It deliberately carries no verification key; the
// table is racy by design (see Table), so a probe may occasionally
// return data left by a different position that hashed to the same
// bucket.
type Entry struct {
	Move  move.Move
	Score float32
	Age   uint16
	Depth uint8
	Flag  Flag
}

// replaceScore ranks an entry's desirability versus another entry
// occupying the same bucket: higher depth, higher age (more recent),
// and a more informative flag (Exact over a bound) all win.
func (e Entry) replaceScore() int {
	return int(e.Depth) + int(e.Age) + int(e.Flag)
}

// Table is a fixed-size, open-addressed transposition table. Entries
// are indexed directly by zobrist hash, mapped onto the table size by
// indexOf's fast-range reduction, with a single slot per bucket; a new entry only overwrites an existing one
// if its replaceScore is no worse. Concurrent readers and writers may
// observe a torn or stale Entry; callers must tolerate that instead of
// synchronizing around the table.
type Table struct {
	buckets []Entry
}

// NewTable creates a Table sized to fit within the given memory budget
// in megabytes.
func NewTable(mbs int) *Table {
	size := (mbs * 1024 * 1024) / EntrySize
	if size == 0 {
		size = 1
	}

	return &Table{buckets: make([]Entry, size)}
}

// Resize replaces the table's contents with a freshly sized, empty
// table; unlike the board's do_move/undo_move, resizing is not meant to
// happen on a hot path and does not attempt to preserve old entries.
func (tt *Table) Resize(mbs int) {
	size := (mbs * 1024 * 1024) / EntrySize
	if size == 0 {
		size = 1
	}

	tt.buckets = make([]Entry, size)
}

// Clear empties every slot in the table.
func (tt *Table) Clear() {
	clear(tt.buckets)
}

// Store inserts entry at the bucket for hash, replacing the existing
// occupant only if entry is not a strictly worse fit for that slot.
func (tt *Table) Store(hash zobrist.Key, entry Entry) {
	slot := &tt.buckets[tt.indexOf(hash)]
	if entry.replaceScore() >= slot.replaceScore() {
		*slot = entry
	}
}

// Probe returns the entry stored at hash's bucket. Since Entry carries
// no verification key, the caller is responsible for treating a probe
// as a hint rather than a certainty: it may belong to a different
// position that mapped to the same bucket.
func (tt *Table) Probe(hash zobrist.Key) Entry {
	return tt.buckets[tt.indexOf(hash)]
}

// indexOf maps a zobrist hash onto a bucket index using Daniel Lemire's
// fast-range reduction instead of a modulo.
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func (tt *Table) indexOf(hash zobrist.Key) uint {
	index, _ := bits.Mul(uint(hash), uint(len(tt.buckets)))
	return index
}
