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

// Command perft counts leaf nodes of the legal move tree rooted at a
// given position, the standard technique for validating a move
// generator against known-correct leaf counts.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/schollz/progressbar/v3"

	"go.pawnframe.dev/chesscore/board"
	"go.pawnframe.dev/chesscore/move"
)

// progressBarMinDepth is the depth at which a perft run starts taking
// long enough that reporting progress is worth the overhead.
const progressBarMinDepth = 5

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: perft <depth> \"<fen>\" [<move>...]")
	}

	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return fmt.Errorf("invalid depth %q: %w", args[0], err)
	}

	b, err := board.NewBoard(args[1])
	if err != nil {
		return err
	}

	if depth == 0 {
		fmt.Println(1)
		return nil
	}

	restrict := args[2:]
	var only []move.Move

	if len(restrict) > 0 {
		only = make([]move.Move, 0, len(restrict))
		for _, s := range restrict {
			m, err := b.ParseMove(s)
			if err != nil {
				return err
			}
			only = append(only, m)
		}
	} else {
		only = b.GenerateMoves()
	}

	var bar *progressbar.ProgressBar
	if depth >= progressBarMinDepth {
		bar = progressbar.NewOptions(
			len(only),
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionSetItsString("move"),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionShowCount(),
		)
	}

	results := b.Divide(depth, only, func(r board.DivideResult) {
		fmt.Printf("%s %d\n\n", r.Move, r.Nodes)

		if bar != nil {
			_ = bar.Add(1)
		}
	})

	var total uint64
	for _, r := range results {
		total += r.Nodes
	}

	fmt.Println(total)
	return nil
}
