// Copyright 2023 Google LLC
// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pegmatch

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ianlewis/runeio"
)

// Input is an immutable, random-access view of the source characters being
// parsed, extended with a virtual end-of-input sentinel at index
// len(runes). It is materialized once, in full, before parsing starts;
// the engine never streams input mid-parse.
type Input struct {
	filename string
	runes    []rune

	// lineStarts[i] is the rune index at which line i begins. lineStarts[0]
	// is always 0.
	lineStarts []int
}

// NewInput materializes an Input from a string.
func NewInput(text string) *Input {
	in, err := NewInputFromReader(strings.NewReader(text))
	if err != nil {
		// strings.Reader never fails to read.
		panic(err)
	}

	return in
}

// NewInputFromReader drains r to completion through a buffered
// [runeio.RuneReader] and materializes the result into an Input. The
// reader is never consulted again once this returns.
func NewInputFromReader(r io.Reader) (*Input, error) {
	var fileName string
	if f, ok := r.(*os.File); ok {
		fileName = f.Name()
	}

	br, isBuffered := r.(*bufio.Reader)
	if !isBuffered {
		br = bufio.NewReader(r)
	}

	rr := runeio.NewReader(br)

	in := &Input{
		filename:   fileName,
		lineStarts: []int{0},
	}

	for {
		rn, _, err := rr.ReadRune()
		if err != nil {
			if err == io.EOF { //nolint:errorlint // runeio returns io.EOF directly
				break
			}

			return nil, err
		}

		if rn == '\n' {
			in.lineStarts = append(in.lineStarts, len(in.runes)+1)
		}

		in.runes = append(in.runes, rn)
	}

	return in, nil
}

// Len returns the number of runes in the input, not counting the virtual
// end-of-input sentinel.
func (in *Input) Len() int {
	return len(in.runes)
}

// CharAt returns the character at the given rune index, or the
// end-of-input sentinel at index == Len(). index must be in
// [0, Len()].
func (in *Input) CharAt(index int) rune {
	if index >= len(in.runes) {
		return EndOfInputRune
	}

	return in.runes[index]
}

// Slice extracts the substring over the half-open range [from, to).
func (in *Input) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}

	if to > len(in.runes) {
		to = len(in.runes)
	}

	if from >= to {
		return ""
	}

	return string(in.runes[from:to])
}

// StartLocation returns the Location at rune index 0.
func (in *Input) StartLocation() Location {
	return in.locationAt(0)
}

// locationAt builds the Location value for a given rune index.
func (in *Input) locationAt(index int) Location {
	line, lineStart := in.lineFor(index)

	return Location{
		Index: index,
		Pos: Position{
			Filename: in.filename,
			Offset:   index,
			Line:     line,
			Column:   index - lineStart,
		},
		Char: in.CharAt(index),
	}
}

// lineFor binary searches the line-start table for the 0-based line
// containing index, mirroring the search used by PEG engines that
// translate offsets to line/column lazily (see hucsmn-peg's
// positionCalculator), except the table here is built once up front since
// the whole input is already materialized.
func (in *Input) lineFor(index int) (line, lineStart int) {
	// sort.Search finds the first lineStarts[i] > index; the line
	// containing index is the one before that.
	i := sort.Search(len(in.lineStarts), func(i int) bool {
		return in.lineStarts[i] > index
	})

	line = i - 1
	if line < 0 {
		line = 0
	}

	return line, in.lineStarts[line]
}

// Advance returns the Location obtained by moving n runes forward from
// loc. Advancing past the end-of-input sentinel stays pinned at it.
func (in *Input) Advance(loc Location, n int) Location {
	next := loc.Index + n
	if next > len(in.runes) {
		next = len(in.runes)
	}

	return in.locationAt(next)
}
