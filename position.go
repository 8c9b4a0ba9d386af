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

import "fmt"

// Position is a 0-based line/column location within an Input, together
// with the rune offset it corresponds to.
type Position struct {
	// Filename is the optional name of the file the position belongs to.
	Filename string

	// Offset is the rune offset from the start of the input.
	Offset int

	// Line is the 0-based line number.
	Line int

	// Column is the 0-based column number within Line.
	Column int
}

// String formats the position as "file:line:column", omitting the
// filename when unset.
func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
	}

	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line+1, p.Column+1)
}

// Location is an immutable input location: the rune index into the
// Input's buffer, its Position, and the character found there. Locations
// are produced by advancing from prior locations and are cheap value
// objects, so a Context can save and restore one without touching the
// Input it came from.
type Location struct {
	Index int
	Pos   Position
	Char  rune
}

// AtEnd reports whether the location denotes the virtual end-of-input
// sentinel position.
func (l Location) AtEnd() bool {
	return l.Char == EndOfInputRune
}
