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

import "testing"

func TestInputCharAt(t *testing.T) {
	t.Parallel()

	in := NewInput("ab")

	if got := in.CharAt(0); got != 'a' {
		t.Errorf("CharAt(0) = %q, want %q", got, 'a')
	}

	if got := in.CharAt(1); got != 'b' {
		t.Errorf("CharAt(1) = %q, want %q", got, 'b')
	}

	if got := in.CharAt(2); got != EndOfInputRune {
		t.Errorf("CharAt(Len()) = %v, want EndOfInputRune", got)
	}
}

func TestInputSlice(t *testing.T) {
	t.Parallel()

	in := NewInput("hello world")

	if got := in.Slice(0, 5); got != "hello" {
		t.Errorf("Slice(0,5) = %q, want %q", got, "hello")
	}

	if got := in.Slice(6, 11); got != "world" {
		t.Errorf("Slice(6,11) = %q, want %q", got, "world")
	}

	if got := in.Slice(5, 5); got != "" {
		t.Errorf("Slice(5,5) = %q, want empty", got)
	}
}

func TestInputLineColumn(t *testing.T) {
	t.Parallel()

	in := NewInput("ab\ncd\nef")

	tests := []struct {
		index     int
		line, col int
	}{
		{index: 0, line: 0, col: 0},
		{index: 2, line: 0, col: 2}, // the '\n' itself
		{index: 3, line: 1, col: 0}, // 'c'
		{index: 7, line: 2, col: 1}, // 'f'
	}

	for _, tt := range tests {
		loc := in.locationAt(tt.index)
		if loc.Pos.Line != tt.line || loc.Pos.Column != tt.col {
			t.Errorf("locationAt(%d) = line %d col %d, want line %d col %d",
				tt.index, loc.Pos.Line, loc.Pos.Column, tt.line, tt.col)
		}
	}
}

func TestInputAdvanceClampsAtEnd(t *testing.T) {
	t.Parallel()

	in := NewInput("ab")
	start := in.StartLocation()

	loc := in.Advance(start, 100)
	if loc.Index != 2 || !loc.AtEnd() {
		t.Errorf("Advance past end = %+v, want clamped to end-of-input", loc)
	}
}
