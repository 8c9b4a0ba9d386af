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

func TestCharSetContains(t *testing.T) {
	t.Parallel()

	cs := NewRangeSet('a', 'z')

	if !cs.Contains('m') {
		t.Errorf("expected 'm' to be a member of [a,z)")
	}

	if cs.Contains('A') {
		t.Errorf("expected 'A' not to be a member of [a,z)")
	}

	if cs.Contains(EndOfInputRune) {
		t.Errorf("ordinary range set should not contain end-of-input")
	}
}

func TestCharSetUnion(t *testing.T) {
	t.Parallel()

	cs := NewRangeSet('a', 'd').Union(NewRangeSet('x', 'z'))

	for _, r := range []rune{'a', 'c', 'x', 'y'} {
		if !cs.Contains(r) {
			t.Errorf("union should contain %q", r)
		}
	}

	if cs.Contains('m') {
		t.Errorf("union should not contain %q", 'm')
	}
}

func TestCharSetIntersect(t *testing.T) {
	t.Parallel()

	cs := NewRangeSet('a', 'm').Intersect(NewRangeSet('g', 'z'))

	if !cs.Contains('h') {
		t.Errorf("intersection should contain 'h'")
	}

	if cs.Contains('b') || cs.Contains('z') {
		t.Errorf("intersection should not extend past either input range")
	}
}

func TestCharSetComplement(t *testing.T) {
	t.Parallel()

	cs := NewRuneSet('x').Complement()

	if cs.Contains('x') {
		t.Errorf("complement should not contain the original member")
	}

	if !cs.Contains('y') {
		t.Errorf("complement should contain everything else")
	}

	if cs.Contains(EndOfInputRune) {
		t.Errorf("complement should not reach into sentinel membership")
	}
}

func TestCharSetSubset(t *testing.T) {
	t.Parallel()

	small := NewRangeSet('b', 'd')
	big := NewRangeSet('a', 'z')

	if !small.Subset(big) {
		t.Errorf("[b,d) should be a subset of [a,z)")
	}

	if big.Subset(small) {
		t.Errorf("[a,z) should not be a subset of [b,d)")
	}
}

func TestCharSetSentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cs   *CharSet
		char rune
	}{
		{name: "end of input", cs: EndOfInputSet(), char: EndOfInputRune},
		{name: "any char", cs: AnyCharSet(), char: AnyCharRune},
		{name: "empty match", cs: EmptyMatchSet(), char: EmptyMatchRune},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !tt.cs.Contains(tt.char) {
				t.Errorf("%s set should contain its own sentinel", tt.name)
			}

			if tt.cs.Contains('a') {
				t.Errorf("%s set should not contain ordinary runes", tt.name)
			}
		})
	}
}

func TestCharSetOnlyEmptyMatch(t *testing.T) {
	t.Parallel()

	if !EmptyMatchSet().onlyEmptyMatch() {
		t.Errorf("EmptyMatchSet should report onlyEmptyMatch")
	}

	if AnyCharSet().onlyEmptyMatch() {
		t.Errorf("AnyCharSet should not report onlyEmptyMatch")
	}

	mixed := EmptyMatchSet().Union(NewRuneSet('a'))
	if mixed.onlyEmptyMatch() {
		t.Errorf("a set with a real character should not report onlyEmptyMatch")
	}
}
