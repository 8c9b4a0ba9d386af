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
	"fmt"
	"unicode"
)

// charMatcher is the single-character terminal (spec.md §4.2). Two
// sentinel values bypass the equality test: AnyCharRune matches any real
// character, EmptyMatchRune always succeeds without consuming. The
// EndOfInputRune sentinel is matched literally, only at the virtual end
// position.
type charMatcher struct {
	c rune
}

// Char returns a matcher for the single literal rune c.
func Char(c rune) Matcher {
	return wrapLabel(fmt.Sprintf("%q", string(c)), &charMatcher{c: c})
}

// Any returns a matcher that consumes any one real character, failing at
// end-of-input.
func Any() Matcher {
	return wrapLabel(".", &charMatcher{c: AnyCharRune})
}

// Empty returns a matcher that always succeeds without consuming input.
func Empty() Matcher {
	return wrapLabel("ε", &charMatcher{c: EmptyMatchRune})
}

// EndOfInput returns a matcher that succeeds only at the virtual
// end-of-input position, never advancing.
func EndOfInput() Matcher {
	return wrapLabel("$", &charMatcher{c: EndOfInputRune})
}

func (m *charMatcher) Label() string {
	return "char"
}

func (m *charMatcher) StarterSet() *CharSet {
	switch m.c {
	case AnyCharRune:
		return AnyCharSet()
	case EmptyMatchRune:
		return EmptyMatchSet()
	case EndOfInputRune:
		return EndOfInputSet()
	default:
		return NewRuneSet(m.c)
	}
}

func (m *charMatcher) Match(ctx *Context) bool {
	cur := ctx.current.Char

	switch m.c {
	case EmptyMatchRune:
		return true
	case AnyCharRune:
		if cur == EndOfInputRune {
			return false
		}

		ctx.advance(1)

		return true
	case EndOfInputRune:
		return cur == EndOfInputRune
	default:
		if cur != m.c {
			return false
		}

		ctx.advance(1)

		return true
	}
}

// classMatcher is the character-class terminal (spec.md §4.2): succeeds
// iff the current character is a member of set, advancing by one rune.
type classMatcher struct {
	set *CharSet
}

// Class returns a matcher for the character class set.
func Class(set *CharSet) Matcher {
	return wrapLabel("[class]", &classMatcher{set: set})
}

// Range returns a matcher for the half-open rune range [lo, hi), a
// convenience over Class (spec.md §6.1).
func Range(lo, hi rune) Matcher {
	return wrapLabel(fmt.Sprintf("[%c-%c]", lo, hi-1), &classMatcher{set: NewRangeSet(lo, hi)})
}

func (m *classMatcher) Label() string {
	return "class"
}

func (m *classMatcher) StarterSet() *CharSet {
	return m.set
}

func (m *classMatcher) Match(ctx *Context) bool {
	if !m.set.Contains(ctx.current.Char) {
		return false
	}

	ctx.advance(1)

	return true
}

// stringMatcher is the string terminal (spec.md §4.2): succeeds iff the
// input at the current position begins with text, advancing by its
// length.
type stringMatcher struct {
	text []rune
	fold bool
}

// Text returns a matcher for the literal string s.
func Text(s string) Matcher {
	return wrapLabel(fmt.Sprintf("%q", s), &stringMatcher{text: []rune(s)})
}

// TextFold returns a case-insensitive matcher for s, comparing
// rune-by-rune with unicode.ToLower rather than byte-casing so it stays
// correct for non-ASCII text (spec.md §6.1, grounded in hucsmn-peg's
// foldcase.go).
func TextFold(s string) Matcher {
	return wrapLabel(fmt.Sprintf("%q (fold)", s), &stringMatcher{text: []rune(s), fold: true})
}

func (m *stringMatcher) Label() string {
	return "string"
}

func (m *stringMatcher) StarterSet() *CharSet {
	if len(m.text) == 0 {
		return EmptyMatchSet()
	}

	if m.fold {
		return NewRuneSet(unicode.ToLower(m.text[0]), unicode.ToUpper(m.text[0]))
	}

	return NewRuneSet(m.text[0])
}

func (m *stringMatcher) Match(ctx *Context) bool {
	loc := ctx.current

	for _, want := range m.text {
		got := loc.Char
		if m.fold {
			if unicode.ToLower(got) != unicode.ToLower(want) {
				return false
			}
		} else if got != want {
			return false
		}

		loc = ctx.driver.input.Advance(loc, 1)
	}

	ctx.current = loc

	return true
}
