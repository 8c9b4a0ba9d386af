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
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Reserved rune sentinels. These lie outside the valid Unicode range
// (0 .. 0x10FFFF) so they never collide with a real input character.
const (
	// EndOfInputRune denotes the virtual character found at Input.Len().
	EndOfInputRune rune = -1

	// AnyCharRune is matched by the "any character" terminal; it is never
	// itself a character of input, only a member of a starter set.
	AnyCharRune rune = -2

	// EmptyMatchRune is matched by the "always succeed, consume nothing"
	// terminal; like AnyCharRune it is a starter-set member, not input.
	EmptyMatchRune rune = -3
)

// runeRange is a half-open range [Lo, Hi) of ordinary (non-sentinel)
// runes, used as the element type of the treeset backing a CharSet.
type runeRange struct {
	Lo, Hi rune
}

func rangeComparator(a, b interface{}) int {
	ra, rb := a.(runeRange), b.(runeRange)

	return utils.Int32Comparator(int32(ra.Lo), int32(rb.Lo))
}

// CharSet is a finite or cofinite set of runes, extended with independent
// membership for the three reserved sentinels (end-of-input,
// any-character, empty-match). It is the result of starter-set analysis
// (spec.md §3) and is immutable once built: every combinator below
// returns a new CharSet rather than mutating its receiver, so starter
// sets can be freely shared between matchers.
type CharSet struct {
	ranges     *treeset.Set // sorted, non-overlapping runeRange values
	complement bool         // true: set = (all runes) minus ranges

	endOfInput bool
	anyChar    bool
	emptyMatch bool
}

// EmptyCharSet returns the set containing no characters and no sentinels.
func EmptyCharSet() *CharSet {
	return &CharSet{ranges: treeset.NewWith(rangeComparator)}
}

// EndOfInputSet returns the set containing only the end-of-input
// sentinel.
func EndOfInputSet() *CharSet {
	cs := EmptyCharSet()
	cs.endOfInput = true

	return cs
}

// AnyCharSet returns the set containing only the any-character sentinel.
func AnyCharSet() *CharSet {
	cs := EmptyCharSet()
	cs.anyChar = true

	return cs
}

// EmptyMatchSet returns the set containing only the empty-match sentinel.
func EmptyMatchSet() *CharSet {
	cs := EmptyCharSet()
	cs.emptyMatch = true

	return cs
}

// NewRuneSet returns the finite set containing exactly the given runes.
func NewRuneSet(runes ...rune) *CharSet {
	cs := EmptyCharSet()
	for _, r := range runes {
		cs.insert(runeRange{Lo: r, Hi: r + 1})
	}

	return cs
}

// NewRangeSet returns the finite set containing the half-open range
// [lo, hi).
func NewRangeSet(lo, hi rune) *CharSet {
	cs := EmptyCharSet()
	cs.insert(runeRange{Lo: lo, Hi: hi})

	return cs
}

// insert merges r into cs.ranges, coalescing with any overlapping or
// adjacent existing range so the set always stays normalized. Rebuilds by
// merging in one pass; starter sets are small in practice, so an O(n)
// rebuild per insert is the right tradeoff for simplicity.
func (cs *CharSet) insert(r runeRange) {
	all := []runeRange{r}

	it := cs.ranges.Iterator()
	for it.Next() {
		all = append(all, it.Value().(runeRange))
	}

	cs.ranges.Clear()

	normalized := normalizeRanges(all)
	for _, nr := range normalized {
		cs.ranges.Add(nr)
	}
}

func normalizeRanges(all []runeRange) []runeRange {
	if len(all) == 0 {
		return nil
	}

	sorted := append([]runeRange(nil), all...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Lo < sorted[j-1].Lo; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	out := []runeRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.Lo <= last.Hi {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}

			continue
		}

		out = append(out, r)
	}

	return out
}

func (cs *CharSet) allRanges() []runeRange {
	var out []runeRange

	it := cs.ranges.Iterator()
	for it.Next() {
		out = append(out, it.Value().(runeRange))
	}

	return out
}

// containsOrdinary reports whether r (an ordinary, non-sentinel rune) is a
// member of the finite part of the set, ignoring the complement flag.
func (cs *CharSet) containsOrdinary(r rune) bool {
	for _, rr := range cs.allRanges() {
		if r >= rr.Lo && r < rr.Hi {
			return true
		}
	}

	return false
}

// Contains reports whether c is a member of the set. c may be an ordinary
// rune or one of the three reserved sentinels.
func (cs *CharSet) Contains(c rune) bool {
	switch c {
	case EndOfInputRune:
		return cs.endOfInput
	case AnyCharRune:
		return cs.anyChar
	case EmptyMatchRune:
		return cs.emptyMatch
	default:
		return cs.containsOrdinary(c) != cs.complement
	}
}

// Union returns the set of characters in cs or other.
func (cs *CharSet) Union(other *CharSet) *CharSet {
	if cs.complement || other.complement {
		// De Morgan: complement(a) U complement(b) = complement(a ∩ b);
		// complement(a) U b = complement(a \ b). Both reduce through
		// Intersect/Complement, kept simple by handling the common case
		// (neither complemented) directly and the general case via the
		// identity cs ∪ other = ¬(¬cs ∩ ¬other).
		return cs.Complement().Intersect(other.Complement()).Complement().withSentinels(
			cs.endOfInput || other.endOfInput,
			cs.anyChar || other.anyChar,
			cs.emptyMatch || other.emptyMatch,
		)
	}

	out := EmptyCharSet()
	for _, rr := range cs.allRanges() {
		out.insert(rr)
	}

	for _, rr := range other.allRanges() {
		out.insert(rr)
	}

	return out.withSentinels(
		cs.endOfInput || other.endOfInput,
		cs.anyChar || other.anyChar,
		cs.emptyMatch || other.emptyMatch,
	)
}

// Intersect returns the set of characters in both cs and other.
func (cs *CharSet) Intersect(other *CharSet) *CharSet {
	out := EmptyCharSet()

	switch {
	case !cs.complement && !other.complement:
		for _, a := range cs.allRanges() {
			for _, b := range other.allRanges() {
				lo, hi := maxRune(a.Lo, b.Lo), minRune(a.Hi, b.Hi)
				if lo < hi {
					out.insert(runeRange{Lo: lo, Hi: hi})
				}
			}
		}
	case cs.complement && !other.complement:
		for _, b := range other.allRanges() {
			out.subtractInto(b, cs.allRanges())
		}
	case !cs.complement && other.complement:
		for _, a := range cs.allRanges() {
			out.subtractInto(a, other.allRanges())
		}
	default: // both complemented: complement(a) ∩ complement(b) = complement(a ∪ b)
		union := EmptyCharSet()
		for _, rr := range cs.allRanges() {
			union.insert(rr)
		}

		for _, rr := range other.allRanges() {
			union.insert(rr)
		}

		out = union
		out.complement = true
	}

	return out.withSentinels(
		cs.endOfInput && other.endOfInput,
		cs.anyChar && other.anyChar,
		cs.emptyMatch && other.emptyMatch,
	)
}

// subtractInto adds (window minus every range in holes) to cs.
func (cs *CharSet) subtractInto(window runeRange, holes []runeRange) {
	segments := []runeRange{window}
	for _, h := range holes {
		var next []runeRange

		for _, seg := range segments {
			lo, hi := maxRune(seg.Lo, h.Lo), minRune(seg.Hi, h.Hi)
			if lo >= hi {
				next = append(next, seg)
				continue
			}

			if seg.Lo < lo {
				next = append(next, runeRange{Lo: seg.Lo, Hi: lo})
			}

			if hi < seg.Hi {
				next = append(next, runeRange{Lo: hi, Hi: seg.Hi})
			}
		}

		segments = next
	}

	for _, seg := range segments {
		cs.insert(seg)
	}
}

// Complement returns the set of all ordinary runes not in cs, leaving
// sentinel membership untouched (sentinels are never part of "all
// runes").
func (cs *CharSet) Complement() *CharSet {
	out := EmptyCharSet()
	for _, rr := range cs.allRanges() {
		out.insert(rr)
	}

	out.complement = !cs.complement

	return out.withSentinels(cs.endOfInput, cs.anyChar, cs.emptyMatch)
}

func (cs *CharSet) withSentinels(eoi, any, empty bool) *CharSet {
	cs.endOfInput = eoi
	cs.anyChar = any
	cs.emptyMatch = empty

	return cs
}

// Subset reports whether every member of cs is also a member of other.
func (cs *CharSet) Subset(other *CharSet) bool {
	diff := cs.Intersect(other.Complement())

	return diff.isEmpty() && (!cs.endOfInput || other.endOfInput) &&
		(!cs.anyChar || other.anyChar) && (!cs.emptyMatch || other.emptyMatch)
}

func (cs *CharSet) isEmpty() bool {
	return !cs.complement && cs.ranges.Empty() && !cs.endOfInput && !cs.anyChar && !cs.emptyMatch
}

// onlyEmptyMatch reports whether cs contains nothing but the empty-match
// sentinel — the static signature of a matcher that can only ever succeed
// without consuming input, used to reject an always-looping Star/Plus at
// construction time (spec.md §7's zero-width grammar construction error).
func (cs *CharSet) onlyEmptyMatch() bool {
	return cs.emptyMatch && !cs.complement && !cs.endOfInput && !cs.anyChar && cs.ranges.Empty()
}

func maxRune(a, b rune) rune {
	if a > b {
		return a
	}

	return b
}

func minRune(a, b rune) rune {
	if a < b {
		return a
	}

	return b
}
