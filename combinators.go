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
	"strings"
)

// matchChild runs c as one step of a composite matcher's body against
// ctx. Predicates and actions (nonEmitting matchers) contribute no node
// of their own, so they run directly against ctx itself — letting an
// Action nested straight inside a rule see and extend that rule's own
// accumulator and value slot (spec.md §4.3's Action interface). Every
// other matcher gets its own per-invocation child context, whose node (if
// any) matchWithFlags appends to ctx.children on success.
func matchChild(ctx *Context, c Matcher) bool {
	if isNonEmitting(c) {
		return c.Match(ctx)
	}

	cc := ctx.child()
	if !c.Match(cc) {
		return false
	}

	ctx.current = cc.current

	return true
}

// seqMatcher matches its children in order against a single child
// context that carries accumulated state (spec.md §4.3). On first child
// failure, the whole sequence restores as if it never started; the
// restore itself happens in matchWithFlags, which runs this Match on a
// context created for this invocation alone.
type seqMatcher struct {
	children []Matcher
}

// Seq returns a matcher that requires every one of ms to match in order.
func Seq(ms ...Matcher) Matcher {
	return wrapLabel("Seq", &seqMatcher{children: ms})
}

func (m *seqMatcher) Label() string { return "Seq" }

func (m *seqMatcher) StarterSet() *CharSet {
	set := EmptyCharSet()

	for _, c := range m.children {
		cs := c.StarterSet()
		set = set.Union(cs)

		if !cs.Contains(EmptyMatchRune) {
			break
		}
	}

	return set
}

func (m *seqMatcher) Match(ctx *Context) bool {
	for _, c := range m.children {
		if !matchChild(ctx, c) {
			return false
		}
	}

	return true
}

// choiceMatcher is ordered choice: children are tried in declaration
// order, committing to the first success with no backtracking across it
// (spec.md §4.3, testable property 4).
type choiceMatcher struct {
	children []Matcher
}

// Alt returns a matcher that tries ms in order, succeeding with the first
// one that matches.
func Alt(ms ...Matcher) Matcher {
	return wrapLabel("Alt", &choiceMatcher{children: ms})
}

func (m *choiceMatcher) Label() string { return "Alt" }

func (m *choiceMatcher) StarterSet() *CharSet {
	set := EmptyCharSet()
	for _, c := range m.children {
		set = set.Union(c.StarterSet())
	}

	return set
}

func (m *choiceMatcher) Match(ctx *Context) bool {
	for _, c := range m.children {
		if matchChild(ctx, c) {
			return true
		}
	}

	return false
}

// repeatMatcher implements both zero-or-more and one-or-more: every
// successful iteration is committed, the loop terminates on first failure
// or on a no-progress iteration (spec.md §4.3, the mandatory
// no-progress-safety rule, property 5).
type repeatMatcher struct {
	child    Matcher
	atLeast1 bool
}

// Star returns a matcher that matches child zero or more times. Panics
// with ErrZeroWidthLoop if child is statically known to only ever succeed
// without consuming input (spec.md §7's grammar-construction error; the
// runtime no-progress guard in Match still exists as a second line of
// defense for cases this static check can't see, e.g. a child guarded by
// an Action).
func Star(child Matcher) Matcher {
	if child.StarterSet().onlyEmptyMatch() {
		panic(zeroWidthLoopError(child.Label()))
	}

	return wrapLabel("Star", &repeatMatcher{child: child})
}

// Plus returns a matcher that matches child one or more times. See Star
// for the zero-width construction check.
func Plus(child Matcher) Matcher {
	if child.StarterSet().onlyEmptyMatch() {
		panic(zeroWidthLoopError(child.Label()))
	}

	return wrapLabel("Plus", &repeatMatcher{child: child, atLeast1: true})
}

func (m *repeatMatcher) Label() string {
	if m.atLeast1 {
		return "Plus"
	}

	return "Star"
}

func (m *repeatMatcher) StarterSet() *CharSet {
	set := m.child.StarterSet()
	if !m.atLeast1 {
		set = set.Union(EmptyMatchSet())
	}

	return set
}

func (m *repeatMatcher) Match(ctx *Context) bool {
	count := 0

	for {
		before := ctx.current
		if !matchChild(ctx, m.child) {
			break
		}

		count++

		if ctx.current.Index == before.Index {
			// Mandatory no-progress safety rule: a zero-width success
			// would otherwise loop forever.
			break
		}
	}

	return count >= 1 || !m.atLeast1
}

// optMatcher matches its child once; it always succeeds, whether or not
// the child did (spec.md §4.3).
type optMatcher struct {
	child Matcher
}

// Opt returns a matcher that matches child zero or one times, always
// succeeding.
func Opt(child Matcher) Matcher {
	return wrapLabel("Opt", &optMatcher{child: child})
}

func (m *optMatcher) Label() string { return "Opt" }

func (m *optMatcher) StarterSet() *CharSet {
	return m.child.StarterSet().Union(EmptyMatchSet())
}

func (m *optMatcher) Match(ctx *Context) bool {
	matchChild(ctx, m.child)

	return true
}

// firstOfStringMatcher succeeds iff the input at the current position
// begins with any of a fixed set of literal alternatives, advancing by
// the longest matching one (spec.md §6.1). It is implemented with an
// anchored prefix trie, grounded in hucsmn-peg's prefixtree.go, rather
// than an Aho-Corasick automaton (see DESIGN.md for why
// github.com/itgcl/ahocorasick's unanchored scan model doesn't fit here).
type firstOfStringMatcher struct {
	root *prefixTrieNode
	set  *CharSet
}

// FirstOfString returns a matcher for the longest literal alternative in
// alts that prefixes the input at the current position.
func FirstOfString(alts ...string) Matcher {
	root := newPrefixTrieNode()

	set := EmptyCharSet()
	for _, a := range alts {
		root.insert([]rune(a))

		if len(a) == 0 {
			set = set.Union(EmptyMatchSet())
		} else {
			set = set.Union(NewRuneSet([]rune(a)[0]))
		}
	}

	return wrapLabel(fmt.Sprintf("one of %s", strings.Join(alts, ", ")), &firstOfStringMatcher{root: root, set: set})
}

func (m *firstOfStringMatcher) Label() string { return "FirstOfString" }

func (m *firstOfStringMatcher) StarterSet() *CharSet { return m.set }

func (m *firstOfStringMatcher) Match(ctx *Context) bool {
	n := ctx.driver.input.Len()
	node := m.root
	bestLen := -1
	loc := ctx.current

	for i := 0; ; i++ {
		if node.terminal {
			bestLen = i
		}

		if loc.Index >= n {
			break
		}

		next, ok := node.children[loc.Char]
		if !ok {
			break
		}

		node = next
		loc = ctx.driver.input.Advance(loc, 1)
	}

	if bestLen < 0 {
		return false
	}

	ctx.advance(bestLen)

	return true
}
