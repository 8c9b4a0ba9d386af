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

// Matcher is a node in the grammar graph. It is a closed sum of terminal
// and composite combinator variants dispatched through one contract: see
// Match's doc comment for the keystone try-and-restore invariant every
// implementation must preserve.
type Matcher interface {
	// Match attempts to match starting at ctx.CurrentLocation(). On
	// success it returns true, advances ctx's current location by the
	// characters consumed, and (unless suppressed) appends exactly one
	// parse-tree node to ctx's parent accumulator. On failure it returns
	// false and leaves ctx's current location and the parent accumulator
	// exactly as they were on entry.
	Match(ctx *Context) bool

	// Label is this matcher's human-readable name, used as the produced
	// node's label.
	Label() string

	// StarterSet is the set of characters on which this matcher can
	// possibly succeed, used for static analysis and diagnostics.
	StarterSet() *CharSet
}

// actionsInPredicates is a tri-state override of whether Action matchers
// nested under a decorated matcher are bypassed while running inside a
// predicate. Unset means "inherit the nearest enclosing context's
// setting", so that the Open Question in spec.md §9 (innermost flag
// wins) has a concrete representation: only an explicit Skip/Run
// decorator changes the setting for its subtree, and the nearest one to
// the Action matcher wins.
type actionsInPredicates int8

const (
	inheritActionsInPredicates actionsInPredicates = iota
	skipActionsInPredicatesOn
	skipActionsInPredicatesOff
)

// flags are the policy attributes of a matcher (spec.md §3). They live on
// the matcher because they are a compile-time property of the grammar;
// the Context only ever reads them (spec.md §9).
type flags struct {
	suppressNode     bool
	suppressSubnodes bool
	skipNode         bool
	actionsInPreds   actionsInPredicates
}

// nonEmitting is implemented by matcher kinds that the node-creation
// policy table (spec.md §4.4) never applies to: predicates and actions
// never contribute a parse-tree node, regardless of any suppress/skip
// decorator.
type nonEmitting interface {
	neverEmitsNode()
}

func isNonEmitting(m Matcher) bool {
	for {
		d, ok := m.(*decorated)
		if !ok {
			break
		}

		m = d.Matcher
	}

	_, ok := m.(nonEmitting)

	return ok
}

// decorated wraps a Matcher with an overridden label and/or policy flags,
// without changing its matching semantics. WithLabel, Suppress,
// SuppressSubnodes, Skip and SkipActionsInPredicates all produce one of
// these, mirroring the teacher's functional-decorator style
// (ParseStateFn/LexStateFn wrap a function without changing the
// interface it satisfies).
type decorated struct {
	Matcher
	label    string
	hasLabel bool
	f        flags
}

func (d *decorated) Label() string {
	if d.hasLabel {
		return d.label
	}

	return d.Matcher.Label()
}

func (d *decorated) Match(ctx *Context) bool {
	if isNonEmitting(d.Matcher) {
		return d.Matcher.Match(ctx)
	}

	return matchWithFlags(d.Matcher, ctx, d.f, d.Label())
}

// wrapLabel builds a decorated matcher around a freshly constructed raw
// matcher, used by every exported constructor (Char, Seq, Alt, ...) to
// give it a default human-readable label while still supporting further
// WithLabel/Suppress/... decoration by the caller.
func wrapLabel(label string, raw Matcher) Matcher {
	return &decorated{Matcher: raw, label: label, hasLabel: true}
}

func asDecorated(m Matcher) *decorated {
	if d, ok := m.(*decorated); ok {
		clone := *d

		return &clone
	}

	return &decorated{Matcher: m}
}

// WithLabel overrides m's label in the node it produces.
func WithLabel(label string, m Matcher) Matcher {
	d := asDecorated(m)
	d.label = label
	d.hasLabel = true

	return d
}

// Suppress marks m so that, on success, it contributes no parse-tree node
// of its own; its children (if any) are attached to the parent context
// instead.
func Suppress(m Matcher) Matcher {
	d := asDecorated(m)
	d.f.suppressNode = true

	return d
}

// SuppressSubnodes marks m so that, on success, it contributes a node but
// discards its accumulated children.
func SuppressSubnodes(m Matcher) Matcher {
	d := asDecorated(m)
	d.f.suppressSubnodes = true

	return d
}

// Skip marks m so that, on success, it contributes no node of its own and
// its children are promoted to the parent's accumulator.
func Skip(m Matcher) Matcher {
	d := asDecorated(m)
	d.f.skipNode = true

	return d
}

// SkipActionsInPredicates marks m so that Action matchers nested inside it
// are bypassed (always succeed without invoking their predicate) whenever
// m is running inside a predicate context. See the Open Question
// resolution in DESIGN.md: the innermost explicit setting wins, so a rule
// further down the tree can override this with RunActionsInPredicates.
func SkipActionsInPredicates(m Matcher) Matcher {
	d := asDecorated(m)
	d.f.actionsInPreds = skipActionsInPredicatesOn

	return d
}

// RunActionsInPredicates marks m so that, even while running inside a
// predicate, Action matchers nested directly inside it still invoke their
// predicate. Overrides any enclosing SkipActionsInPredicates for m's
// subtree, down to the next nested override.
func RunActionsInPredicates(m Matcher) Matcher {
	d := asDecorated(m)
	d.f.actionsInPreds = skipActionsInPredicatesOff

	return d
}
