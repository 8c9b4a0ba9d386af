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
	"errors"
	"fmt"
)

// andMatcher is the positive lookahead: it enters a predicate child
// context, matches its child, then unconditionally restores ctx
// regardless of outcome (spec.md §4.3, testable property 6). Predicates
// never contribute parse-tree nodes, so andMatcher implements nonEmitting
// and bypasses the generic node-creation pipeline entirely.
type andMatcher struct {
	child Matcher
	negate bool
}

func (andMatcher) neverEmitsNode() {}

// And returns a positive lookahead: succeeds iff child succeeds, but
// never consumes input or contributes a node.
func And(child Matcher) Matcher {
	return wrapLabel("And", &andMatcher{child: child})
}

// Not returns a negative lookahead: succeeds iff child fails, never
// consumes input or contributes a node.
func Not(child Matcher) Matcher {
	return wrapLabel("Not", &andMatcher{child: child, negate: true})
}

// TestNot is sugar for Seq(Not(alreadyMatched), p): succeeds iff
// alreadyMatched does not match at the current position and p does —
// spelled out in full it is simply "consume p after confirming it is
// not already spoken for", named to match the "test-not" combinator
// spec.md §4.3 says is derivable from the above.
func TestNot(alreadyMatched, p Matcher) Matcher {
	return Seq(Not(alreadyMatched), p)
}

func (m *andMatcher) Label() string {
	if m.negate {
		return "Not"
	}

	return "And"
}

func (m *andMatcher) StarterSet() *CharSet {
	return m.child.StarterSet()
}

func (m *andMatcher) Match(ctx *Context) bool {
	cc := ctx.predicateChild()
	ok := matchChild(cc, m.child)

	if m.negate {
		ok = !ok
	}

	return ok
}

// actionMatcher is a leaf that evaluates a user-supplied predicate over
// the current value stack and parent-context snapshot (spec.md §4.3). It
// produces no parse-tree node. Inside a predicate context where actions
// are being skipped, it short-circuits to success without invoking fn.
type actionMatcher struct {
	fn ActionFunc
}

func (actionMatcher) neverEmitsNode() {}

// ActionFunc is a caller-supplied pure function over the running Context,
// returning whether the action succeeded.
type ActionFunc func(ctx *Context) bool

// Action returns a leaf matcher that succeeds iff fn returns true.
func Action(fn ActionFunc) Matcher {
	return wrapLabel("Action", &actionMatcher{fn: fn})
}

func (m *actionMatcher) Label() string { return "Action" }

func (m *actionMatcher) StarterSet() *CharSet { return EmptyMatchSet() }

func (m *actionMatcher) Match(ctx *Context) bool {
	if ctx.InPredicate() && ctx.actionsSkippedInPreds {
		return true
	}

	if m.fn == nil {
		return true
	}

	return runAction(ctx, m.fn)
}

// runAction invokes fn, converting any panic it raises — a user predicate
// throwing, or a ValueAs type assertion failing — into the fatal "action
// error" spec.md §7 names, tagged with ctx's current location. A panic
// that already wraps ErrActionFailed (e.g. one raised by ValueAs) is
// re-panicked as-is rather than wrapped a second time.
func runAction(ctx *Context, fn ActionFunc) (ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if err, isErr := r.(error); isErr && errors.Is(err, ErrActionFailed) {
			panic(err)
		}

		panic(actionError(ctx, fmt.Sprintf("%v", r)))
	}()

	return fn(ctx)
}
