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

// Context is the short-lived, per-invocation frame created for exactly
// one call to a matcher's Match. It threads the input position and
// accumulates the children that will become this invocation's own
// parse-tree node, and carries a back reference to the parent context
// that the node (if any) is appended to.
type Context struct {
	driver *Driver

	// parent is the context whose accumulator receives this invocation's
	// produced node. nil only for the root context.
	parent *Context

	// start is this invocation's entry location, snapshotted once.
	start Location

	// current is mutated as input is consumed by this invocation and its
	// descendants.
	current Location

	// children accumulates the nodes produced by this invocation's direct
	// sub-matchers, in match order.
	children []*Node

	// values is the value stack, shared by the whole parse.
	values *ValueStack

	// predicateDepth is nonzero while running inside an And/Not lookahead.
	predicateDepth int

	// actionsSkippedInPreds is the effective (innermost-wins) setting of
	// whether Action matchers bypass their predicate while inside a
	// lookahead.
	actionsSkippedInPreds bool

	// resultNode is set once this invocation's matcher succeeds and emits
	// its node (the "tree-node-in-progress" becoming final), regardless of
	// whether that node was also appended to parent.children.
	resultNode *Node

	// value and hasValue are the node-in-progress's value slot (spec.md
	// §3's "value" attribute), set by a nested Action matcher via
	// SetValue. Actions and predicates never get their own child context
	// (see matchChild in combinators.go), so an Action nested directly in
	// a rule's body sets the value on that rule's own Context.
	value    any
	hasValue bool
}

func newRootContext(d *Driver, start Location, values *ValueStack) *Context {
	return &Context{
		driver:  d,
		start:   start,
		current: start,
		values:  values,
	}
}

// child creates the per-invocation context for invoking m starting at
// ctx's current location, with ctx as its parent.
func (ctx *Context) child() *Context {
	return &Context{
		driver:                ctx.driver,
		parent:                ctx,
		start:                 ctx.current,
		current:               ctx.current,
		values:                ctx.values,
		predicateDepth:        ctx.predicateDepth,
		actionsSkippedInPreds: ctx.actionsSkippedInPreds,
	}
}

// predicateChild is like child but marks the new context (and everything
// nested under it) as running inside a lookahead.
func (ctx *Context) predicateChild() *Context {
	c := ctx.child()
	c.predicateDepth++

	return c
}

// CurrentLocation returns the location this invocation is currently
// positioned at.
func (ctx *Context) CurrentLocation() Location {
	return ctx.current
}

// StartLocation returns the location this invocation began at.
func (ctx *Context) StartLocation() Location {
	return ctx.start
}

// ParentContext returns the enclosing invocation's context, or nil at the
// root.
func (ctx *Context) ParentContext() *Context {
	return ctx.parent
}

// SubNodes returns a read-only view of the nodes accumulated so far by
// this invocation's sub-matchers.
func (ctx *Context) SubNodes() []*Node {
	return ctx.children
}

// InPredicate reports whether this invocation is running inside an
// And/Not lookahead.
func (ctx *Context) InPredicate() bool {
	return ctx.predicateDepth > 0
}

// Values returns the value stack shared by the whole parse.
func (ctx *Context) Values() *ValueStack {
	return ctx.values
}

// SetValue attaches v to the node this invocation will produce (spec.md
// §3, §4.3's Action matcher). Calling it more than once keeps the last
// value. It has no effect if this invocation ultimately suppresses or
// skips its own node.
func (ctx *Context) SetValue(v any) {
	ctx.value = v
	ctx.hasValue = true
}

// Input returns the input buffer being parsed.
func (ctx *Context) Input() *Input {
	return ctx.driver.input
}

// NodeText returns the text a node in this invocation's tree covers.
func (ctx *Context) NodeText(n *Node) string {
	return n.Text(ctx.Input())
}

// NodeChar returns the single rune a node covers.
func (ctx *Context) NodeChar(n *Node) rune {
	return n.Char(ctx.Input())
}

// NodeByPath resolves path against the nodes accumulated so far, per the
// path addressing scheme in spec.md §4.5.
func (ctx *Context) NodeByPath(path string) *Node {
	return findByPath(ctx.children, path)
}

// NodeByLabel returns every accumulated descendant whose label starts
// with prefix, in pre-order.
func (ctx *Context) NodeByLabel(prefix string) []*Node {
	return collectByLabel(ctx.children, prefix)
}

// ValueAs pops the top value off the shared value stack and asserts it
// has type T, for an action that expects a specific argument type left
// behind by an earlier action's Push. Panics with a fatal error wrapping
// ErrActionFailed — spec.md §7's "action argument has the wrong type for
// its declared expected parameter type" — if the stack is empty or the
// popped value isn't a T; runAction (predicates.go) re-panics that error
// unchanged. The error is tagged with ctx's current input position, not
// with a rule path.
func ValueAs[T any](ctx *Context) T {
	v, ok := ctx.values.Pop()
	if !ok {
		panic(actionError(ctx, "value stack is empty"))
	}

	t, ok := v.(T)
	if !ok {
		panic(actionError(ctx, fmt.Sprintf("value %v is not a %T", v, t)))
	}

	return t
}

// advance moves ctx.current forward by n runes.
func (ctx *Context) advance(n int) {
	ctx.current = ctx.driver.input.Advance(ctx.current, n)
}

// recordAttempt reports this invocation's current location to the
// driver's deepest-failure tracker. matchWithFlags calls it once, after
// the core Match returns and before any restore; only a failed attempt
// is reported, so the tracker sees both "how far the failed attempt got"
// and "what was active there".
func (ctx *Context) recordAttempt(label string, failed bool) {
	if failed {
		ctx.driver.noteFailure(ctx.current, label)
	}
}

// matchWithFlags runs an emitting matcher's core Match, then applies the
// node-creation policy table (spec.md §4.4) to either build and attach a
// node, or restore ctx to its entry state on failure.
func matchWithFlags(core Matcher, ctx *Context, f flags, label string) bool {
	applyActionsInPreds(ctx, f)

	ok := core.Match(ctx)

	ctx.recordAttempt(label, !ok)

	if !ok {
		ctx.current = ctx.start
		ctx.children = nil

		return false
	}

	node := &Node{
		Label:    label,
		Start:    ctx.start,
		End:      ctx.current,
		Value:    ctx.value,
		HasValue: ctx.hasValue,
	}

	switch {
	case f.suppressNode:
		// No node of our own; promote our accumulated children straight
		// to the parent.
		appendChildren(ctx.parent, ctx.children)
		ctx.resultNode = nil

		return true
	case f.suppressSubnodes:
		node.Children = nil
	case f.skipNode:
		appendChildren(ctx.parent, ctx.children)
		ctx.resultNode = nil

		return true
	default:
		node.Children = ctx.children
	}

	ctx.resultNode = node
	appendChildren(ctx.parent, []*Node{node})

	return true
}

func appendChildren(parent *Context, nodes []*Node) {
	if parent == nil || len(nodes) == 0 {
		return
	}

	parent.children = append(parent.children, nodes...)
}

func applyActionsInPreds(ctx *Context, f flags) {
	switch f.actionsInPreds {
	case skipActionsInPredicatesOn:
		ctx.actionsSkippedInPreds = true
	case skipActionsInPredicatesOff:
		ctx.actionsSkippedInPreds = false
	case inheritActionsInPredicates:
		// leave as inherited from the parent
	}
}
