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

// Proxy is the rule matcher (spec.md §4.3): a lazily resolved reference to
// another matcher, letting a grammar graph contain forward references and
// cycles without requiring the target to exist yet at construction time.
// Unlike the other combinators, Proxy delegates to its target using the
// SAME Context it was invoked with rather than a fresh child — the target
// is matched as if Proxy were not there at all, so the target's own
// node-creation policy and accumulator behavior applies unchanged. Only
// the produced node's label is special-cased: if the proxy itself carries
// a name, that name overrides whatever label the target would have used.
type Proxy struct {
	name   string
	target Matcher
}

// Rule declares a named, as-yet-undefined rule. Define must be called
// before the grammar is used to match anything; invoking Match on an
// undefined Proxy panics with ErrUnresolvedProxy.
func Rule(name string) *Proxy {
	return &Proxy{name: name}
}

// Define sets the rule's target matcher. It is safe to call exactly once
// per Proxy; calling it again replaces the target (useful for grammars
// assembled in multiple passes), but must happen before parsing starts —
// Proxy holds no lock, matching the teacher's single-writer grammar
// construction phase followed by a read-only matching phase.
func (p *Proxy) Define(target Matcher) {
	p.target = target
}

// Label returns the rule's own name, or the target's label if the rule
// was declared anonymously (name == "").
func (p *Proxy) Label() string {
	if p.name != "" {
		return p.name
	}

	if p.target != nil {
		return p.target.Label()
	}

	return "rule"
}

// StarterSet returns the target's starter set, or the empty set before
// the rule is resolved (a grammar that inspects starter sets before
// calling Define on every rule will get conservative — i.e. wrong — static
// analysis; callers should resolve all rules first).
func (p *Proxy) StarterSet() *CharSet {
	if p.target == nil {
		return EmptyCharSet()
	}

	return p.target.StarterSet()
}

func (p *Proxy) Match(ctx *Context) bool {
	if p.target == nil {
		panic(fmt.Errorf("%w: rule %q", ErrUnresolvedProxy, p.name))
	}

	ok := p.target.Match(ctx)
	if ok && p.name != "" && ctx.resultNode != nil {
		// The node is shared by pointer with ctx.parent.children, so
		// relabeling here is visible through both references.
		ctx.resultNode.Label = p.name
	}

	return ok
}

// Grammar is a small arena of named rules (spec.md §9's "model rules as
// indexed nodes in an arena" design note, implemented by name rather than
// by integer index since Go maps make that just as cheap and far more
// readable in practice). It exists purely as a convenience for assembling
// mutually recursive grammars: Grammar.Rule returns the same *Proxy for a
// given name across calls, so rules can reference each other before any
// of them has been Defined.
type Grammar struct {
	rules map[string]*Proxy
}

// NewGrammar returns an empty rule arena.
func NewGrammar() *Grammar {
	return &Grammar{rules: make(map[string]*Proxy)}
}

// Rule returns the named rule's proxy, creating it on first reference.
func (g *Grammar) Rule(name string) *Proxy {
	if p, ok := g.rules[name]; ok {
		return p
	}

	p := Rule(name)
	g.rules[name] = p

	return p
}

// Unresolved returns the names of every declared rule that has not yet
// been given a target via Define, in map-iteration (unspecified) order —
// intended for a one-time sanity check after grammar construction, not for
// diagnostics during matching.
func (g *Grammar) Unresolved() []string {
	var names []string

	for name, p := range g.rules {
		if p.target == nil {
			names = append(names, name)
		}
	}

	return names
}
