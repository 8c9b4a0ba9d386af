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

func TestProxyDelegatesAndRelabels(t *testing.T) {
	t.Parallel()

	r := Rule("greeting")
	r.Define(Text("hi"))

	res := Parse(r, NewInput("hi there"), Config{})
	if !res.Success || res.Tree.End.Index != 2 {
		t.Fatalf("Rule(greeting) on %q = %+v, want success consuming 2", "hi there", res)
	}

	if res.Tree.Label != "greeting" {
		t.Errorf("Proxy should relabel the produced node to the rule name, got %q", res.Tree.Label)
	}
}

func TestUnresolvedProxyPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("matching an undefined rule should panic")
		}
	}()

	r := Rule("never-defined")
	Parse(r, NewInput("anything"), Config{})
}

func TestGrammarReturnsSameProxyByName(t *testing.T) {
	t.Parallel()

	g := NewGrammar()

	a := g.Rule("foo")
	b := g.Rule("foo")

	if a != b {
		t.Errorf("Grammar.Rule should return the same *Proxy for repeated names")
	}
}

func TestGrammarUnresolvedReportsUndefinedRules(t *testing.T) {
	t.Parallel()

	g := NewGrammar()
	g.Rule("defined").Define(Char('a'))
	g.Rule("undefined")

	unresolved := g.Unresolved()
	if len(unresolved) != 1 || unresolved[0] != "undefined" {
		t.Errorf("Unresolved() = %v, want [\"undefined\"]", unresolved)
	}
}

// TestSelfRecursiveGrammarBalancedParens exercises genuine single-rule
// self-recursion (distinct from the mutually-recursive content/if rules in
// template_example_test.go): balanced := '(' balanced? ')'.
func TestSelfRecursiveGrammarBalancedParens(t *testing.T) {
	t.Parallel()

	g := NewGrammar()
	balanced := g.Rule("balanced")
	balanced.Define(Seq(Char('('), Opt(balanced), Char(')')))

	res := Parse(balanced, NewInput("((()))"), Config{})
	if !res.Success || res.Tree.End.Index != 6 {
		t.Fatalf("balanced parens on %q = %+v, want success consuming all 6", "((()))", res)
	}

	// A missing closing paren fails the whole rule: PEG sequences commit
	// fully or restore fully, with no partial credit for the nested match
	// that did succeed before the final ')' went missing.
	res = Parse(balanced, NewInput("(()"), Config{})
	if res.Success {
		t.Fatalf("balanced parens on %q should fail outright, got %+v", "(()", res)
	}
}
