// Copyright 2023 Google LLC
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

	"github.com/pterm/pterm"
)

// Node is an immutable record of one matched rule invocation: a label,
// the input range it covers, its ordered children, and any value a user
// action attached while the node's matcher was on the stack.
//
// Invariant: children are strictly ordered by Start, no two children
// overlap, and every child's range is contained in its parent's range
// (spec.md §3, §8 property 3).
type Node struct {
	Label string

	Start Location
	End   Location

	Children []*Node

	// Value is the payload a user action attached to this node, if any.
	Value    any
	HasValue bool
}

// Text returns the input text covered by n.
func (n *Node) Text(in *Input) string {
	return in.Slice(n.Start.Index, n.End.Index)
}

// Char returns the single rune covered by n, or EndOfInputRune if n's
// range is empty.
func (n *Node) Char(in *Input) rune {
	if n.Start.Index == n.End.Index {
		return EndOfInputRune
	}

	return in.CharAt(n.Start.Index)
}

// String renders the tree rooted at n using pterm's tree printer, the
// same rendering approach used for leveled-list trees in
// npillmayer-gorgo's REPL (terex/terexlang/trepl).
func (n *Node) String() string {
	root := n.treeNode()

	s, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return fmt.Sprintf("%s [%d,%d)", n.Label, n.Start.Index, n.End.Index)
	}

	return s
}

func (n *Node) treeNode() pterm.TreeNode {
	tn := pterm.TreeNode{
		Text: fmt.Sprintf("%s [%d,%d)", n.Label, n.Start.Index, n.End.Index),
	}

	for _, c := range n.Children {
		tn.Children = append(tn.Children, c.treeNode())
	}

	return tn
}
