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

import "strings"

// findByPath resolves a single node via path addressing (spec.md §4.5):
// depth-first, left-to-right, matching each "/"-separated segment against
// a label prefix and descending into the first matching child. It is
// exactly the first element collectByPath would return, which is the
// path-addressing idempotence property spec.md §8 requires.
func findByPath(children []*Node, path string) *Node {
	matches := collectByPath(children, path)
	if len(matches) == 0 {
		return nil
	}

	return matches[0]
}

// collectByPath is findByPath's "collect" counterpart: it follows the same
// first-match-wins descent for every segment but the last, then gathers
// every sibling at the final level whose label starts with the last
// segment's prefix.
func collectByPath(children []*Node, path string) []*Node {
	if path == "" {
		return nil
	}

	return collectByPathSegments(children, strings.Split(path, "/"))
}

func collectByPathSegments(children []*Node, segs []string) []*Node {
	head := segs[0]

	if len(segs) == 1 {
		var out []*Node

		for _, c := range children {
			if strings.HasPrefix(c.Label, head) {
				out = append(out, c)
			}
		}

		return out
	}

	for _, c := range children {
		if strings.HasPrefix(c.Label, head) {
			return collectByPathSegments(c.Children, segs[1:])
		}
	}

	return nil
}

// FindByPath resolves path against root's children (spec.md §4.5),
// returning nil if no child matches the path's first segment.
func FindByPath(root *Node, path string) *Node {
	if root == nil {
		return nil
	}

	return findByPath(root.Children, path)
}

// CollectByPath is the "collect" counterpart to FindByPath: every sibling
// at the final path segment's level whose label matches is returned,
// instead of just the first.
func CollectByPath(root *Node, path string) []*Node {
	if root == nil {
		return nil
	}

	return collectByPath(root.Children, path)
}

// CollectByLabel returns every node in the subtree rooted at root (root
// included) whose label starts with prefix, in pre-order.
func CollectByLabel(root *Node, prefix string) []*Node {
	if root == nil {
		return nil
	}

	return collectByLabel([]*Node{root}, prefix)
}

// collectByLabel performs a full pre-order traversal of the subtrees
// rooted at children, returning every node (at any depth) whose label
// starts with prefix (spec.md §4.5).
func collectByLabel(children []*Node, prefix string) []*Node {
	var out []*Node

	var walk func(n *Node)
	walk = func(n *Node) {
		if strings.HasPrefix(n.Label, prefix) {
			out = append(out, n)
		}

		for _, c := range n.Children {
			walk(c)
		}
	}

	for _, c := range children {
		walk(c)
	}

	return out
}
