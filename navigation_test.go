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

func buildNavTree() *Node {
	leafA := &Node{Label: "item-a"}
	leafB := &Node{Label: "item-b"}
	group := &Node{Label: "group", Children: []*Node{leafA, leafB}}
	other := &Node{Label: "other"}

	return &Node{Label: "root", Children: []*Node{group, other}}
}

func TestFindByPath(t *testing.T) {
	t.Parallel()

	root := buildNavTree()

	n := FindByPath(root, "group/item-a")
	if n == nil || n.Label != "item-a" {
		t.Fatalf("FindByPath(group/item-a) = %+v, want item-a", n)
	}

	n = FindByPath(root, "nope")
	if n != nil {
		t.Errorf("FindByPath(nope) = %+v, want nil", n)
	}
}

func TestFindByPathPrefixMatching(t *testing.T) {
	t.Parallel()

	root := buildNavTree()

	// "item" is a prefix of both item-a and item-b; FindByPath takes the
	// first match in declaration order.
	n := FindByPath(root, "group/item")
	if n == nil || n.Label != "item-a" {
		t.Fatalf("FindByPath(group/item) = %+v, want first match item-a", n)
	}
}

func TestCollectByPathIsSupersetAndFindByPathIsItsFirst(t *testing.T) {
	t.Parallel()

	root := buildNavTree()

	all := CollectByPath(root, "group/item")
	if len(all) != 2 {
		t.Fatalf("CollectByPath(group/item) = %v, want 2 matches", all)
	}

	first := FindByPath(root, "group/item")
	if first != all[0] {
		t.Errorf("FindByPath should equal CollectByPath's first element (spec property 7)")
	}
}

func TestCollectByPathEmptyWhenNoMatch(t *testing.T) {
	t.Parallel()

	root := buildNavTree()

	all := CollectByPath(root, "nope")
	if len(all) != 0 {
		t.Errorf("CollectByPath(nope) = %v, want empty", all)
	}

	if FindByPath(root, "nope") != nil {
		t.Errorf("FindByPath should be nil when CollectByPath is empty (spec property 7)")
	}
}

func TestCollectByLabelIncludesRootAndDescends(t *testing.T) {
	t.Parallel()

	root := buildNavTree()

	matches := CollectByLabel(root, "item")
	if len(matches) != 2 {
		t.Fatalf("CollectByLabel(item) = %v, want 2 matches", matches)
	}

	rootMatches := CollectByLabel(root, "root")
	if len(rootMatches) != 1 || rootMatches[0] != root {
		t.Errorf("CollectByLabel should include the root itself when it matches, got %v", rootMatches)
	}
}

func TestNavigationNilRootIsSafe(t *testing.T) {
	t.Parallel()

	if FindByPath(nil, "x") != nil {
		t.Errorf("FindByPath(nil, ...) should return nil")
	}

	if got := CollectByPath(nil, "x"); got != nil {
		t.Errorf("CollectByPath(nil, ...) should return nil, got %v", got)
	}

	if got := CollectByLabel(nil, "x"); got != nil {
		t.Errorf("CollectByLabel(nil, ...) should return nil, got %v", got)
	}
}
