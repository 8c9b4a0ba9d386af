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

import "github.com/emirpasic/gods/stacks/arraystack"

// ValueStack is the shared, strictly-ordered stack of user-computed
// values (spec.md §3): grammar actions push/pop semantic values as they
// run, and it is the one piece of state explicitly threaded through every
// Context rather than kept as ambient global state (spec.md §9).
type ValueStack struct {
	s *arraystack.Stack
}

// NewValueStack returns an empty value stack.
func NewValueStack() *ValueStack {
	return &ValueStack{s: arraystack.New()}
}

// Push pushes v onto the top of the stack.
func (vs *ValueStack) Push(v any) {
	vs.s.Push(v)
}

// Pop removes and returns the top value. The second return is false if
// the stack was empty.
func (vs *ValueStack) Pop() (any, bool) {
	return vs.s.Pop()
}

// Top returns the top value without removing it. The second return is
// false if the stack is empty.
func (vs *ValueStack) Top() (any, bool) {
	return vs.s.Peek()
}

// Len returns the number of values currently on the stack.
func (vs *ValueStack) Len() int {
	return vs.s.Size()
}

// Values returns the stack's contents from top to bottom.
func (vs *ValueStack) Values() []any {
	return vs.s.Values()
}
