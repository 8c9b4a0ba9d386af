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

// Sentinel errors for the three fatal failure kinds spec.md §7 names.
// Parse failure itself is never one of these — it is reported through
// Result.DeepestFail, not an error value.
var (
	// ErrActionFailed wraps a panic raised by a user Action or a value
	// pulled off the ValueStack with the wrong type.
	ErrActionFailed = errors.New("pegmatch: action error")

	// ErrUnresolvedProxy is raised when a Proxy's Match is called before
	// Define was ever called on it.
	ErrUnresolvedProxy = errors.New("pegmatch: proxy never resolved")

	// ErrZeroWidthLoop is raised at grammar-construction time when Star or
	// Plus is applied to a child matcher that can only ever match the
	// empty string, which would otherwise either loop forever or (with
	// the runtime no-progress guard) silently do nothing useful — both
	// symptoms of the same grammar bug, so it is rejected up front.
	ErrZeroWidthLoop = errors.New("pegmatch: zero-width repetition would loop")
)

// FailureInfo is the deepest-failure diagnostic (spec.md §7): the furthest
// input location any matcher attempt reached, and the deduplicated labels
// of the matchers that were active there when the overall parse failed.
type FailureInfo struct {
	Location Location
	Active   []string
}

// actionError builds the panic value for a failed Action or a ValueStack
// type mismatch, tagging it with the input position (line:column) the
// context is at. The error does not name the rule or matcher path that
// raised it.
func actionError(ctx *Context, reason string) error {
	return fmt.Errorf("%w: %s at %s", ErrActionFailed, reason, ctx.current.Pos)
}

// zeroWidthLoopError builds the panic value for a Star/Plus applied to an
// always-empty child, naming the repeated matcher's label.
func zeroWidthLoopError(label string) error {
	return fmt.Errorf("%w: %s", ErrZeroWidthLoop, label)
}
