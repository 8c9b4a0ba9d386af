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

import "github.com/cnf/structhash"

// Config holds the handful of knobs a parse run needs beyond the grammar
// and the input itself.
type Config struct {
	// Filename is attached to every Position produced for this parse, for
	// diagnostics; it has no effect on matching.
	Filename string
}

// Result is what a top-level Parse call returns (spec.md §6's "Result").
// A failed parse never panics: only the two grammar-construction errors
// and action errors are fatal (spec.md §7).
type Result struct {
	Success     bool
	Tree        *Node
	Values      *ValueStack
	Input       *Input
	DeepestFail *FailureInfo
}

// Driver owns the state that outlives any one matcher invocation: the
// input buffer and the running deepest-failure tracker (spec.md §7). It
// is the root.driver every Context in one parse shares.
type Driver struct {
	input  *Input
	config Config

	deepestIndex int
	deepestLoc   Location
	activeKeys   map[string]struct{}
	active       []string
}

// NewDriver returns a fresh Driver for a single parse of in.
func NewDriver(in *Input, config Config) *Driver {
	return &Driver{
		input:        in,
		config:       config,
		deepestIndex: -1,
		activeKeys:   make(map[string]struct{}),
	}
}

// noteFailure records that the matcher labeled label failed while
// positioned at loc. Only the deepest location(s) seen are retained: a
// strictly deeper failure resets the active set, an equally deep one is
// added to it (deduplicated via a structhash key, mirroring
// npillmayer-gorgo's earley.go item-dedup convention), and a shallower one
// is ignored.
func (d *Driver) noteFailure(loc Location, label string) {
	switch {
	case loc.Index > d.deepestIndex:
		d.deepestIndex = loc.Index
		d.deepestLoc = loc
		d.activeKeys = make(map[string]struct{})
		d.active = nil

		d.recordActive(label)
	case loc.Index == d.deepestIndex:
		d.recordActive(label)
	}
}

func (d *Driver) recordActive(label string) {
	key, err := structhash.Hash(struct{ Label string }{label}, 1)
	if err != nil {
		// structhash only fails on unsupported field types; a string
		// field always hashes, so this is unreachable in practice.
		key = label
	}

	if _, seen := d.activeKeys[key]; seen {
		return
	}

	d.activeKeys[key] = struct{}{}
	d.active = append(d.active, label)
}

func (d *Driver) failureInfo() *FailureInfo {
	if d.deepestIndex < 0 {
		return nil
	}

	return &FailureInfo{Location: d.deepestLoc, Active: d.active}
}

// Parse runs start against the full contents of in and returns the
// outcome. start is normally the grammar's entry rule, typically a Proxy
// built via Rule/Grammar.
func Parse(start Matcher, in *Input, config Config) *Result {
	if config.Filename != "" {
		// Copy rather than mutate: in may be shared with other parses.
		in = &Input{filename: config.Filename, runes: in.runes, lineStarts: in.lineStarts}
	}

	d := NewDriver(in, config)
	values := NewValueStack()
	root := newRootContext(d, in.StartLocation(), values)

	// start runs in its own child context, exactly like any other matcher
	// invocation, so its produced node lands in root.children rather than
	// being silently dropped (root itself has no parent to append to).
	cc := root.child()
	ok := start.Match(cc)

	res := &Result{
		Success: ok,
		Values:  values,
		Input:   in,
	}

	if ok {
		res.Tree = cc.resultNode
	} else {
		res.DeepestFail = d.failureInfo()
	}

	return res
}
