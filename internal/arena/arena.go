// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arena implements the append-only route store used by the Wu algorithm to record the
// provenance of every farthest-point update without paying for a heap allocation per edit-graph
// step.
//
// A naive implementation would represent each step with an individually heap-allocated node linked
// by an owning pointer to its predecessor. Because the search shares predecessors across frontier
// tips, those nodes would need reference counting to avoid a double free. Two flat, preallocated
// arrays collapse that into "the arena owns every node": a predecessor becomes a small integer
// index, sharing is just sharing an index, and the whole structure is contiguous in memory.
package arena

import (
	"math"

	"cloudeng.io/errors"
)

// Kind identifies the edit that produced an id.
type Kind uint8

const (
	// None marks the sentinel root. parent[0] == 0 and kind[0] == None terminate every chain.
	None Kind = iota
	// Removed consumes one element from the A side only.
	Removed
	// Common consumes one matching element from each side.
	Common
	// Added consumes one element from the B side only.
	Added
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Removed:
		return "removed"
	case Common:
		return "common"
	case Added:
		return "added"
	default:
		return "invalid"
	}
}

// ErrTooLarge is the precondition violation returned by [New] when the requested capacity would
// not fit in the id space the arena uses internally.
var ErrTooLarge = errorString("wudiff: inputs too large for the route arena")

type errorString string

func (e errorString) Error() string { return string(e) }

// Arena is an append-only store of (parent, kind) pairs. Id 0 is a permanent sentinel: parent[0]
// == 0 and kind[0] == None. Every other id's parent is strictly smaller than the id itself, so the
// arena is a forest rooted at 0.
type Arena struct {
	parent []int32
	kind   []Kind
	ptr    int32
}

// New preallocates an arena that can hold capacity ids (including the id-0 sentinel). capacity
// must be derived from the trimmed, post-swap M, N (see search in internal/wu for the sizing
// formula); New fails loudly instead of allocating partially if capacity doesn't fit in
// the arena's id space.
func New(capacity int) (*Arena, error) {
	if capacity < 1 {
		capacity = 1
	}
	if capacity-1 > math.MaxInt32 {
		return nil, errors.Annotate("arena.New", ErrTooLarge)
	}
	a := &Arena{
		parent: make([]int32, capacity),
		kind:   make([]Kind, capacity),
	}
	a.kind[0] = None
	a.parent[0] = 0
	a.ptr = 1
	return a, nil
}

// Root returns the id of the sentinel root, always 0.
func (a *Arena) Root() int { return 0 }

// Alloc appends a new id that extends parent via kind and returns it. Amortized O(1); Alloc never
// grows the backing arrays, it only advances the cursor reserved by [New].
func (a *Arena) Alloc(parent int, kind Kind) int {
	id := a.ptr
	a.parent[id] = int32(parent)
	a.kind[id] = kind
	a.ptr++
	return int(id)
}

// Parent returns the predecessor id of id. Parent(0) == 0.
func (a *Arena) Parent(id int) int { return int(a.parent[id]) }

// Kind returns the edit kind that produced id. Kind(0) == None.
func (a *Arena) Kind(id int) Kind { return a.kind[id] }

// Len returns the number of ids allocated so far, including the id-0 sentinel.
func (a *Arena) Len() int { return int(a.ptr) }
