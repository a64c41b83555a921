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

// Package wu implements Wu's O(NP) sequence comparison algorithm (Wu, Manber, Myers, Miller,
// 1990) over index pairs. It knows nothing about the element type being compared: callers supply
// an equivalence over indices and get back an index-level edit script, so the generic, data
// carrying API lives one layer up in the root wudiff package.
package wu

import (
	stderrors "errors"

	"cloudeng.io/errors"
	"znkr.io/wudiff/internal/arena"
)

// Entry is one element of a finished edit script expressed in terms of the caller's original,
// untrimmed old/new index spaces. OldIndex is -1 for an Added entry, NewIndex is -1 for a Removed
// entry.
type Entry struct {
	Kind     arena.Kind
	OldIndex int
	NewIndex int
}

// ErrBudgetExceeded is returned by Diff when the caller-supplied cooperative budget (see [Diff])
// is exhausted before the search reaches its target antidiagonal.
var ErrBudgetExceeded = stderrors.New("wudiff: cooperative budget exceeded")

// Diff computes the shortest edit script turning the nOld-element old sequence into the
// nNew-element new sequence. equal(i, j) reports whether old[i] and new[j] are equivalent; it is
// called only with in-range indices into the original, untrimmed sequences.
//
// budget, if positive, bounds the number of snake steps the search may perform; Diff returns
// ErrBudgetExceeded once that bound is crossed. A budget of 0 means unlimited, matching the core
// contract that cancellation is not built in (see wudiff.Budget).
func Diff(nOld, nNew int, equal func(i, j int) bool, budget int) ([]Entry, error) {
	prefix := commonPrefix(nOld, nNew, equal)
	suffixCap := min(nOld, nNew) - prefix
	suffix := commonSuffix(nOld, nNew, prefix, suffixCap, equal)

	oldCore := nOld - prefix - suffix
	newCore := nNew - prefix - suffix

	entries := make([]Entry, 0, prefix+suffix+oldCore+newCore)
	for i := range prefix {
		entries = append(entries, Entry{Kind: arena.Common, OldIndex: i, NewIndex: i})
	}

	swapped := oldCore < newCore
	m, n := oldCore, newCore
	if swapped {
		m, n = newCore, oldCore
	}
	coreEqual := func(a, b int) bool {
		if swapped {
			return equal(prefix+b, prefix+a)
		}
		return equal(prefix+a, prefix+b)
	}

	switch {
	case m == 0:
		// both cores are empty, nothing to emit
	case n == 0:
		for a := range m {
			if swapped {
				entries = append(entries, Entry{Kind: arena.Added, OldIndex: -1, NewIndex: prefix + a})
			} else {
				entries = append(entries, Entry{Kind: arena.Removed, OldIndex: prefix + a, NewIndex: -1})
			}
		}
	default:
		steps, err := search(m, n, coreEqual, budget)
		if err != nil {
			return nil, errors.Annotate("wu.Diff", err)
		}
		// The search always runs with A as the longer side and B as the shorter side (see the
		// swap above). When swapped, A is new's core and B is old's
		// core, so an A-only step (Removed in the search's own A/B vocabulary) is actually an
		// insertion relative to old/new, and a B-only step (Added) is actually a deletion;
		// un-swapped, the search's vocabulary already matches old/new directly.
		for _, s := range steps {
			switch s.Kind {
			case arena.Removed: // consumed from A only; s.A is the valid index
				if swapped {
					entries = append(entries, Entry{Kind: arena.Added, OldIndex: -1, NewIndex: prefix + s.A})
				} else {
					entries = append(entries, Entry{Kind: arena.Removed, OldIndex: prefix + s.A, NewIndex: -1})
				}
			case arena.Added: // consumed from B only; s.B is the valid index
				if swapped {
					entries = append(entries, Entry{Kind: arena.Removed, OldIndex: prefix + s.B, NewIndex: -1})
				} else {
					entries = append(entries, Entry{Kind: arena.Added, OldIndex: -1, NewIndex: prefix + s.B})
				}
			case arena.Common:
				if swapped {
					entries = append(entries, Entry{Kind: arena.Common, OldIndex: prefix + s.B, NewIndex: prefix + s.A})
				} else {
					entries = append(entries, Entry{Kind: arena.Common, OldIndex: prefix + s.A, NewIndex: prefix + s.B})
				}
			}
		}
	}

	for i := range suffix {
		entries = append(entries, Entry{
			Kind:     arena.Common,
			OldIndex: nOld - suffix + i,
			NewIndex: nNew - suffix + i,
		})
	}
	return entries, nil
}

func commonPrefix(nOld, nNew int, equal func(i, j int) bool) int {
	n := min(nOld, nNew)
	i := 0
	for i < n && equal(i, i) {
		i++
	}
	return i
}

func commonSuffix(nOld, nNew, prefix, limit int, equal func(i, j int) bool) int {
	i := 0
	for i < limit && equal(nOld-1-i, nNew-1-i) {
		i++
	}
	return i
}

// step is one element of the index-level script produced by search, in the A/B coordinate space
// of the (possibly swapped) search, before Diff re-keys it to old/new coordinates. A is valid for
// Removed and Common, B is valid for Added and Common.
type step struct {
	Kind arena.Kind
	A, B int
}

// search runs the Wu O(NP) edit-graph search over A (length m) and B (length n), m >= n >= 1, and
// returns the resulting script in forward order. equal(a, b) reports whether A[a] == B[b].
func search(m, n int, equal func(a, b int) bool, budget int) ([]step, error) {
	capacity := m*n + (m + n + 1) + 1
	ar, err := arena.New(capacity)
	if err != nil {
		return nil, err
	}

	size := m + n + 1
	fy := make([]int32, size)
	fid := make([]int32, size)
	for i := range fy {
		fy[i] = -1
	}
	d := m - n

	var budgetErr error
	calls := 0
	snake := func(k int) {
		if budgetErr != nil {
			return
		}
		if budget > 0 {
			calls++
			if calls > budget {
				budgetErr = ErrBudgetExceeded
				return
			}
		}

		b := k + n
		var y, parent int
		var kind arena.Kind
		switch {
		case b == 0:
			// Left edge: only the down neighbor exists. Deliberately computed from fy[b+1]+1
			// rather than seeded as y=1 with no parent; this stays consistent with the general
			// down-neighbor extension rule below instead of special-casing the first snake.
			y = int(fy[b+1]) + 1
			parent = int(fid[b+1])
			kind = arena.Added
		case b == m+n:
			// Right edge: only the slide neighbor exists.
			y = int(fy[b-1])
			parent = int(fid[b-1])
			kind = arena.Removed
		default:
			slideY, slideID := int(fy[b-1]), int(fid[b-1])
			downY, downID := int(fy[b+1]), int(fid[b+1])
			switch {
			case slideY == -1 && downY == -1:
				y, parent, kind = 0, ar.Root(), arena.None
			case downY == -1 || k == m || slideY > downY+1:
				y, parent, kind = slideY, slideID, arena.Removed
			default:
				y, parent, kind = downY+1, downID, arena.Added
			}
		}

		id := ar.Root()
		if kind != arena.None {
			id = ar.Alloc(parent, kind)
		}
		for y+k < m && y < n && equal(y+k, y) {
			id = ar.Alloc(id, arena.Common)
			y++
		}
		fy[b] = int32(y)
		fid[b] = int32(id)
	}

	for p := 0; ; p++ {
		for k := -p; k <= d-1; k++ {
			snake(k)
		}
		for k := d + p; k >= d+1; k-- {
			snake(k)
		}
		snake(d)
		if budgetErr != nil {
			return nil, errors.Annotate("wu.search", budgetErr)
		}
		if int(fy[d+n]) >= n {
			break
		}
	}

	j := int(fid[d+n])
	a, b := m-1, n-1
	var steps []step
	for !(ar.Kind(j) == arena.None && j == ar.Root()) {
		switch ar.Kind(j) {
		case arena.Removed:
			steps = append([]step{{Kind: arena.Removed, A: a, B: -1}}, steps...)
			a--
		case arena.Added:
			steps = append([]step{{Kind: arena.Added, A: -1, B: b}}, steps...)
			b--
		case arena.Common:
			steps = append([]step{{Kind: arena.Common, A: a, B: b}}, steps...)
			a--
			b--
		}
		j = ar.Parent(j)
	}
	return steps, nil
}
