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

package wudiff

import (
	"cloudeng.io/errors"

	"znkr.io/wudiff/internal/arena"
	"znkr.io/wudiff/internal/wu"
)

// Op describes the kind of change a [Result] represents.
type Op uint8

const (
	// Common means the element is present, unchanged, on both sides.
	Common Op = iota
	// Removed means the element is present only in old.
	Removed
	// Added means the element is present only in new.
	Added
)

func (op Op) String() string {
	switch op {
	case Common:
		return "common"
	case Removed:
		return "removed"
	case Added:
		return "added"
	default:
		return "invalid"
	}
}

// Result is a single element of an edit script: one kept, removed, or added value, together with
// its position(s) in the original slices.
//
// OldIndex is the position in old for Common and Removed results, -1 for Added. NewIndex is the
// position in new for Common and Added results, -1 for Removed.
type Result[T any] struct {
	Op       Op
	OldIndex int
	NewIndex int
	Data     T
}

// Diff compares old and new and returns the shortest script of [Result] values that turns old into
// new, using == to decide whether two elements are equal.
//
// The only supported option is [Budget]; [Context] has no effect on Diff (it only governs
// [Hunks]).
func Diff[T comparable](old, new []T, opts ...Option) ([]Result[T], error) {
	return DiffFunc(old, new, func(a, b T) bool { return a == b }, opts...)
}

// DiffFunc is like [Diff] but uses equal to decide whether two elements are equivalent, allowing
// element types without a usable == operator.
func DiffFunc[T any](old, new []T, equal func(a, b T) bool, opts ...Option) ([]Result[T], error) {
	cfg := resolve(opts)
	entries, err := wu.Diff(len(old), len(new), func(i, j int) bool {
		return equal(old[i], new[j])
	}, cfg.budget)
	if err != nil {
		return nil, errors.Annotate("wudiff.DiffFunc", err)
	}
	results := make([]Result[T], len(entries))
	for i, e := range entries {
		r := Result[T]{OldIndex: e.OldIndex, NewIndex: e.NewIndex}
		switch e.Kind {
		case arena.Common:
			r.Op = Common
			r.Data = old[e.OldIndex]
		case arena.Removed:
			r.Op = Removed
			r.Data = old[e.OldIndex]
		case arena.Added:
			r.Op = Added
			r.Data = new[e.NewIndex]
		}
		results[i] = r
	}
	return results, nil
}

// Hunk groups a contiguous run of [Result] values together with [Context] matching elements of
// surrounding context on either side, the way a unified diff groups changed lines.
type Hunk[T any] struct {
	OldPos, OldEnd int
	NewPos, NewEnd int
	Results        []Result[T]
}

// Hunks compares old and new and groups the resulting script into context-bounded [Hunk] values,
// using == to decide whether two elements are equal.
//
// The following options are supported: [Context], [Budget].
func Hunks[T comparable](old, new []T, opts ...Option) ([]Hunk[T], error) {
	return HunksFunc(old, new, func(a, b T) bool { return a == b }, opts...)
}

// HunksFunc is like [Hunks] but uses equal to decide whether two elements are equivalent.
func HunksFunc[T any](old, new []T, equal func(a, b T) bool, opts ...Option) ([]Hunk[T], error) {
	cfg := resolve(opts)
	results, err := DiffFunc(old, new, equal, opts...)
	if err != nil {
		return nil, err
	}
	return groupHunks(results, cfg.context), nil
}

// groupHunks splits results into runs separated by more than 2*context unchanged elements, keeping
// up to context elements of unchanged lead-in/lead-out around each run.
func groupHunks[T any](results []Result[T], context int) []Hunk[T] {
	n := len(results)
	keep := make([]bool, n)
	for i, r := range results {
		if r.Op == Common {
			continue
		}
		for j := max(0, i-context); j < min(n, i+context+1); j++ {
			keep[j] = true
		}
	}

	var hunks []Hunk[T]
	for i := 0; i < n; {
		if !keep[i] {
			i++
			continue
		}
		start := i
		for i < n && keep[i] {
			i++
		}
		hunks = append(hunks, newHunk(results[start:i]))
	}
	return hunks
}

func newHunk[T any](rs []Result[T]) Hunk[T] {
	h := Hunk[T]{Results: rs}
	haveOld, haveNew := false, false
	for _, r := range rs {
		if r.OldIndex >= 0 {
			if !haveOld {
				h.OldPos = r.OldIndex
				haveOld = true
			}
			h.OldEnd = r.OldIndex + 1
		}
		if r.NewIndex >= 0 {
			if !haveNew {
				h.NewPos = r.NewIndex
				haveNew = true
			}
			h.NewEnd = r.NewIndex + 1
		}
	}
	return h
}
