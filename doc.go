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

// Package wudiff compares two slices and returns the shortest edit script that turns the first
// into the second, using Wu's O(NP) sequence comparison algorithm (Wu, Manber, Myers, Miller,
// 1990).
//
// The main functions are [Diff] and [DiffFunc], which return every individual change, and
// [Hunks]/[HunksFunc], which group those changes into contextual blocks the way a unified diff
// does.
//
// Performance: time complexity is O((M+N)*P) and space is O(M*N) in the worst case, where M and N
// are the (trimmed) input lengths and P is the number of deletions in the shortest script; for
// similar sequences P is small and the algorithm is close to linear. There is no heuristic
// fallback for large, dissimilar inputs: the result is always a shortest edit script. Use [Budget]
// to bound the work done on adversarial inputs.
//
// Note: For a line-by-line diff of text, please see [znkr.io/wudiff/textdiff].
//
// [znkr.io/wudiff/textdiff]: https://pkg.go.dev/znkr.io/wudiff/textdiff
package wudiff
