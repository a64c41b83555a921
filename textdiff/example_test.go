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

package textdiff_test

import (
	"fmt"

	"znkr.io/wudiff/textdiff"
)

func ExampleUnified() {
	x := "a\nb\nc\nd\ne\n"
	y := "a\nb\nX\nd\ne\n"
	fmt.Print(textdiff.Unified(x, y))
	// Output:
	// @@ -1,5 +1,5 @@
	//  a
	//  b
	// -c
	// +X
	//  d
	//  e
}

func ExampleUnified_noTrailingNewline() {
	x := "a\nb\nc"
	y := "a\nb\nX"
	fmt.Print(textdiff.Unified(x, y))
	// Output:
	// @@ -1,3 +1,3 @@
	//  a
	//  b
	// -c
	// \ No newline at end of file
	// +X
	// \ No newline at end of file
}
