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

// Package textdiff provides functions to efficiently compare text line by line.
package textdiff

import (
	"fmt"
	"unsafe"

	"znkr.io/wudiff"
	"znkr.io/wudiff/internal/byteview"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format.
//
// The following options are supported: [wudiff.Context], [wudiff.Budget]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Unified(x, y string, opts ...wudiff.Option) string {
	// This hackery let's us support both string and []byte types with the same implementation
	// without copying the inputs in or the outputs out. It's save because we never modify the
	// inputs or retain the output anywhere.
	xp, yp := unsafe.StringData(x), unsafe.StringData(y)
	out := UnifiedBytes(unsafe.Slice(xp, len(x)), unsafe.Slice(yp, len(y)), opts)
	return unsafe.String(unsafe.SliceData(out), len(out))
}

// UnifiedBytes compares the lines in x and y and returns the changes necessary to convert from one
// to the other in unified format.
//
// The following options are supported: [wudiff.Context], [wudiff.Budget]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func UnifiedBytes(x, y []byte, opts []wudiff.Option) []byte {
	xlines, xMissing := byteview.SplitLines(byteview.From(x))
	ylines, yMissing := byteview.SplitLines(byteview.From(y))

	hunks, err := wudiff.HunksFunc(xlines, ylines, byteview.ByteView.Equal, opts...)
	if err != nil {
		// The failure modes are the cooperative budget from wudiff.Budget and inputs too large for
		// the route arena; UnifiedBytes has no error return, so a caller that needs to observe
		// either has to use wudiff.HunksFunc directly.
		return nil
	}
	if len(hunks) == 0 {
		return nil
	}

	var b byteview.Builder[[]byte]
	for i, h := range hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldPos+1, h.OldEnd-h.OldPos, h.NewPos+1, h.NewEnd-h.NewPos)
		for _, r := range h.Results {
			var prefix string
			var missingNewline bool
			switch r.Op {
			case wudiff.Removed:
				prefix = prefixDelete
				missingNewline = r.OldIndex == xMissing
			case wudiff.Added:
				prefix = prefixInsert
				missingNewline = r.NewIndex == yMissing
			default:
				prefix = prefixMatch
				missingNewline = r.OldIndex == xMissing
			}
			b.WriteString(prefix)
			b.WriteString(r.Data.String())
			if i == len(hunks)-1 && missingNewline {
				b.WriteString("\n\\ No newline at end of file\n")
			}
		}
	}
	return b.Build()
}
