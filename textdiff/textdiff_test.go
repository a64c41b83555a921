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
	"strings"
	"testing"

	"znkr.io/wudiff/textdiff"
)

func TestUnified(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{
			name: "identical",
			x:    "a\nb\nc\n",
			y:    "a\nb\nc\n",
			want: "",
		},
		{
			name: "empty-to-nonempty",
			x:    "",
			y:    "a\nb\n",
			want: "@@ -1,0 +1,2 @@\n+a\n+b\n",
		},
		{
			name: "nonempty-to-empty",
			x:    "a\nb\n",
			y:    "",
			want: "@@ -1,2 +1,0 @@\n-a\n-b\n",
		},
		{
			name: "single-line-replace",
			x:    "a\nb\nc\n",
			y:    "a\nb\nX\n",
			want: "@@ -1,3 +1,3 @@\n a\n b\n-c\n+X\n",
		},
		{
			name: "insert-in-middle",
			x:    "abc\nc\n",
			y:    "abc\nbcd\nc\n",
			want: "@@ -1,2 +1,3 @@\n abc\n+bcd\n c\n",
		},
		{
			name: "delete-in-middle",
			x:    "abc\nbcd\nc\n",
			y:    "abc\nc\n",
			want: "@@ -1,3 +1,2 @@\n abc\n-bcd\n c\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textdiff.Unified(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("Unified(%q, %q) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestUnifiedBytes_sameAsUnified(t *testing.T) {
	x := "one\ntwo\nthree\nfour\n"
	y := "one\nTWO\nthree\nfive\n"
	want := textdiff.Unified(x, y)
	got := string(textdiff.UnifiedBytes([]byte(x), []byte(y), nil))
	if got != want {
		t.Errorf("UnifiedBytes = %q, want %q", got, want)
	}
}

func TestUnified_noTrailingNewline(t *testing.T) {
	x := "a\nb"
	y := "a\nB"
	got := textdiff.Unified(x, y)
	want := "@@ -1,2 +1,2 @@\n a\n-b\n\\ No newline at end of file\n+B\n\\ No newline at end of file\n"
	if got != want {
		t.Errorf("Unified(%q, %q) = %q, want %q", x, y, got, want)
	}
}

func TestUnified_manyLines(t *testing.T) {
	var xb, yb strings.Builder
	for i := range 200 {
		xb.WriteString("line\n")
		if i%17 != 0 {
			yb.WriteString("line\n")
		} else {
			yb.WriteString("LINE\n")
		}
	}
	got := textdiff.Unified(xb.String(), yb.String())
	if got == "" {
		t.Fatalf("Unified on 200 differing lines returned no diff")
	}
	if strings.Count(got, "@@ ") == 0 {
		t.Errorf("Unified output has no hunk headers:\n%s", got)
	}
}
