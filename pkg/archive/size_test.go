// Copyright 2024 arcget authors
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

package archive

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		in       string
		expected int64
	}{
		{"1.5G", 1610612736},
		{"300M", 314572800},
		{"100K", 102400},
		{"2m", 2097152},
		{" 42 ", 42},
		{"1234", 1234},
		{"", 0},
		{"-", 0},
		{"huge", 0},
		{"G", 0},
	}
	for _, tc := range tests {
		if got := ParseSize(tc.in); got != tc.expected {
			t.Errorf("ParseSize(%q) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestFormatSize(t *testing.T) {
	if got := FormatSize(1610612736); got != "1.5 GiB" {
		t.Errorf("FormatSize(1.5G) = %q", got)
	}
	if got := FormatSize(-1); got != "0 B" {
		t.Errorf("FormatSize(-1) = %q, expected clamping to zero", got)
	}
}
