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

package bootstrap

import (
	"testing"
)

func TestParsePythonVersion(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		wantErr  bool
	}{
		{"Python 3.11.4\n", "3.11.4", false},
		{"Python 3.8\n", "3.8.0", false},
		{"Python 2.7.18\n", "2.7.18", false},
		{"not a version", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		v, err := parsePythonVersion(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parsePythonVersion(%q) expected an error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePythonVersion(%q) returned %v", tc.in, err)
			continue
		}
		if v.String() != tc.expected {
			t.Errorf("parsePythonVersion(%q) = %s, expected %s", tc.in, v, tc.expected)
		}
	}
}

func TestFindPythonMissing(t *testing.T) {
	if _, err := FindPython("definitely-not-a-python-binary"); err == nil {
		t.Error("FindPython should fail for an unknown interpreter")
	}
}

func TestCommandExists(t *testing.T) {
	if CommandExists("definitely-not-a-real-command") {
		t.Error("CommandExists should return false for an unknown command")
	}
}
