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

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(file, []byte("test"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists should return true for a regular file")
	}
	if FileExists(tmpDir) {
		t.Error("FileExists should return false for a directory")
	}
	if FileExists(filepath.Join(tmpDir, "missing.txt")) {
		t.Error("FileExists should return false for a missing file")
	}
}

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(file, []byte("test"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !DirExists(tmpDir) {
		t.Error("DirExists should return true for a directory")
	}
	if DirExists(file) {
		t.Error("DirExists should return false for a regular file")
	}
}

func TestEnsureDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(target); err != nil {
		t.Fatal(err)
	}
	if !DirExists(target) {
		t.Error("EnsureDir should create nested directories")
	}
	// idempotent
	if err := EnsureDir(target); err != nil {
		t.Error("EnsureDir should succeed for an existing directory")
	}
}

func TestResolveBase(t *testing.T) {
	abs, err := ResolveBase("")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(abs) {
		t.Error("ResolveBase should return an absolute path for the empty base")
	}

	abs, err = ResolveBase("some/relative/dir")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(abs) {
		t.Error("ResolveBase should return an absolute path for relative input")
	}
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"plain.txt", "plain.txt"},
		{"../escape.txt", ".._escape.txt"},
		{`dir\file.bin`, "dir_file.bin"},
		{"  padded.zip ", "padded.zip"},
	}
	for _, tc := range tests {
		if got := SafeFilename(tc.in); got != tc.expected {
			t.Errorf("SafeFilename(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
