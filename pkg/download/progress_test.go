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

package download

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestProgressStatusWithTotal(t *testing.T) {
	p := newProgress(io.Discard, "a.bin", 200, false)
	if _, err := p.Write(make([]byte, 100)); err != nil {
		t.Fatal(err)
	}

	status := p.status()
	if !strings.Contains(status, "50.00%") {
		t.Errorf("status should report percent, got %q", status)
	}
	if !strings.Contains(status, "[===============               ]") {
		t.Errorf("status should draw a half-full bar, got %q", status)
	}
}

func TestProgressStatusUnknownTotal(t *testing.T) {
	p := newProgress(io.Discard, "a.bin", -1, false)
	if _, err := p.Write(make([]byte, 1024)); err != nil {
		t.Fatal(err)
	}

	status := p.status()
	if strings.Contains(status, "%") {
		t.Errorf("status should not report percent for an unknown total, got %q", status)
	}
	if !strings.Contains(status, "1.0 KiB") {
		t.Errorf("status should report bytes, got %q", status)
	}
}

func TestProgressFinishWritesSummary(t *testing.T) {
	var out bytes.Buffer
	p := newProgress(&out, "a.bin", 11, false)
	if _, err := p.Write([]byte("hello world")); err != nil {
		t.Fatal(err)
	}
	p.finish()

	if !strings.Contains(out.String(), "Download complete: a.bin") {
		t.Errorf("finish should write a summary, got %q", out.String())
	}
}
