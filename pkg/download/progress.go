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
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const barWidth = 30

// progress tracks bytes written for a single file and redraws a one-line
// bar in place. When the total is unknown only the byte count and speed
// are shown. Rendering is rate limited to avoid flooding the terminal.
type progress struct {
	out        io.Writer
	name       string
	total      int64
	downloaded int64
	started    time.Time
	lastDraw   time.Time
	redraw     bool
}

func newProgress(out io.Writer, name string, total int64, redraw bool) *progress {
	return &progress{
		out:     out,
		name:    name,
		total:   total,
		started: time.Now(),
		redraw:  redraw,
	}
}

func (p *progress) Write(b []byte) (int, error) {
	p.downloaded += int64(len(b))
	if p.redraw && time.Since(p.lastDraw) >= 100*time.Millisecond {
		p.draw()
		p.lastDraw = time.Now()
	}
	return len(b), nil
}

func (p *progress) draw() {
	fmt.Fprintf(p.out, "\rDownloading %s: %s", p.name, p.status())
}

func (p *progress) status() string {
	speed := p.speed()
	if p.total <= 0 {
		return fmt.Sprintf("%s Speed: %s/s", humanize.IBytes(uint64(p.downloaded)), humanize.IBytes(uint64(speed)))
	}
	percent := float64(p.downloaded) / float64(p.total) * 100
	filled := int(float64(p.downloaded) / float64(p.total) * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled)
	return fmt.Sprintf("[%s] %.2f%% (%s) Speed: %s/s",
		bar, percent, humanize.IBytes(uint64(p.downloaded)), humanize.IBytes(uint64(speed)))
}

// speed returns bytes per second since the download started.
func (p *progress) speed() float64 {
	elapsed := time.Since(p.started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(p.downloaded) / elapsed
}

func (p *progress) finish() {
	if p.redraw {
		p.draw()
		fmt.Fprintln(p.out)
	}
	elapsed := time.Since(p.started)
	fmt.Fprintf(p.out, "Download complete: %s (%s in %dm %ds)\n",
		p.name,
		humanize.IBytes(uint64(p.downloaded)),
		int(elapsed.Minutes()),
		int(elapsed.Seconds())%60,
	)
}
