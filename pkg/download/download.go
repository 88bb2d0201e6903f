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

// Package download streams files from a work list to a local directory,
// with optional throttling and bounded concurrency.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/arcget/arcget/pkg/archive"
	"github.com/arcget/arcget/pkg/util"
)

const chunkSize = 100 * 1024

type Options struct {
	DestDir      string
	SkipExisting bool
	// MaxRate limits the aggregate download speed in bytes per second.
	// Zero disables throttling.
	MaxRate     int64
	Concurrency int
	Client      *http.Client
	Out         io.Writer
}

// FileError records a single file that could not be downloaded.
type FileError struct {
	File archive.File
	Err  error
}

// Summary reports the outcome of a run. A failed file does not abort the
// run; it is recorded here and the remaining files are still attempted.
type Summary struct {
	Completed int
	Skipped   int
	Failed    []FileError
}

type Downloader struct {
	opts    Options
	limiter *rate.Limiter

	mu      sync.Mutex
	summary Summary
}

func New(opts Options) *Downloader {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Client == nil {
		// no client timeout: large files stream for a long time, and
		// cancellation comes from the request context
		opts.Client = &http.Client{}
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	d := &Downloader{opts: opts}
	if opts.MaxRate > 0 {
		burst := chunkSize
		if opts.MaxRate > int64(burst) {
			burst = int(opts.MaxRate)
		}
		d.limiter = rate.NewLimiter(rate.Limit(opts.MaxRate), burst)
	}
	return d
}

// Run downloads every file in order. With Concurrency 1 (the default)
// files are fetched strictly sequentially; higher values fetch up to that
// many files at once. Only context cancellation aborts the run early.
func (d *Downloader) Run(ctx context.Context, files []archive.File) (*Summary, error) {
	if err := util.EnsureDir(d.opts.DestDir); err != nil {
		return nil, err
	}
	if free, err := FreeSpace(d.opts.DestDir); err == nil {
		fmt.Fprintf(d.opts.Out, "Available disk space: %s\n", humanize.IBytes(uint64(free)))
	} else {
		logrus.WithError(err).Debug("could not determine free disk space")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.Concurrency)
	for _, file := range files {
		g.Go(func() error {
			if err := d.fetch(ctx, file); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				fmt.Fprintf(d.opts.Out, "Error: failed to download %s: %v\n", file.Name, err)
				d.record(func(s *Summary) { s.Failed = append(s.Failed, FileError{File: file, Err: err}) })
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return d.snapshot(), err
	}
	return d.snapshot(), nil
}

func (d *Downloader) fetch(ctx context.Context, file archive.File) error {
	path := filepath.Join(d.opts.DestDir, util.SafeFilename(file.Name))
	if d.opts.SkipExisting && util.FileExists(path) {
		fmt.Fprintf(d.opts.Out, "File already exists: %s. Skipping...\n", path)
		d.record(func(s *Summary) { s.Skipped++ })
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.URL, nil)
	if err != nil {
		return err
	}
	resp, err := d.opts.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	// redraw a progress bar in place only when it cannot interleave with
	// another file's output
	redraw := util.IsInteractive() && d.opts.Concurrency == 1
	prog := newProgress(d.opts.Out, file.Name, resp.ContentLength, redraw)

	if err := d.copy(ctx, io.MultiWriter(out, prog), resp.Body); err != nil {
		return err
	}
	prog.finish()
	d.record(func(s *Summary) { s.Completed++ })
	return nil
}

func (d *Downloader) copy(ctx context.Context, dst io.Writer, src io.Reader) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if d.limiter != nil {
				if werr := d.limiter.WaitN(ctx, n); werr != nil {
					return werr
				}
			}
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
	}
}

func (d *Downloader) record(update func(*Summary)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	update(&d.summary)
}

func (d *Downloader) snapshot() *Summary {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.summary
	s.Failed = append([]FileError(nil), d.summary.Failed...)
	return &s
}
