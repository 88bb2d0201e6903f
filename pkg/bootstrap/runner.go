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
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Step is one phase of the setup sequence: a banner printed before the
// phase starts and the action that runs it.
type Step struct {
	Banner string
	Run    func(ctx context.Context) error
}

// Runner executes steps strictly in order. In the default mode a failed
// step is reported and the sequence continues to completion, always
// reaching the final banner; Strict short-circuits on the first error.
type Runner struct {
	Strict      bool
	FinalBanner string
	Out         io.Writer
}

func (r *Runner) banner(text string) {
	fmt.Fprintln(r.Out, text)
}

// Execute runs the steps in order and returns the joined errors of all
// failed steps (or the first one in Strict mode).
func (r *Runner) Execute(ctx context.Context, steps []Step) error {
	var errs []error
	for _, step := range steps {
		r.banner(step.Banner)
		if err := step.Run(ctx); err != nil {
			if r.Strict {
				return err
			}
			logrus.WithError(err).Warn("step failed, continuing")
			errs = append(errs, err)
		}
	}
	if r.FinalBanner != "" {
		r.banner(r.FinalBanner)
	}
	return errors.Join(errs...)
}
