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

package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/arcget/arcget/pkg/archive"
	"github.com/arcget/arcget/pkg/config"
)

var (
	workingDir   string = "."
	tomlFilename string = config.JobTOMLFile

	listPath   string
	destDir    string
	mirrorName string
	maxRateStr string
	pythonBin  string

	jsonFlag = &cli.BoolFlag{
		Name:    "json",
		Aliases: []string{"j"},
		Usage:   "Output as JSON",
	}
	listFlag = &cli.StringFlag{
		Name:        "list",
		Aliases:     []string{"l"},
		Usage:       "`PATH` of the file list CSV",
		Destination: &listPath,
	}
	destFlag = &cli.StringFlag{
		Name:        "dest",
		Aliases:     []string{"d"},
		Usage:       "`DIR` to download files into",
		Destination: &destDir,
	}
	mirrorFlag = &cli.StringFlag{
		Name:        "mirror",
		Usage:       "`NAME` of a configured mirror",
		Destination: &mirrorName,
	}
	maxRateFlag = &cli.StringFlag{
		Name:        "max-rate",
		Usage:       "Download speed limit per second, e.g. `2M`",
		Destination: &maxRateStr,
	}
	concurrencyFlag = &cli.IntFlag{
		Name:  "concurrency",
		Usage: "`N` files to download at once",
		Value: 1,
	}
	pythonFlag = &cli.StringFlag{
		Name:        "python",
		Usage:       "Python `INTERPRETER` to create the environment with",
		Destination: &pythonBin,
	}

	globalFlags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "silent",
			Usage: "If set, will not prompt or pause",
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Job `TOML` to use in the working directory",
			Value:       config.JobTOMLFile,
			Destination: &tomlFilename,
			Required:    false,
		},
		&cli.BoolFlag{
			Name:     "verbose",
			Required: false,
		},
	}
)

// jobDetails is the merged view of everything that parameterizes a
// scrape or download run.
type jobDetails struct {
	URL     string
	List    string
	Dest    string
	Python  string
	MaxRate int64
}

// attempt to load job settings, by increasing precedence:
// 1. global CLI config defaults
// 2. a configured mirror (--mirror)
// 3. job file in the working directory (by default, arc.toml)
// 4. .env.local overrides
// 5. command line flags and arguments
func loadJobDetails(c *cli.Command) (*jobDetails, error) {
	d := &jobDetails{List: archive.DefaultFileList}

	if cfg, err := config.LoadOrCreate(); err == nil {
		d.Dest = cfg.DefaultDest
		d.Python = cfg.Python
		if cfg.MaxRate != "" {
			d.MaxRate = archive.ParseSize(cfg.MaxRate)
		}
	}

	if mirrorName != "" {
		m, err := config.LoadMirror(mirrorName)
		if err != nil {
			return nil, err
		}
		fmt.Println("Using mirror [" + accented(m.Name) + "]")
		d.URL = m.URL
		if m.Dest != "" {
			d.Dest = m.Dest
		}
	} else if m, err := config.LoadDefaultMirror(); err == nil {
		d.URL = m.URL
		if m.Dest != "" {
			d.Dest = m.Dest
		}
	}

	if job, exists, err := config.LoadTOMLFile(workingDir, tomlFilename); exists {
		if err != nil {
			return nil, err
		}
		if job.Job.URL != "" {
			d.URL = job.Job.URL
		}
		if job.Job.List != "" {
			d.List = job.Job.List
		}
		if job.Job.Dest != "" {
			d.Dest = job.Job.Dest
		}
	}

	env, err := config.LoadEnvOverrides(workingDir)
	if err != nil {
		return nil, err
	}
	if env.Dest != "" {
		d.Dest = env.Dest
	}
	if env.Python != "" {
		d.Python = env.Python
	}
	if env.MaxRate != "" {
		d.MaxRate = archive.ParseSize(env.MaxRate)
	}

	if listPath != "" {
		d.List = listPath
	}
	if destDir != "" {
		d.Dest = destDir
	}
	if pythonBin != "" {
		d.Python = pythonBin
	}
	if maxRateStr != "" {
		d.MaxRate = archive.ParseSize(maxRateStr)
		if d.MaxRate == 0 {
			return nil, fmt.Errorf("invalid max-rate %q", maxRateStr)
		}
	}
	if c.Args().First() != "" {
		d.URL = c.Args().First()
	}

	return d, nil
}

func extractArg(c *cli.Command) (string, error) {
	if !c.Args().Present() {
		return "", errors.New("no argument provided")
	}
	return c.Args().First(), nil
}
