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
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/arcget/arcget/pkg/bootstrap"
	"github.com/arcget/arcget/pkg/util"
)

var (
	envDir       string
	manifestPath string

	SetupCommands = []*cli.Command{
		{
			Name:     "setup",
			Usage:    "Bootstrap the Python workspace: create a virtualenv and install requirements into it",
			Category: "Workspace",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "dir",
					Usage:       "`DIR` of the virtual environment, relative to the base directory",
					Value:       bootstrap.DefaultEnvDir,
					Destination: &envDir,
				},
				&cli.StringFlag{
					Name:        "requirements",
					Aliases:     []string{"r"},
					Usage:       "Requirements `MANIFEST` to install",
					Value:       bootstrap.DefaultManifest,
					Destination: &manifestPath,
				},
				&cli.StringFlag{
					Name:  "base",
					Usage: "Base `DIR` the environment and manifest paths resolve against",
					Value: ".",
				},
				&cli.BoolFlag{
					Name:  "strict",
					Usage: "Stop at the first failed step instead of running the sequence to completion",
				},
				pythonFlag,
			},
			Action: setupWorkspace,
		},
	}
)

func setupWorkspace(ctx context.Context, cmd *cli.Command) error {
	details, err := loadJobDetails(cmd)
	if err != nil {
		return err
	}

	base, err := util.ResolveBase(cmd.String("base"))
	if err != nil {
		return err
	}

	python, err := bootstrap.FindPython(details.Python)
	if err != nil {
		if cmd.Bool("strict") {
			return err
		}
		logrus.WithError(err).Warn("preflight failed")
		python = "python3"
	} else if err := bootstrap.CheckPython(ctx, python, ""); err != nil {
		if cmd.Bool("strict") {
			return err
		}
		logrus.WithError(err).Warn("preflight failed")
	}

	env := &bootstrap.Env{
		Base:   base,
		Dir:    envDir,
		Python: python,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	runner := &bootstrap.Runner{
		Strict:      cmd.Bool("strict"),
		FinalBanner: util.BannerStyle.Render("Done!"),
		Out:         os.Stdout,
	}
	steps := []bootstrap.Step{
		{
			Banner: util.BannerStyle.Render("Creating virtual environment..."),
			Run: func(ctx context.Context) error {
				return bootstrap.CreateEnvironment(ctx, env)
			},
		},
		{
			Banner: util.BannerStyle.Render("Activating virtual environment..."),
			Run: func(ctx context.Context) error {
				return bootstrap.ActivateEnvironment(env)
			},
		},
		{
			Banner: util.BannerStyle.Render("Installing requirements..."),
			Run: func(ctx context.Context) error {
				return bootstrap.InstallRequirements(ctx, env, manifestPath)
			},
		},
	}

	runErr := runner.Execute(ctx, steps)
	if runErr != nil && cmd.Bool("strict") {
		return runErr
	}
	if runErr != nil {
		// the sequence ran to completion; report what failed without
		// failing the command, matching the historical setup script
		logrus.WithError(runErr).Warn("setup finished with failed steps")
	}

	if err := instantiateEnvFiles(base); err != nil {
		logrus.WithError(err).Warn("could not instantiate env files")
	}

	if !cmd.Bool("silent") {
		util.Pause("Press Enter to quit...")
	}
	return nil
}

// instantiateEnvFiles fills in .env.local files from any .env.example
// the workspace ships, prompting for unknown values.
func instantiateEnvFiles(base string) error {
	if !util.FileExists(filepath.Join(base, bootstrap.EnvExampleFile)) {
		return nil
	}
	prompt := func(key, oldValue string) (string, error) {
		if !util.IsInteractive() {
			return oldValue, nil
		}
		value := oldValue
		err := huh.NewInput().
			Title(key).
			Value(&value).
			WithTheme(theme).
			Run()
		return value, err
	}
	return bootstrap.InstantiateDotEnv(base, map[string]string{}, prompt)
}
