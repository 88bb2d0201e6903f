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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	arcget "github.com/arcget/arcget"
)

func main() {
	app := &cli.Command{
		Name:                   "arc",
		Usage:                  "Mirror file collections from Archive.org",
		Description:            "Scrape an Archive.org download listing into an editable CSV file list, stream the listed files to a local directory, and bootstrap the Python workspace used by companion scripts.",
		Version:                arcget.Version,
		EnableShellCompletion:  true,
		Suggest:                true,
		HideHelpCommand:        true,
		UseShortOptionHandling: true,
		Flags:                  globalFlags,
		Before:                 initLogger,
	}

	app.Commands = append(app.Commands, SetupCommands...)
	app.Commands = append(app.Commands, ScrapeCommands...)
	app.Commands = append(app.Commands, DownloadCommands...)
	app.Commands = append(app.Commands, RunCommands...)
	app.Commands = append(app.Commands, MirrorCommands...)

	// Cancel in-flight scrapes and downloads on SIGINT, SIGTERM, SIGQUIT
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if cmd.Bool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
	return nil, nil
}
