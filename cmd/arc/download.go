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
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/arcget/arcget/pkg/archive"
	"github.com/arcget/arcget/pkg/download"
	"github.com/arcget/arcget/pkg/util"
)

var DownloadCommands = []*cli.Command{
	{
		Name:     "download",
		Usage:    "Download every file in the file list",
		Category: "Core",
		Flags: []cli.Flag{
			listFlag,
			destFlag,
			mirrorFlag,
			maxRateFlag,
			concurrencyFlag,
			&cli.BoolFlag{
				Name:  "no-skip-existing",
				Usage: "Download files again even when they already exist locally",
			},
		},
		Action: downloadFiles,
	},
}

func downloadFiles(ctx context.Context, cmd *cli.Command) error {
	details, err := loadJobDetails(cmd)
	if err != nil {
		return err
	}

	files, err := archive.ReadFileList(details.List)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("File list is empty, nothing to download.")
		return nil
	}

	if details.Dest == "" {
		if details.Dest, err = promptDestDir(cmd); err != nil {
			return err
		}
	}

	if !cmd.Bool("silent") && util.IsInteractive() {
		proceed := true
		if err := huh.NewConfirm().
			Title(fmt.Sprintf("Download all %d files to %s?", len(files), details.Dest)).
			Value(&proceed).
			WithTheme(theme).
			Run(); err != nil {
			return err
		}
		if !proceed {
			fmt.Println("Download canceled.")
			return nil
		}
	}

	dl := download.New(download.Options{
		DestDir:      details.Dest,
		SkipExisting: !cmd.Bool("no-skip-existing"),
		MaxRate:      details.MaxRate,
		Concurrency:  int(cmd.Int("concurrency")),
		Out:          os.Stdout,
	})
	summary, err := dl.Run(ctx, files)
	if err != nil {
		return err
	}

	fmt.Printf("Process completed! %d downloaded, %d skipped, %d failed.\n",
		summary.Completed, summary.Skipped, len(summary.Failed))
	if len(summary.Failed) > 0 {
		return fmt.Errorf("%d of %d downloads failed", len(summary.Failed), len(files))
	}
	return nil
}

func promptDestDir(cmd *cli.Command) (string, error) {
	if cmd.Bool("silent") || !util.IsInteractive() {
		return "", errors.New("no destination directory provided")
	}
	var dest string
	if err := huh.NewInput().
		Title("Destination Folder").
		Placeholder("downloads").
		Value(&dest).
		Validate(func(s string) error {
			if s == "" {
				return errors.New("enter a folder name")
			}
			return nil
		}).
		WithTheme(theme).
		Run(); err != nil {
		return "", err
	}
	return dest, nil
}
