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
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pkg/browser"
	"github.com/urfave/cli/v3"

	"github.com/arcget/arcget/pkg/archive"
	"github.com/arcget/arcget/pkg/config"
	"github.com/arcget/arcget/pkg/util"
)

var (
	outPath string

	ScrapeCommands = []*cli.Command{
		{
			Name:      "scrape",
			Usage:     "Scrape an Archive.org download listing into a file list CSV",
			Category:  "Core",
			ArgsUsage: "`URL`",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "out",
					Aliases:     []string{"o"},
					Usage:       "`PATH` of the file list CSV to write",
					Value:       archive.DefaultFileList,
					Destination: &outPath,
				},
				mirrorFlag,
				jsonFlag,
				&cli.BoolFlag{
					Name:  "open",
					Usage: "Open the listing in a browser",
				},
				&cli.BoolFlag{
					Name:  "save-job",
					Usage: "Save an " + config.JobTOMLFile + " in the working directory for later runs",
				},
			},
			Action: scrapeListing,
		},
	}
)

func scrapeListing(ctx context.Context, cmd *cli.Command) error {
	details, err := loadJobDetails(cmd)
	if err != nil {
		return err
	}
	if details.URL == "" {
		if details.URL, err = promptListingURL(ctx, cmd); err != nil {
			return err
		}
	}
	if _, err := url.ParseRequestURI(details.URL); err != nil {
		return fmt.Errorf("invalid listing URL %q: %w", details.URL, err)
	}

	if cmd.Bool("open") {
		// this will fail in headless environments; the scrape proceeds
		// either way
		_ = browser.OpenURL(details.URL)
	}

	var listing *archive.Listing
	if err := util.Await(
		"Scraping "+details.URL,
		ctx,
		func(ctx context.Context) error {
			listing, err = archive.ScrapeListing(ctx, details.URL)
			return err
		},
	); err != nil {
		return err
	}

	if cmd.Bool("json") {
		return printJSON(listing)
	}

	if len(listing.Files) == 0 {
		fmt.Println("No files found.")
		return nil
	}

	fmt.Printf("Number of files found: %d\n", len(listing.Files))
	fmt.Printf("Estimated total size: %s\n", accented(archive.FormatSize(listing.TotalSize)))

	if err := archive.WriteFileList(outPath, listing.Files); err != nil {
		return err
	}
	fmt.Println("File list saved to [" + accented(outPath) + "]")
	fmt.Println(dimmed("You can edit the file list before downloading."))

	if cmd.Bool("save-job") {
		job := config.NewJobTOML(details.URL)
		job.Job.List = outPath
		job.Job.Dest = details.Dest
		if err := job.SaveTOMLFile(workingDir, tomlFilename); err != nil {
			return err
		}
	}
	return nil
}

func promptListingURL(ctx context.Context, cmd *cli.Command) (string, error) {
	if cmd.Bool("silent") || !util.IsInteractive() {
		return "", errors.New("no listing URL provided")
	}
	var listingURL string
	if err := huh.NewInput().
		Title("Listing URL").
		Placeholder("https://archive.org/download/...").
		Value(&listingURL).
		Validate(func(s string) error {
			if _, err := url.ParseRequestURI(s); err != nil {
				return errors.New("enter a valid URL")
			}
			return nil
		}).
		WithTheme(theme).
		Run(); err != nil {
		return "", err
	}
	return listingURL, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
