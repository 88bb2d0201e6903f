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

	"github.com/urfave/cli/v3"

	"github.com/arcget/arcget/pkg/archive"
	"github.com/arcget/arcget/pkg/util"
)

var RunCommands = []*cli.Command{
	{
		Name:      "run",
		Usage:     "Scrape a listing, pause for edits, then download everything",
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
			destFlag,
			mirrorFlag,
			maxRateFlag,
			concurrencyFlag,
		},
		Action: runEndToEnd,
	},
}

// runEndToEnd is the classic flow: scrape, let the user trim the file
// list, then download whatever is left of it.
func runEndToEnd(ctx context.Context, cmd *cli.Command) error {
	if err := scrapeListing(ctx, cmd); err != nil {
		return err
	}

	if !cmd.Bool("silent") {
		util.Pause("You can now edit the file list if needed. Press Enter to continue...")
	}

	// the download stage reads whatever list the scrape just wrote
	listPath = outPath
	if err := downloadFiles(ctx, cmd); err != nil {
		return err
	}

	if !cmd.Bool("silent") {
		util.Pause("Press Enter to quit...")
	}
	return nil
}
