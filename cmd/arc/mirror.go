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
	"net/url"

	"github.com/urfave/cli/v3"

	"github.com/arcget/arcget/pkg/config"
)

var MirrorCommands = []*cli.Command{
	{
		Name:     "mirror",
		Usage:    "Manage named mirrors in the CLI config",
		Category: "Config",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List configured mirrors",
				Action: listMirrors,
				Flags:  []cli.Flag{jsonFlag},
			},
			{
				Name:      "add",
				Usage:     "Save a listing URL as a named mirror",
				ArgsUsage: "`NAME` `URL`",
				Action:    addMirror,
				Flags: []cli.Flag{
					destFlag,
					&cli.BoolFlag{
						Name:  "default",
						Usage: "Make this the default mirror",
					},
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove a named mirror",
				ArgsUsage: "`NAME`",
				Action:    removeMirror,
			},
			{
				Name:      "set-default",
				Usage:     "Set the default mirror",
				ArgsUsage: "`NAME`",
				Action:    setDefaultMirror,
			},
		},
	},
}

func listMirrors(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return err
	}
	if cmd.Bool("json") {
		return printJSON(cfg.Mirrors)
	}
	if len(cfg.Mirrors) == 0 {
		fmt.Println("No mirrors configured.")
		return nil
	}
	for _, m := range cfg.Mirrors {
		marker := "  "
		if m.Name == cfg.DefaultMirror {
			marker = "* "
		}
		fmt.Printf("%s%s\t%s\n", marker, accented(m.Name), m.URL)
	}
	return nil
}

func addMirror(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().Get(0)
	mirrorURL := cmd.Args().Get(1)
	if name == "" || mirrorURL == "" {
		return errors.New("both a name and a URL are required")
	}
	if _, err := url.ParseRequestURI(mirrorURL); err != nil {
		return fmt.Errorf("invalid mirror URL %q: %w", mirrorURL, err)
	}

	cfg, err := config.LoadOrCreate()
	if err != nil {
		return err
	}
	if cfg.MirrorExists(name) {
		return fmt.Errorf("mirror %q already exists", name)
	}
	cfg.Mirrors = append(cfg.Mirrors, config.MirrorConfig{
		Name: name,
		URL:  mirrorURL,
		Dest: destDir,
	})
	if cmd.Bool("default") || cfg.DefaultMirror == "" {
		cfg.DefaultMirror = name
	}
	return cfg.PersistIfNeeded()
}

func removeMirror(ctx context.Context, cmd *cli.Command) error {
	name, err := extractArg(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return err
	}
	if !cfg.MirrorExists(name) {
		return fmt.Errorf("mirror %q not found", name)
	}
	return cfg.RemoveMirror(name)
}

func setDefaultMirror(ctx context.Context, cmd *cli.Command) error {
	name, err := extractArg(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return err
	}
	if !cfg.MirrorExists(name) {
		return fmt.Errorf("mirror %q not found", name)
	}
	cfg.DefaultMirror = name
	return cfg.PersistIfNeeded()
}
