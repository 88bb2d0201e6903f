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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcget/arcget/pkg/util"
)

const (
	JobTOMLFile = "arc.toml"
)

var (
	ErrInvalidJob = errors.New("invalid job file")
)

// JobTOML is the per-directory job file: scrape and download commands run
// in a directory holding one pick up its settings without arguments.
type JobTOML struct {
	Job *JobTOMLConfig `toml:"job"` // Required
}

type JobTOMLConfig struct {
	URL  string `toml:"url"`
	List string `toml:"list"`
	Dest string `toml:"dest"`
}

func NewJobTOML(forURL string) *JobTOML {
	return &JobTOML{
		Job: &JobTOMLConfig{
			URL: forURL,
		},
	}
}

func (c *JobTOML) Validate() error {
	if c.Job == nil || c.Job.URL == "" {
		return fmt.Errorf("job url is required: %w", ErrInvalidJob)
	}
	return nil
}

func (c *JobTOML) SaveTOMLFile(dir string, tomlFileName string) error {
	f, err := os.Create(filepath.Join(dir, tomlFileName))
	if err != nil {
		return err
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("error encoding TOML: %w", err)
	}
	fmt.Printf("Saving job file [%s]\n", util.Accented(tomlFileName))
	return nil
}

func LoadTOMLFile(dir string, tomlFileName string) (*JobTOML, bool, error) {
	var config *JobTOML
	var err error
	var configExists bool

	tomlFile := filepath.Join(dir, tomlFileName)

	if _, err = os.Stat(tomlFile); err == nil {
		configExists = true
		if _, err = toml.DecodeFile(tomlFile, &config); err != nil {
			return nil, configExists, err
		}
		if err = config.Validate(); err != nil {
			return nil, configExists, err
		}
	} else {
		configExists = !errors.Is(err, fs.ErrNotExist)
	}

	return config, configExists, err
}
