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
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arcget/arcget/pkg/util"
)

type CLIConfig struct {
	DefaultMirror string         `yaml:"default_mirror"`
	Mirrors       []MirrorConfig `yaml:"mirrors"`
	DefaultDest   string         `yaml:"default_dest"`
	MaxRate       string         `yaml:"max_rate"`
	Python        string         `yaml:"python"`
	// absent from YAML
	hasPersisted bool
}

// MirrorConfig is a named listing the user mirrors repeatedly.
type MirrorConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Dest string `yaml:"dest"`
}

func LoadDefaultMirror() (*MirrorConfig, error) {
	conf, err := LoadOrCreate()
	if err != nil {
		return nil, err
	}

	if conf.DefaultMirror != "" {
		for _, m := range conf.Mirrors {
			if m.Name == conf.DefaultMirror {
				return &m, nil
			}
		}
	}

	return nil, errors.New("no default mirror set")
}

func LoadMirror(name string) (*MirrorConfig, error) {
	conf, err := LoadOrCreate()
	if err != nil {
		return nil, err
	}

	for _, m := range conf.Mirrors {
		if m.Name == name {
			return &m, nil
		}
	}

	return nil, errors.New("mirror not found")
}

// LoadOrCreate loads the config file from ~/.arcget/cli-config.yaml,
// returning an empty config when none exists yet.
func LoadOrCreate() (*CLIConfig, error) {
	configPath, err := getConfigLocation()
	if err != nil {
		return nil, err
	}

	c := &CLIConfig{}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return c, nil
	} else if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, c); err != nil {
		return nil, err
	}
	c.hasPersisted = true

	return c, nil
}

func (c *CLIConfig) MirrorExists(name string) bool {
	for _, m := range c.Mirrors {
		if strings.EqualFold(m.Name, name) {
			return true
		}
	}
	return false
}

func (c *CLIConfig) RemoveMirror(name string) error {
	var kept []MirrorConfig
	for _, m := range c.Mirrors {
		if m.Name == name {
			continue
		}
		kept = append(kept, m)
	}
	c.Mirrors = kept

	if c.DefaultMirror == name {
		c.DefaultMirror = ""
	}

	if err := c.PersistIfNeeded(); err != nil {
		return err
	}

	fmt.Println("Removed mirror", name)
	return nil
}

func (c *CLIConfig) PersistIfNeeded() error {
	if len(c.Mirrors) == 0 && !c.hasPersisted {
		// doesn't need to be persisted
		return nil
	}

	configPath, err := getConfigLocation()
	if err != nil {
		return err
	}
	if err = os.MkdirAll(path.Dir(configPath), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err = os.WriteFile(configPath, data, 0600); err != nil {
		return err
	}
	fmt.Printf("Saved CLI config to [%s]\n", util.Accented(configPath))
	c.hasPersisted = true
	return nil
}

func getConfigLocation() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return path.Join(dir, ".arcget", "cli-config.yaml"), nil
}
