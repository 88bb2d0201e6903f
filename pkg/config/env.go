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
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/arcget/arcget/pkg/util"
)

const EnvLocalFile = ".env.local"

// EnvOverrides are per-directory settings read from .env.local. They sit
// between the global CLI config and command line flags in precedence.
type EnvOverrides struct {
	Dest    string
	MaxRate string
	Python  string
}

func LoadEnvOverrides(dir string) (*EnvOverrides, error) {
	envPath := filepath.Join(dir, EnvLocalFile)
	if !util.FileExists(envPath) {
		return &EnvOverrides{}, nil
	}
	m, err := godotenv.Read(envPath)
	if err != nil {
		return nil, err
	}
	return &EnvOverrides{
		Dest:    m["ARC_DEST"],
		MaxRate: m["ARC_MAX_RATE"],
		Python:  m["ARC_PYTHON"],
	}, nil
}
