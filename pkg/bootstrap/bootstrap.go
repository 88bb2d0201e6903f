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

// Package bootstrap sets up the Python virtualenv workspace used by the
// companion scripts: create the environment, verify its activation
// artifacts, and install the requirements manifest into it.
package bootstrap

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	DefaultEnvDir       = "venv"
	DefaultManifest     = "requirements.txt"
	MinPythonConstraint = ">= 3.8"
)

var pythonVersionRe = regexp.MustCompile(`Python (\d+\.\d+(?:\.\d+)?)`)

// Determine if `cmd` is a binary in PATH or a known alias
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return (err == nil || CommandIsAlias(cmd))
}

// Determine if `cmd` is a known alias
func CommandIsAlias(cmd string) bool {
	if runtime.GOOS == "windows" {
		return false
	}
	out, err := exec.Command("alias", cmd).Output()
	if err != nil {
		return false
	}
	output := strings.TrimSpace(string(out))
	return strings.HasPrefix(output, cmd+"=")
}

// FindPython returns the interpreter to use for environment creation,
// preferring an explicitly requested binary over the ambient ones.
func FindPython(preferred string) (string, error) {
	candidates := []string{"python3", "python"}
	if preferred != "" {
		candidates = []string{preferred}
	}
	for _, c := range candidates {
		if CommandExists(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found, tried %s", strings.Join(candidates, ", "))
}

// PythonVersion runs `<bin> --version` and parses the reported version.
func PythonVersion(ctx context.Context, bin string) (*semver.Version, error) {
	out, err := exec.CommandContext(ctx, bin, "--version").CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("failed to run %s --version: %w", bin, err)
	}
	return parsePythonVersion(string(out))
}

func parsePythonVersion(out string) (*semver.Version, error) {
	m := pythonVersionRe.FindStringSubmatch(out)
	if m == nil {
		return nil, fmt.Errorf("unrecognized version output %q", strings.TrimSpace(out))
	}
	return semver.NewVersion(m[1])
}

// CheckPython verifies the interpreter satisfies the minimum supported
// version. The constraint defaults to MinPythonConstraint.
func CheckPython(ctx context.Context, bin, constraint string) error {
	if constraint == "" {
		constraint = MinPythonConstraint
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return err
	}
	v, err := PythonVersion(ctx, bin)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("python %s is too old, need %s", v, constraint)
	}
	return nil
}
