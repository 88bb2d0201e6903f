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

package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/arcget/arcget/pkg/util"
)

// Env describes a virtual environment rooted under a resolved base
// directory. Base must be absolute; Dir is relative to it.
type Env struct {
	Base   string
	Dir    string
	Python string

	// Stdout and Stderr receive the output of the invoked tools.
	Stdout io.Writer
	Stderr io.Writer
}

type EnvironmentCreationError struct {
	Dir string
	Err error
}

func (e *EnvironmentCreationError) Error() string {
	return fmt.Sprintf("failed to create environment %s: %v", e.Dir, e.Err)
}

func (e *EnvironmentCreationError) Unwrap() error { return e.Err }

type ActivationError struct {
	Dir string
	Err error
}

func (e *ActivationError) Error() string {
	return fmt.Sprintf("failed to activate environment %s: %v", e.Dir, e.Err)
}

func (e *ActivationError) Unwrap() error { return e.Err }

type InstallError struct {
	Manifest string
	Err      error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("failed to install requirements from %s: %v", e.Manifest, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// Path returns the absolute path of the environment directory.
func (e *Env) Path() string {
	return filepath.Join(e.Base, e.Dir)
}

func (e *Env) scriptsDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Path(), "Scripts")
	}
	return filepath.Join(e.Path(), "bin")
}

// ActivateScript returns the shell activation hook the environment tool
// writes on creation. Its presence is what "activated" means for a child
// process: from then on the environment's own binaries are invoked directly.
func (e *Env) ActivateScript() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.scriptsDir(), "activate.bat")
	}
	return filepath.Join(e.scriptsDir(), "activate")
}

// Pip returns the environment's own pip binary.
func (e *Env) Pip() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.scriptsDir(), "pip.exe")
	}
	return filepath.Join(e.scriptsDir(), "pip")
}

func (e *Env) run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Base
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	return cmd.Run()
}

// CreateEnvironment invokes `<python> -m venv <dir>` under the base
// directory. Re-running against an existing directory is allowed; venv's
// own recreate semantics govern the outcome.
func CreateEnvironment(ctx context.Context, env *Env) error {
	if _, err := exec.LookPath(env.Python); err != nil {
		return &EnvironmentCreationError{Dir: env.Dir, Err: err}
	}
	if err := env.run(ctx, env.Python, "-m", "venv", env.Dir); err != nil {
		return &EnvironmentCreationError{Dir: env.Dir, Err: err}
	}
	return nil
}

// ActivateEnvironment verifies the environment exists and its activation
// artifacts are in place, resolving the binaries later steps invoke.
func ActivateEnvironment(env *Env) error {
	if !util.DirExists(env.Path()) {
		return &ActivationError{Dir: env.Dir, Err: fmt.Errorf("environment directory does not exist")}
	}
	if !util.FileExists(env.ActivateScript()) {
		return &ActivationError{Dir: env.Dir, Err: fmt.Errorf("activation script %s is missing", env.ActivateScript())}
	}
	if !util.FileExists(env.Pip()) {
		return &ActivationError{Dir: env.Dir, Err: fmt.Errorf("pip binary %s is missing", env.Pip())}
	}
	return nil
}

// InstallRequirements runs the environment's pip against the manifest,
// which is resolved relative to the base directory.
func InstallRequirements(ctx context.Context, env *Env, manifest string) error {
	manifestPath := manifest
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(env.Base, manifest)
	}
	if !util.FileExists(manifestPath) {
		return &InstallError{Manifest: manifest, Err: fmt.Errorf("manifest file does not exist")}
	}
	if err := env.run(ctx, env.Pip(), "install", "-r", manifestPath); err != nil {
		return &InstallError{Manifest: manifest, Err: err}
	}
	return nil
}
