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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobTOMLRoundTrip(t *testing.T) {
	dir := t.TempDir()

	job := NewJobTOML("https://archive.org/download/test-collection/")
	job.Job.List = "file_list.csv"
	job.Job.Dest = "downloads"
	require.NoError(t, job.SaveTOMLFile(dir, JobTOMLFile))

	loaded, exists, err := LoadTOMLFile(dir, JobTOMLFile)
	require.NoError(t, err)
	assert.True(t, exists)
	require.NotNil(t, loaded.Job)
	assert.Equal(t, job.Job.URL, loaded.Job.URL)
	assert.Equal(t, "file_list.csv", loaded.Job.List)
	assert.Equal(t, "downloads", loaded.Job.Dest)
}

func TestLoadTOMLFileMissing(t *testing.T) {
	loaded, exists, _ := LoadTOMLFile(t.TempDir(), JobTOMLFile)
	assert.False(t, exists)
	assert.Nil(t, loaded)
}

func TestLoadTOMLFileInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, JobTOMLFile), []byte("[job]\nlist = \"x\"\n"), 0o644))

	_, exists, err := LoadTOMLFile(dir, JobTOMLFile)
	assert.True(t, exists)
	assert.ErrorIs(t, err, ErrInvalidJob)
}
