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

package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileListRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file_list.csv")
	files := []File{
		{Name: "Game One.zip", URL: "https://example.org/Game%20One.zip", Size: 42},
		{Name: "game_two.7z", URL: "https://example.org/game_two.7z"},
	}

	require.NoError(t, WriteFileList(path, files))

	got, err := ReadFileList(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, files[0].Name, got[0].Name)
	assert.Equal(t, files[0].URL, got[0].URL)
	// sizes are scrape-time estimates and are not persisted
	assert.Equal(t, int64(0), got[0].Size)
}

func TestReadFileListToleratesEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file_list.csv")
	content := "File Name,File URL\n" +
		"Game%20One.zip,https://example.org/Game%20One.zip\n" +
		"short-row\n" +
		" , \n" +
		"kept.bin,https://example.org/kept.bin,extra-column\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadFileList(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Game One.zip", got[0].Name)
	assert.Equal(t, "kept.bin", got[1].Name)
}

func TestReadFileListWithoutHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file_list.csv")
	require.NoError(t, os.WriteFile(path, []byte("a.bin,https://example.org/a.bin\n"), 0o644))

	got, err := ReadFileList(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a.bin", got[0].Name)
}

func TestReadFileListMissing(t *testing.T) {
	_, err := ReadFileList(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
