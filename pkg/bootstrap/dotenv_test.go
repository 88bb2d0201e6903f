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
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantiateDotEnv(t *testing.T) {
	dir := t.TempDir()
	example := "ARC_DEST=downloads\nARC_TOKEN=\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvExampleFile), []byte(example), 0o644))

	prompted := 0
	err := InstantiateDotEnv(dir, map[string]string{"ARC_DEST": "mirror"}, func(key, value string) (string, error) {
		prompted++
		assert.Equal(t, "ARC_TOKEN", key)
		return "secret", nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, prompted)

	env, err := godotenv.Read(filepath.Join(dir, EnvLocalFile))
	require.NoError(t, err)
	assert.Equal(t, "mirror", env["ARC_DEST"])
	assert.Equal(t, "secret", env["ARC_TOKEN"])
}
