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
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultFileList is the work list written between scraping and
// downloading, left on disk so the user can edit it in between.
const DefaultFileList = "file_list.csv"

var fileListHeader = []string{"File Name", "File URL"}

// WriteFileList writes the files as a two-column CSV with a header row.
func WriteFileList(path string, files []File) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file list: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fileListHeader); err != nil {
		return err
	}
	for _, file := range files {
		if err := w.Write([]string{file.Name, file.URL}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadFileList reads a file list back, tolerating user edits: percent
// escapes in names are unquoted and malformed rows are skipped.
func ReadFileList(path string) ([]File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var files []File
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logrus.WithError(err).Warn("skipping a malformed file list row")
			continue
		}
		if first {
			first = false
			if isHeaderRow(record) {
				continue
			}
		}
		if len(record) < 2 {
			logrus.Warnf("skipping a short file list row: %v", record)
			continue
		}
		name := strings.TrimSpace(record[0])
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
		fileURL := strings.TrimSpace(record[1])
		if name == "" || fileURL == "" {
			continue
		}
		files = append(files, File{Name: name, URL: fileURL})
	}
	return files, nil
}

func isHeaderRow(record []string) bool {
	return len(record) >= 2 &&
		strings.EqualFold(strings.TrimSpace(record[0]), fileListHeader[0]) &&
		strings.EqualFold(strings.TrimSpace(record[1]), fileListHeader[1])
}
