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

// Package archive scrapes Archive.org download listings and manages the
// CSV file list that sits between scraping and downloading.
package archive

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

const fetchTimeout = 10 * time.Second

// File is one downloadable entry from a listing.
type File struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Listing holds the scraped files and their estimated total size.
type Listing struct {
	Files     []File `json:"files"`
	TotalSize int64  `json:"total_size"`
}

// ScrapeListing fetches an Archive.org style autoindex page and extracts
// one File per table row carrying a link and a size cell. Rows that fail
// to parse are skipped with a warning.
func ScrapeListing(ctx context.Context, pageURL string) (*Listing, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid listing URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve listing: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to retrieve listing: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing: %w", err)
	}

	listing := &Listing{}
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a").First()
		cells := row.Find("td")
		if link.Length() == 0 || cells.Length() == 0 {
			return
		}
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return
		}
		file, err := rowToFile(base, href, cells.Last().Text())
		if err != nil {
			logrus.WithError(err).Warn("skipping a listing row")
			return
		}
		listing.Files = append(listing.Files, file)
		listing.TotalSize += file.Size
	})

	return listing, nil
}

func rowToFile(base *url.URL, href, sizeText string) (File, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return File{}, fmt.Errorf("bad link %q: %w", href, err)
	}
	resolved := base.ResolveReference(ref)

	segments := strings.Split(strings.TrimSuffix(href, "/"), "/")
	name, err := url.PathUnescape(segments[len(segments)-1])
	if err != nil {
		return File{}, fmt.Errorf("bad file name in %q: %w", href, err)
	}
	if name == "" {
		return File{}, fmt.Errorf("empty file name in %q", href)
	}

	return File{
		Name: name,
		URL:  resolved.String(),
		Size: ParseSize(sizeText),
	}, nil
}
