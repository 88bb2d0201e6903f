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
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `<html><body><table>
<tr><th>Name</th><th>Last modified</th><th>Size</th></tr>
<tr><td><a href="Game%20One.zip">Game One.zip</a></td><td>2019-01-01</td><td>1.5G</td></tr>
<tr><td><a href="roms/game_two.7z">game_two.7z</a></td><td>2019-01-01</td><td>300M</td></tr>
<tr><td><a href="notes.txt">notes.txt</a></td><td>2019-01-01</td><td>-</td></tr>
<tr><td>no link here</td><td>2019-01-01</td><td>10K</td></tr>
</table></body></html>`

func TestScrapeListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	listing, err := ScrapeListing(context.Background(), srv.URL+"/download/test-collection/")
	require.NoError(t, err)
	require.Len(t, listing.Files, 3)

	assert.Equal(t, "Game One.zip", listing.Files[0].Name)
	assert.Equal(t, srv.URL+"/download/test-collection/Game%20One.zip", listing.Files[0].URL)
	assert.Equal(t, int64(1610612736), listing.Files[0].Size)

	assert.Equal(t, "game_two.7z", listing.Files[1].Name)
	assert.Equal(t, srv.URL+"/download/test-collection/roms/game_two.7z", listing.Files[1].URL)

	// unparsable sizes count as zero and rows without links are dropped
	assert.Equal(t, int64(0), listing.Files[2].Size)
	assert.Equal(t, int64(1610612736+314572800), listing.TotalSize)
}

func TestScrapeListingErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := ScrapeListing(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "status 404")

	_, err = ScrapeListing(context.Background(), "http://127.0.0.1:1/nope")
	assert.Error(t, err)
}
