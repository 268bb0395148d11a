/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikeb26/swimseed/internal"
	"github.com/mikeb26/swimseed/seed"
)

// Load reads a roster from a local path or an http(s) URL. HTML is detected
// from the file extension or the response content type; anything else is
// read as CSV.
func (r *Reader) Load(ctx context.Context, client *http.Client,
	location string) ([]*seed.Athlete, error) {

	if isURL(location) {
		return r.fetch(ctx, client, location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("roster.load: %w", err)
	}
	defer f.Close()

	if isHTMLPath(location) {
		return r.ReadHTML(f)
	}
	return r.ReadCSV(f)
}

func (r *Reader) fetch(ctx context.Context, client *http.Client,
	url string) ([]*seed.Athlete, error) {

	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("roster.fetch: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("roster.fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("roster.fetch: status %d fetching %s",
			resp.StatusCode, url)
	}

	var body io.Reader = resp.Body
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") ||
		isHTMLPath(req.URL.Path) {

		return r.ReadHTML(body)
	}
	return r.ReadCSV(body)
}

func isURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

func isHTMLPath(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".html" || ext == ".htm"
}
