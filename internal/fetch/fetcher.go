// Package fetch retrieves a policy page over HTTP and extracts its readable
// text for analysis.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Chrome elements that never contain policy text.
const strippedSelectors = "script, style, noscript, nav, header, footer, iframe, svg"

// Containers that usually hold the document body, tried in order.
var contentSelectors = []string{"main", "article", "#content", ".content", "body"}

// Fetcher downloads pages and extracts their text.
type Fetcher struct {
	client *http.Client
}

// New wires an HTTP client; a nil client gets a 20-second timeout default.
func New(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Fetcher{client: client}
}

// Extract fetches the page at url and returns its readable text with
// scripts, styles, and page chrome removed.
func (f *Fetcher) Extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "fineprint/1.0 (+https://github.com/fineprint-dev/fineprint)")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", url, err)
	}

	return ExtractFromDocument(doc), nil
}

// ExtractFromDocument pulls readable text out of a parsed page. Split out
// from Extract so tests can feed HTML directly.
func ExtractFromDocument(doc *goquery.Document) string {
	doc.Find(strippedSelectors).Remove()

	for _, selector := range contentSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		if text := normalizeSpace(sel.First().Text()); text != "" {
			return text
		}
	}
	return normalizeSpace(doc.Text())
}

// normalizeSpace collapses runs of whitespace into single spaces. The engine
// preprocessor does this again, but returning tidy text keeps logs and cache
// entries readable.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
