// =============================================================================
// Inventory Sync - Carrier Tracking Scraper
// =============================================================================
//
// This module refreshes shipment statuses from the carrier's public tracking
// page. For every shipment in the exported shipping.json it requests
//
//   {base}/tracking?code={tracking_number}&mobile={phone}
//
// and extracts the newest history row from the returned HTML: the first
// table row with exactly three cells whose middle cell looks like a date.
// The shipment's status becomes "{status} ({date})".
//
// FAULT ISOLATION:
//   Shipments missing a tracking number or phone are skipped; a failed fetch
//   or an unparsable page degrades that shipment only. The run always writes
//   the (partially) updated list back.
//
// The scraper operates on the raw JSON documents rather than typed records,
// so fields it does not understand survive the round trip untouched.
//
// =============================================================================

package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/mingxia/inventory-sync/internal/config"
	"github.com/mingxia/inventory-sync/pkg/utils"
)

// userAgent is sent with every request; the tracking site serves an empty
// shell to clients without a browser UA.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Scraper fetches and applies tracking statuses.
type Scraper struct {
	baseURL string
	delay   time.Duration
	client  *http.Client
}

// New builds a Scraper from the scraper configuration.
func New(cfg config.Scraper) *Scraper {
	return &Scraper{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		delay:   cfg.Delay,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Result reports what an update run did.
type Result struct {
	Checked int
	Updated int
	Skipped int
	Failed  int
}

// UpdateFile refreshes the statuses in the given shipping.json in place.
func (s *Scraper) UpdateFile(ctx context.Context, path string, report func(format string, args ...any)) (*Result, error) {
	if !utils.FileExists(path) {
		return nil, fmt.Errorf("%s not found (run the export first)", path)
	}

	var shipments []map[string]any
	if err := utils.ReadJSONFile(path, &shipments); err != nil {
		return nil, err
	}

	result := &Result{}
	for i, item := range shipments {
		code, _ := item["tracking_number"].(string)
		phone, _ := item["phone"].(string)
		if code == "" || phone == "" {
			result.Skipped++
			continue
		}
		result.Checked++

		status, err := s.Fetch(ctx, code, phone)
		switch {
		case err != nil:
			result.Failed++
			report("  ✗ %s: %v", code, err)
		case status == "":
			report("  - %s: no history rows yet", code)
		default:
			item["status"] = status
			result.Updated++
			report("  ✓ %s: %s", code, status)
		}

		// Stay polite to the carrier between requests.
		if i < len(shipments)-1 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(s.delay):
			}
		}
	}

	if err := utils.WriteJSONFile(path, shipments); err != nil {
		return result, err
	}
	return result, nil
}

// Fetch requests one shipment's tracking page and returns the rendered
// status line, or "" when the page has no usable history row.
func (s *Scraper) Fetch(ctx context.Context, code, phone string) (string, error) {
	u := fmt.Sprintf("%s/tracking?code=%s&mobile=%s",
		s.baseURL, url.QueryEscape(code), url.QueryEscape(phone))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	status, date, ok := ParseTrackingPage(resp.Body)
	if !ok {
		return "", nil
	}
	return fmt.Sprintf("%s (%s)", status, date), nil
}

// =============================================================================
// HTML PARSING
// =============================================================================

// ParseTrackingPage scans the tracking page for the first history row: a
// <tr> with exactly three <td> cells whose middle cell contains a date
// (every carrier timestamp embeds "20", as in 2025-01-31). Returns the
// status cell, the date cell, and whether such a row was found.
func ParseTrackingPage(r io.Reader) (status, date string, ok bool) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", "", false
	}

	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "tr" {
			cols := cellTexts(n)
			if len(cols) == 3 && strings.Contains(cols[1], "20") {
				date = cols[1]
				status = cols[2]
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	ok = walk(doc)
	return status, date, ok
}

// cellTexts collects the trimmed text of each <td> child of a row.
func cellTexts(tr *html.Node) []string {
	var cols []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" {
			cols = append(cols, strings.TrimSpace(nodeText(c)))
		}
	}
	return cols
}

// nodeText concatenates all text content below a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
