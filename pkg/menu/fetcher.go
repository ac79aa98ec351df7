package menu

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// HTTPFetcher retrieves the daily menu page for a single dining hall
type HTTPFetcher struct {
	pageURL   string
	userAgent string
	client    *http.Client
}

// NewHTTPFetcher creates a fetcher for the given food page URL
func NewHTTPFetcher(pageURL, userAgent string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		pageURL:   pageURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Fetch issues a single GET for the source's article on the given date and
// parses the response into a document. No retry here, the caller decides
// what a failed source means. Date is in YYYY-MM-DD form; empty date lets
// the upstream page pick today.
func (f *HTTPFetcher) Fetch(ctx context.Context, src Source, date string) (*goquery.Document, error) {
	u, err := url.Parse(f.pageURL)
	if err != nil {
		return nil, &FetchError{Source: src.Name, URL: f.pageURL, Err: fmt.Errorf("parse page url: %w", err)}
	}

	q := u.Query()
	q.Set("mode", "view")
	q.Set("articleNo", src.ArticleID)
	if date != "" {
		q.Set("date", date)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, &FetchError{Source: src.Name, URL: u.String(), Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: src.Name, URL: u.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Source: src.Name, URL: u.String(), Err: fmt.Errorf("unexpected status code %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: src.Name, URL: u.String(), Err: fmt.Errorf("parse document: %w", err)}
	}

	return doc, nil
}

// ExtractMeal locates the meal section by its structural class marker and
// returns its flattened text, one line per text node in document order.
// A missing section yields the NoMenu sentinel, the page legitimately drops
// sections on holidays and closures.
func ExtractMeal(doc *goquery.Document, slot MealSlot) string {
	sel := doc.Find(".b-menu-day." + slot.Marker()).First()
	if sel.Length() == 0 {
		return NoMenu
	}
	return strings.Join(flattenText(sel), "\n")
}

// flattenText collects trimmed non-empty text nodes in document order,
// descending through element children
func flattenText(sel *goquery.Selection) []string {
	var lines []string
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) == "#text" {
				if txt := strings.TrimSpace(c.Text()); txt != "" {
					lines = append(lines, txt)
				}
				return
			}
			walk(c)
		})
	}
	walk(sel)
	return lines
}
