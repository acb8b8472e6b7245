// Package mundodeportivo implements source.ResultSource against the
// Mundo Deportivo national lottery results pages.
package mundodeportivo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"lottery-tracker/internal/source"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://nacionalloteria.mundodeportivo.com"
	DefaultTimeout = 30 * time.Second
)

const (
	resultsPage = "/Loteria-Nacional-Sabado.php"

	// Prize text shorter than this means the page rendered without data.
	minPrizeTextLen = 5
)

// Page titles containing any of these indicate a date with no published draw.
var noDataTitleMarkers = []string{"error", "no encontrado", "no disponible", "404"}

// Client fetches Saturday draw results over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option configures Client.
type Option func(*Client)

// WithBaseURL overrides the results site base URL (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a results client for the Saturday draw pages.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile-time interface check.
var _ source.ResultSource = (*Client)(nil)

// Fetch retrieves the results page for a ticket number on a draw date and
// extracts the prize text. Returns source.ErrNoData when the page carries no
// draw data and *source.TransientError on transport failures.
func (c *Client) Fetch(ctx context.Context, ticketNumber string, date time.Time) (*source.RawDraw, error) {
	pageURL := fmt.Sprintf("%s%s?numero=%s&del-dia=%s",
		c.baseURL, resultsPage,
		url.QueryEscape(ticketNumber), date.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &source.TransientError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &source.TransientError{URL: pageURL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &source.TransientError{URL: pageURL, Err: fmt.Errorf("parse html: %w", err)}
	}

	text, ok := extractPrizeText(doc)
	if !ok {
		return nil, source.ErrNoData
	}

	return &source.RawDraw{
		TicketNumber: ticketNumber,
		Date:         date,
		PrizeText:    text,
		URL:          pageURL,
	}, nil
}

// extractPrizeText pulls the prize description out of the results page.
// Returns false when the page has no draw data for the requested date.
func extractPrizeText(doc *goquery.Document) (string, bool) {
	title := strings.ToLower(doc.Find("title").Text())
	for _, marker := range noDataTitleMarkers {
		if strings.Contains(title, marker) {
			return "", false
		}
	}

	span := doc.Find("span.text-premio").First()
	if span.Length() == 0 {
		return "", false
	}

	// <br> separates lines within the span; flatten to spaces so amounts
	// don't concatenate with surrounding words.
	span.Find("br").ReplaceWithHtml(" ")
	text := strings.Join(strings.Fields(span.Text()), " ")

	if len(text) < minPrizeTextLen {
		return "", false
	}
	return text, true
}
