package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/amonetti/nocwatch/internal/models"
)

// requestTimeout bounds the catalog scrape so a stalled page cannot hang
// setup indefinitely.
const requestTimeout = 10 * time.Second

// Client fetches the list of brands currently carrying used stock.
type Client struct {
	log     *slog.Logger
	client  *http.Client
	baseURL string
}

func NewClient(log *slog.Logger, baseURL string) *Client {
	return &Client{log: log, baseURL: baseURL, client: &http.Client{Timeout: requestTimeout}}
}

// FetchBrands scrapes the brand catalog page for the given category and
// returns the brand names in page order.
func (c *Client) FetchBrands(ctx context.Context, category models.Category) ([]string, error) {
	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse brands URL %s: %w", c.baseURL, err)
	}

	query := reqURL.Query()
	query.Set("Tipo", category.APICode())
	query.Set("Bottega", "Usato")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request %s: %w", reqURL.String(), err)
	}

	req.Header.Add("User-Agent", "Mozilla/5.0 (compatible; GoHttpClient/1.0)")

	c.log.DebugContext(ctx, "Send request", "method", req.Method, "URL", req.URL)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", reqURL.String(), err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: [%d] %s", res.StatusCode, res.Status)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("data cannot be parsed as HTML: %w", err)
	}

	var brands []string
	doc.Find("a.txtelenco").Each(func(_ int, s *goquery.Selection) {
		if name := strings.TrimSpace(s.Text()); name != "" {
			brands = append(brands, name)
		}
	})

	c.log.InfoContext(ctx, "Fetched brand catalog", "category", category.String(), "count", len(brands))

	return brands, nil
}
