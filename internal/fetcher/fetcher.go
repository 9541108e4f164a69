package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amonetti/nocwatch/internal/models"
)

// requestTimeout bounds one lookup so a stalled upstream cannot wedge the
// poll cycle until operator cancellation.
const requestTimeout = 15 * time.Second

// Fetcher retrieves the current listing snapshot of one brand from the
// product lookup API.
type Fetcher struct {
	log    *slog.Logger
	client *http.Client
	apiURL string
}

func NewFetcher(log *slog.Logger, apiURL string) *Fetcher {
	return &Fetcher{log: log, apiURL: apiURL, client: &http.Client{Timeout: requestTimeout}}
}

// productsResponse is the upstream envelope; only Result matters. Records
// are decoded loosely because the upstream schema drifts.
type productsResponse struct {
	Result []map[string]any `json:"Result"`
}

// FetchSnapshot issues one lookup for the brand and returns its normalized
// snapshot. A transport failure or malformed response is logged and yields
// an empty snapshot so one brand cannot abort the cycle for the others.
func (f *Fetcher) FetchSnapshot(ctx context.Context, brand string, category models.Category) models.Snapshot {
	records, err := f.fetch(ctx, brand, category)
	if err != nil {
		f.log.WarnContext(ctx, "Failed to fetch listings, treating as empty",
			"brand", brand, "category", category.String(), "error", err)
		return models.EmptySnapshot(brand, category)
	}

	items := make([]models.Item, 0, len(records))
	for _, record := range records {
		items = append(items, normalizeItem(record, brand))
	}

	f.log.DebugContext(ctx, "Fetched snapshot", "brand", brand, "items", len(items))

	return models.Snapshot{
		Brand:      brand,
		Category:   category,
		Items:      items,
		CapturedAt: time.Now(),
	}
}

// fetch performs the POST request and decodes the Result array.
func (f *Fetcher) fetch(ctx context.Context, brand string, category models.Category) ([]map[string]any, error) {
	form := url.Values{
		"marca":       {brand},
		"tipo":        {category.APICode()},
		"disponibile": {"M"},
		"bottega":     {"Usato"},
		"path":        {"Upload"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request %s: %w", f.apiURL, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", f.apiURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: [%d] %s", res.StatusCode, res.Status)
	}

	var parsed productsResponse
	if err = json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode products response: %w", err)
	}

	return parsed.Result, nil
}
