package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Client talks to the public Steam web APIs. All calls are plain GETs with
// JSON bodies; callers own pacing and retry policy.
type Client struct {
	storeAPIBase string
	appListURL   string
	httpClient   *http.Client
}

func NewClient(storeAPIBase, appListURL string) *Client {
	return &Client{
		storeAPIBase: storeAPIBase,
		appListURL:   appListURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type App struct {
	AppID int64  `json:"appid"`
	Name  string `json:"name"`
}

type appListResponse struct {
	AppList struct {
		Apps []App `json:"apps"`
	} `json:"applist"`
}

// AppDetails is the subset of the storefront appdetails payload the catalog
// keeps.
type AppDetails struct {
	Name            string `json:"name"`
	HeaderImage     string `json:"header_image"`
	CapsuleImage    string `json:"capsule_image"`
	Recommendations struct {
		Total int64 `json:"total"`
	} `json:"recommendations"`
	Metacritic struct {
		Score int `json:"score"`
	} `json:"metacritic"`
	Genres []struct {
		Description string `json:"description"`
	} `json:"genres"`
	Categories []struct {
		Description string `json:"description"`
	} `json:"categories"`
	PriceOverview *PriceOverview `json:"price_overview"`
	ReleaseDate   struct {
		Date string `json:"date"`
	} `json:"release_date"`
}

type PriceOverview struct {
	Currency        string `json:"currency"`
	FinalCents      int64  `json:"final"`
	InitialCents    int64  `json:"initial"`
	DiscountPercent int    `json:"discount_percent"`
}

type appDetailsEntry struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// GetAppList fetches the full public app index.
func (c *Client) GetAppList(ctx context.Context) ([]App, error) {
	var body appListResponse
	if err := c.getJSON(ctx, c.appListURL, &body); err != nil {
		return nil, fmt.Errorf("app list fetch failed: %w", err)
	}
	return body.AppList.Apps, nil
}

// GetAppDetails fetches one app's storefront record. A nil result with a nil
// error means Steam has no storefront page for the app.
func (c *Client) GetAppDetails(ctx context.Context, appID int64) (*AppDetails, error) {
	url := fmt.Sprintf("%s/appdetails?appids=%d&cc=us&l=en", c.storeAPIBase, appID)

	entries := map[string]appDetailsEntry{}
	if err := c.getJSON(ctx, url, &entries); err != nil {
		return nil, fmt.Errorf("appdetails fetch failed for %d: %w", appID, err)
	}

	entry, ok := entries[strconv.FormatInt(appID, 10)]
	if !ok || !entry.Success || len(entry.Data) == 0 {
		return nil, nil
	}

	var details AppDetails
	if err := json.Unmarshal(entry.Data, &details); err != nil {
		return nil, fmt.Errorf("appdetails decode failed for %d: %w", appID, err)
	}
	return &details, nil
}

// GetPriceOverview fetches just the price block. A nil result with a nil
// error means the app is unlisted or free.
func (c *Client) GetPriceOverview(ctx context.Context, appID int64) (*PriceOverview, error) {
	url := fmt.Sprintf("%s/appdetails?appids=%d&cc=us&filters=price_overview", c.storeAPIBase, appID)

	entries := map[string]appDetailsEntry{}
	if err := c.getJSON(ctx, url, &entries); err != nil {
		return nil, fmt.Errorf("price fetch failed for %d: %w", appID, err)
	}

	entry, ok := entries[strconv.FormatInt(appID, 10)]
	if !ok || !entry.Success || len(entry.Data) == 0 {
		return nil, nil
	}

	// The filtered endpoint returns data:[] for apps without a price.
	var data struct {
		PriceOverview *PriceOverview `json:"price_overview"`
	}
	if err := json.Unmarshal(entry.Data, &data); err != nil {
		return nil, nil
	}
	return data.PriceOverview, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
