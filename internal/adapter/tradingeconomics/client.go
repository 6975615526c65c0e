package tradingeconomics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// maxBodyBytes caps provider responses; /country/all for a paid key is the
// largest payload and stays well under this.
const maxBodyBytes = 4 << 20

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logrus.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				ResponseHeaderTimeout: timeout,
			},
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
	}
}

// CountryIndicator fetches the observation rows for one indicator of one
// country, most recent row last.
func (c *Client) CountryIndicator(ctx context.Context, country, indicator string) ([]IndicatorRow, error) {
	path := fmt.Sprintf("/country/%s/%s", url.PathEscape(country), url.PathEscape(indicator))
	return c.fetchRows(ctx, path)
}

// AllIndicators fetches the provider-wide indicator listing across countries.
func (c *Client) AllIndicators(ctx context.Context) ([]IndicatorRow, error) {
	return c.fetchRows(ctx, "/country/all")
}

func (c *Client) fetchRows(ctx context.Context, path string) ([]IndicatorRow, error) {
	q := url.Values{}
	q.Set("c", c.apiKey)
	q.Set("f", "json")
	reqURL := c.baseURL + path + "?" + q.Encode()

	c.logger.Debugf("Fetching provider data from %s", path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Errorf("Failed to create request: %v", err)
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("Failed to fetch by API: %v", err)
		return nil, fmt.Errorf("fetch error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.logger.Errorf("Failed to read response body: %v", err)
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Debugf("Provider response status %d, body length %d", resp.StatusCode, len(body))
		return nil, fmt.Errorf("provider http %d: %s", resp.StatusCode, truncate(body, 200))
	}

	if len(body) == 0 {
		c.logger.Error("Empty response body from provider")
		return nil, errors.New("empty response body")
	}

	var rows []IndicatorRow
	if err := json.Unmarshal(body, &rows); err != nil {
		c.logger.Errorf("Failed to parse provider JSON: %v", err)
		c.logger.Debugf("First 200 chars: %s", truncate(body, 200))
		return nil, fmt.Errorf("parse provider response: %w", err)
	}

	c.logger.Debugf("Provider returned %d rows for %s", len(rows), path)
	return rows, nil
}

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
