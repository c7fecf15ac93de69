// Package famweb downloads FW13 fixed-width archives from the FAMWEB
// fire and aviation web service.
package famweb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client fetches FW13 archives for one station and year range.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a FAMWEB download client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// Fetch downloads the FW13 records for an NWS station between two years
// inclusive. An empty body means the station has no archived data for the
// window; callers treat that as a distinct condition from malformed data.
func (c *Client) Fetch(ctx context.Context, nwsID string, startYear, endYear int) (string, error) {
	params := url.Values{
		"stn": {nwsID},
		"byy": {strconv.Itoa(startYear)},
		"eyy": {strconv.Itoa(endYear)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("famweb request for %s: %w", nwsID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("famweb API error for %s: status %d: %s", nwsID, resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read famweb response for %s: %w", nwsID, err)
	}

	c.logger.Debug("famweb fetch complete",
		"station", nwsID,
		"bytes", len(body),
		"duration", time.Since(started),
	)
	return string(body), nil
}
