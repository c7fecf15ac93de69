// Package wrccweb downloads raw station exports from the WRCC web service.
package wrccweb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client fetches WRCC tab-delimited exports for one station and date range.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a WRCC download client. baseURL points at the wea_list
// CGI endpoint.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// Fetch posts a station+date-range request and returns the raw text blob.
// The units=m parameter enforces the metric contract: WRCC is supposed to
// deliver metric values, and the unit harmonizer downstream fails loudly
// if it does not. An empty body is returned as an empty string; callers
// treat that as "no data for the window", distinct from malformed data.
func (c *Client) Fetch(ctx context.Context, wrccID string, start, end time.Time) (string, error) {
	form := url.Values{
		"stn":     {wrccID},
		"smon":    {fmt.Sprintf("%02d", start.Month())},
		"sday":    {fmt.Sprintf("%02d", start.Day())},
		"syea":    {strconv.Itoa(start.Year() % 100)},
		"emon":    {fmt.Sprintf("%02d", end.Month())},
		"eday":    {fmt.Sprintf("%02d", end.Day())},
		"eyea":    {strconv.Itoa(end.Year() % 100)},
		"units":   {"m"},
		"obs":     {"N"},
		"Ofor":    {"A"},
		"Datareq": {"A"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("wrcc request for %s: %w", wrccID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("wrcc API error for %s: status %d: %s", wrccID, resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read wrcc response for %s: %w", wrccID, err)
	}

	c.logger.Debug("wrcc fetch complete",
		"station", wrccID,
		"bytes", len(body),
		"duration", time.Since(started),
	)
	return string(body), nil
}
