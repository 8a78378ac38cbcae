// Package steamgrid is an HTTP client for the SteamGridDB v2 API. It resolves
// game names to grid IDs and downloads 600x900 cover artwork.
package steamgrid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/secondary"
)

// DefaultBaseURL is the production SteamGridDB API endpoint.
const DefaultBaseURL = "https://www.steamgriddb.com/api/v2"

// Client implements secondary.ArtworkClient against SteamGridDB.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Tests point this at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a SteamGridDB client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

type gridsResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		ID  int64  `json:"id"`
		URL string `json:"url"`
	} `json:"data"`
}

// SearchByName resolves a display name to a grid ID via the autocomplete
// endpoint. Only an exact name match counts; a near miss is treated the same
// as no result and returns ErrNotFound.
func (c *Client) SearchByName(ctx context.Context, name string) (int64, error) {
	endpoint := fmt.Sprintf("%s/search/autocomplete/%s", c.baseURL, url.PathEscape(name))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return 0, err
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("failed to decode search response: %w", err)
	}

	for _, entry := range result.Data {
		if entry.Name == name {
			return entry.ID, nil
		}
	}

	return 0, fmt.Errorf("no exact match for '%s': %w", name, library.ErrNotFound)
}

// FetchImage downloads cover artwork for a grid ID. It asks for static
// 600x900 PNG grids with NSFW and humor content filtered out, then downloads
// the first entry with a non-empty URL. No usable entry means
// ErrArtworkMissing.
func (c *Client) FetchImage(ctx context.Context, gridID int64) ([]byte, error) {
	query := url.Values{
		"dimensions": {"600x900"},
		"mimes":      {"image/png"},
		"types":      {"static"},
		"nsfw":       {"false"},
		"humor":      {"false"},
	}
	endpoint := fmt.Sprintf("%s/grids/game/%d?%s", c.baseURL, gridID, query.Encode())

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var result gridsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode grids response: %w", err)
	}

	for _, grid := range result.Data {
		if grid.URL == "" {
			continue
		}
		return c.download(ctx, grid.URL)
	}

	return nil, fmt.Errorf("no artwork for grid %d: %w", gridID, library.ErrArtworkMissing)
}

// get performs an authenticated GET against the API.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", library.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %w", resp.StatusCode, library.ErrUpstreamUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}

// download fetches raw image bytes from an artwork URL. The image host does
// not require authentication.
func (c *Client) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image download failed: %w", library.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected image status %d: %w", resp.StatusCode, library.ErrUpstreamUnavailable)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	return data, nil
}

// Ensure Client implements the interface.
var _ secondary.ArtworkClient = (*Client)(nil)
