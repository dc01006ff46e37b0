// Package ddragon talks to Riot's Data Dragon CDN.
package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const DefaultBaseURL = "https://ddragon.leagueoflegends.com"

type VersionsResponse []string

type ChampionsResponse struct {
	Type    string              `json:"type"`
	Format  string              `json:"format"`
	Version string              `json:"version"`
	Data    map[string]Champion `json:"data"`
}

type Champion struct {
	ID    string   `json:"id"`  // e.g., "Aatrox"
	Key   string   `json:"key"` // e.g., "266"
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
	Image struct {
		Full string `json:"full"`
	} `json:"image"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// LatestVersion returns the first entry of the published version list.
func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	var versions VersionsResponse
	if err := c.getJSON(ctx, c.baseURL+"/api/versions.json", &versions); err != nil {
		return "", fmt.Errorf("failed to get versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("no versions available")
	}
	return versions[0], nil
}

// ChampionsRaw returns champion.json for version as published.
func (c *Client) ChampionsRaw(ctx context.Context, version string) ([]byte, error) {
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", c.baseURL, version)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch champions: %w", err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read champions: %w", err)
	}
	return raw, nil
}

func (c *Client) IconURL(version, filename string) string {
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s", c.baseURL, version, filename)
}

func (c *Client) SplashURL(championID string) string {
	return fmt.Sprintf("%s/cdn/img/champion/splash/%s_0.jpg", c.baseURL, championID)
}

// Download writes url to path unless path already exists. It reports
// whether a file was written. Partial downloads never appear at path.
func (c *Client) Download(ctx context.Context, url, path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}

	body, err := c.get(ctx, url)
	if err != nil {
		return false, err
	}
	defer body.Close()

	tmp, err := os.CreateTemp(filepath.Dir(path), ".download-*")
	if err != nil {
		return false, err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return false, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	return json.NewDecoder(body).Decode(v)
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}
	return resp.Body, nil
}
