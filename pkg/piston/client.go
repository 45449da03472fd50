package piston

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	defaultManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"
	httpClientTimeout  = 30 * time.Second
	defaultUserAgent   = "mojmap/0.1.0"
)

// Client talks to Mojang's piston-meta service: the version manifest, the
// per-version detail documents, and the client mappings they point at.
type Client struct {
	httpClient  *http.Client
	userAgent   string
	manifestURL string
}

// NewClient creates a Client against the official piston-meta endpoint.
// The MOJMAP_MANIFEST_URL environment variable overrides the manifest
// location, mainly for tests and mirrors.
func NewClient() *Client {
	manifestURL := os.Getenv("MOJMAP_MANIFEST_URL")
	if strings.TrimSpace(manifestURL) == "" {
		manifestURL = defaultManifestURL
	}

	return &Client{
		httpClient:  &http.Client{Timeout: httpClientTimeout},
		userAgent:   defaultUserAgent,
		manifestURL: manifestURL,
	}
}

// versionDetail is the subset of the per-version document we need.
type versionDetail struct {
	Downloads struct {
		ClientMappings download `json:"client_mappings"`
	} `json:"downloads"`
}

// download describes one downloadable artifact of a version.
type download struct {
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
}

// Manifest fetches and decodes the version manifest.
func (c *Client) Manifest(ctx context.Context) (*Manifest, error) {
	log.WithField("url", c.manifestURL).Debug("fetching version manifest")

	data, err := c.fetch(ctx, c.manifestURL)
	if err != nil {
		return nil, fmt.Errorf("fetching version manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("decoding version manifest: %w", err)
	}

	log.WithField("versions", len(manifest.Versions)).Debug("fetched version manifest")
	return &manifest, nil
}

// ClientMappings downloads the ProGuard client mappings text for the given
// version id. It resolves the id through the manifest, follows the version's
// detail URL, and fetches the client_mappings artifact.
func (c *Client) ClientMappings(ctx context.Context, versionID string) (string, error) {
	manifest, err := c.Manifest(ctx)
	if err != nil {
		return "", err
	}

	version, ok := manifest.Version(versionID)
	if !ok {
		return "", fmt.Errorf("version %s not found in manifest", versionID)
	}

	detail, err := c.versionDetail(ctx, version.URL)
	if err != nil {
		return "", fmt.Errorf("fetching details for %s: %w", versionID, err)
	}

	mappingsURL := detail.Downloads.ClientMappings.URL
	if mappingsURL == "" {
		return "", fmt.Errorf("version %s has no client mappings download", versionID)
	}

	log.WithFields(log.Fields{
		"version": versionID,
		"url":     mappingsURL,
	}).Info("downloading client mappings")

	data, err := c.fetch(ctx, mappingsURL)
	if err != nil {
		return "", fmt.Errorf("downloading mappings for %s: %w", versionID, err)
	}

	log.WithField("bytes", len(data)).Info("mappings download complete")
	return string(data), nil
}

// versionDetail fetches and decodes a version's detail document.
func (c *Client) versionDetail(ctx context.Context, url string) (*versionDetail, error) {
	data, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	var detail versionDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, fmt.Errorf("decoding version details: %w", err)
	}
	return &detail, nil
}

// fetch performs a single HTTP GET for the given URL.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body from %s: %w", url, err)
	}

	return data, nil
}
