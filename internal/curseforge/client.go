// Package curseforge talks to the CurseForge website: it builds page and
// download URLs, fetches pages and hands them to the parser.
package curseforge

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"mdl/internal/config"
	"mdl/internal/models"
	"mdl/internal/parser"
)

// Client fetches search and file listing pages from one site
type Client struct {
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client for the site described by cfg.
// A nil httpClient uses http.DefaultClient and a nil log discards output.
func NewClient(cfg config.Site, httpClient *http.Client, log *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", cfg.BaseURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		baseURL:    base,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		log:        log,
	}, nil
}

// SearchURL returns the search page URL for query
func (c *Client) SearchURL(query string) string {
	u := c.endpoint("search")
	u.RawQuery = url.Values{"search": {query}}.Encode()
	return u.String()
}

// FilesURL returns the files page URL of the project slug
func (c *Client) FilesURL(slug string) string {
	return c.endpoint("projects", slug, "files").String()
}

// DownloadURL returns the download endpoint of file id in project slug:
// {site}/projects/{slug}/files/{id}/download
func (c *Client) DownloadURL(slug string, id int) string {
	return c.endpoint("projects", slug, "files", strconv.Itoa(id), "download").String()
}

// endpoint joins path segments onto the base URL, escaping each segment
func (c *Client) endpoint(segments ...string) *url.URL {
	u := *c.baseURL
	raw := u.EscapedPath()
	for _, s := range segments {
		u.Path += "/" + s
		raw += "/" + url.PathEscape(s)
	}
	u.RawPath = raw
	u.RawQuery = ""
	u.Fragment = ""
	return &u
}

// Search returns the mods matching query in the order the site lists them
func (c *Client) Search(ctx context.Context, query string) ([]models.ModSummary, error) {
	target := c.SearchURL(query)

	var mods []models.ModSummary
	err := c.fetch(ctx, target, func(body io.Reader) error {
		var err error
		mods, err = parser.ParseSearchResults(body)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	c.log.Info("search completed", zap.String("query", query), zap.Int("results", len(mods)))
	return mods, nil
}

// Files returns the files of project slug in page order, each with its download link
func (c *Client) Files(ctx context.Context, slug string) ([]models.FileRecord, error) {
	target := c.FilesURL(slug)
	link := func(id int) string {
		return c.DownloadURL(slug, id)
	}

	var files []models.FileRecord
	err := c.fetch(ctx, target, func(body io.Reader) error {
		var err error
		files, err = parser.ParseFileList(body, link)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list files of %q: %w", slug, err)
	}

	c.log.Info("file list completed", zap.String("slug", slug), zap.Int("files", len(files)))
	return files, nil
}

// File returns the record of file id in project slug
func (c *Client) File(ctx context.Context, slug string, id int) (models.FileRecord, error) {
	files, err := c.Files(ctx, slug)
	if err != nil {
		return models.FileRecord{}, err
	}
	for _, f := range files {
		if f.ID == id {
			return f, nil
		}
	}
	return models.FileRecord{}, fmt.Errorf("%w: file %d in project %q", models.ErrNotFound, id, slug)
}

// fetch performs a GET request and passes the body of a successful response to parse
func (c *Client) fetch(ctx context.Context, target string, parse func(io.Reader) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", models.ErrNetwork, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.log.Debug("fetching page", zap.String("url", target))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.log.Debug("page response", zap.String("url", target), zap.Int("status", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: GET %s: %s", models.ErrNetwork, target, resp.Status)
	}

	return parse(resp.Body)
}
