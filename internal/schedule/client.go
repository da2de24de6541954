package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Source loads schedule resources. It is implemented by *Client (HTTP) and
// *FSSource (directory or in-memory filesystem).
type Source interface {
	LoadWeek(ctx context.Context, key WeekKey) (*Document, error)
	LoadConfig(ctx context.Context, fresh bool) (RemoteConfig, error)
	StoreConfig(ctx context.Context, cfg RemoteConfig) error
}

var (
	_ Source = (*Client)(nil)
	_ Source = (*FSSource)(nil)
)

// Client reads the static schedule site over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	now       func() time.Time
}

const (
	defaultUserAgent = "wodview/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client rooted at baseURL. The path of baseURL is kept so
// sites hosted below the domain root resolve correctly.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		now:       time.Now,
	}, nil
}

// LoadWeek fetches and decodes a week document.
func (c *Client) LoadWeek(ctx context.Context, key WeekKey) (*Document, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var doc Document
	if err := c.get(ctx, &url.URL{Path: key.Path()}, false, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadConfig fetches config.json. When fresh is set the request bypasses
// caches with a timestamp query parameter.
func (c *Client) LoadConfig(ctx context.Context, fresh bool) (RemoteConfig, error) {
	if c == nil {
		return RemoteConfig{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: ConfigFile}
	if fresh {
		rel.RawQuery = url.Values{"t": {strconv.FormatInt(c.now().UnixMilli(), 10)}}.Encode()
	}
	var cfg RemoteConfig
	if err := c.get(ctx, rel, fresh, &cfg); err != nil {
		return RemoteConfig{}, err
	}
	return cfg, nil
}

// StoreConfig always fails: a static site has no write endpoint.
func (c *Client) StoreConfig(context.Context, RemoteConfig) error {
	return ErrReadOnly
}

func (c *Client) get(ctx context.Context, rel *url.URL, noCache bool, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if noCache {
		req.Header.Set("Cache-Control", "no-cache")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Message: err.Error(), Path: rel.Path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{
			Status:  resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
			Path:    rel.Path,
		}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Status: resp.StatusCode, Message: err.Error(), Path: rel.Path, Err: err}
	}
	return decode(rel.Path, body, dest)
}

func decode(path string, body []byte, dest any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return &ParseError{Path: path, Err: io.ErrUnexpectedEOF}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("base url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", raw)
	}
	// ResolveReference treats the last path segment as a file unless the
	// path ends with a slash.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
