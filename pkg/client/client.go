// Package client fetches image listings from a running showcase API and keeps them for a few minutes.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"brand-showcase/pkg/cache"
	"brand-showcase/pkg/imageurl"
	"brand-showcase/pkg/models"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the image API
type APIError struct {
	Status  int
	Message string
	Body    map[string]any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("image api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("image api: status %d", e.Status)
}

// Client calls the image API, reusing listings and verified image URLs for cache.DefaultTTL
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *zap.Logger
	clock    cache.Clock
	listings *cache.TTLCache[*models.ImageListing]
	verified *cache.TTLCache[string]
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithClock drives cache expiry from clock
func WithClock(clock cache.Clock) Option {
	return func(c *Client) { c.clock = clock }
}

// WithLogger sets the client logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the API served at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zap.NewNop(),
		clock:   cache.SystemClock{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.listings = cache.New[*models.ImageListing](cache.DefaultTTL, c.clock)
	c.verified = cache.New[string](cache.DefaultTTL, c.clock)
	return c
}

// Images lists a folder, answering from cache when the same folder was fetched recently
func (c *Client) Images(ctx context.Context, folder string) (*models.ImageListing, error) {
	if listing, ok := c.listings.Get(folder); ok {
		c.logger.Debug("image listing cache hit", zap.String("folder", folder))
		return listing, nil
	}

	endpoint, err := url.JoinPath(c.baseURL, "api", "images")
	if err != nil {
		return nil, err
	}
	endpoint += "?" + url.Values{"folder": {folder}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch images for %s: %w", folder, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(resp)
	}

	var listing models.ImageListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode images for %s: %w", folder, err)
	}

	c.listings.Set(folder, &listing)
	return &listing, nil
}

// VerifyImage checks with a HEAD request that src exists and returns its encoded URL
func (c *Client) VerifyImage(ctx context.Context, src string) (string, error) {
	if u, ok := c.verified.Get(src); ok {
		return u, nil
	}

	encoded := imageurl.Encode(src)
	target := encoded
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.baseURL + "/" + strings.TrimLeft(target, "/")
	}
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	target += sep + "_t=" + strconv.FormatInt(c.clock.Now().UnixMilli(), 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("check image %s: %w", src, err)
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{Status: resp.StatusCode, Message: "Image non trouvée"}
	}

	c.verified.Set(src, encoded)
	return encoded, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(data) == 0 {
		return apiErr
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		apiErr.Message = strings.TrimSpace(string(data))
		return apiErr
	}
	apiErr.Body = body
	if msg, ok := body["error"].(string); ok {
		apiErr.Message = msg
	}
	return apiErr
}
