// Package placeholder is a client for a JSONPlaceholder compatible REST API serving posts and photos.
package placeholder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/myrjola/tutorials/internal/errors"
	"github.com/myrjola/tutorials/internal/models"
)

// DefaultBaseURL is the public JSONPlaceholder service.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

var ErrUnexpectedStatus = errors.NewSentinel("unexpected upstream status")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for baseURL. Every request is limited by timeout in addition to the caller's context.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout}, //nolint:exhaustruct // defaults are fine for the rest
	}
}

// Posts fetches all posts.
func (c *Client) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.getJSON(ctx, "/posts", &posts); err != nil {
		return nil, errors.Wrap(err, "get posts")
	}
	return posts, nil
}

// Photos fetches all photos.
func (c *Client) Photos(ctx context.Context) ([]models.Photo, error) {
	var photos []models.Photo
	if err := c.getJSON(ctx, "/photos", &photos); err != nil {
		return nil, errors.Wrap(err, "get photos")
	}
	return photos, nil
}

func (c *Client) getJSON(ctx context.Context, urlPath string, v any) error {
	var (
		err  error
		req  *http.Request
		resp *http.Response
		url  = c.baseURL + urlPath
	)
	if req, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil); err != nil {
		return errors.Wrap(err, "create request", slog.String("url", url))
	}
	req.Header.Set("Accept", "application/json")
	if resp, err = c.httpClient.Do(req); err != nil {
		return errors.Wrap(err, "do request", slog.String("url", url))
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Wrap(ErrUnexpectedStatus, "check status",
			slog.String("url", url), slog.Int("status", resp.StatusCode))
	}
	if err = json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrap(err, "decode JSON", slog.String("url", url))
	}
	return nil
}
