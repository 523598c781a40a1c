package e2etest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/tutorials/internal/errors"
)

type Client struct {
	client *http.Client
	url    string
}

// NewClient creates an HTTP client with a cookie jar that follows redirects like a browser.
func NewClient(url string) (*Client, error) {
	jar, err := newUnsafeCookieJar()
	if err != nil {
		return nil, errors.Wrap(err, "create unsafe cookie jar")
	}
	return &Client{
		client: &http.Client{Jar: jar}, //nolint:exhaustruct // defaults are fine for the rest
		url:    url,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = c.client.Do(req); err == nil {
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "context cancelled")
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL following redirects and returns the response.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// GetNoRedirect fetches a URL without following redirects so that the redirect response itself can be inspected.
// Cookies set by the response are still stored in the jar.
func (c *Client) GetNoRedirect(ctx context.Context, urlPath string, header http.Header) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
		return nil, errors.Wrap(err, "create request with context")
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	noRedirect := &http.Client{ //nolint:exhaustruct // defaults are fine for the rest
		Jar: c.client.Jar,
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	if resp, err = noRedirect.Do(req); err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// GetDoc fetches a URL following redirects and returns a goquery document of the final page together with the
// path the client ended up on.
func (c *Client) GetDoc(ctx context.Context, urlPath string) (*goquery.Document, string, error) {
	var (
		err  error
		resp *http.Response
		doc  *goquery.Document
	)
	if resp, err = c.Get(ctx, urlPath); err != nil {
		return nil, "", errors.Wrap(err, "client get")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if http.StatusOK != resp.StatusCode {
		return nil, "", errors.New("unexpected status code",
			slog.Int("status", resp.StatusCode), slog.String("path", urlPath))
	}
	if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
		return nil, "", errors.Wrap(err, "create document from reader")
	}
	return doc, resp.Request.URL.Path, nil
}

// newRequestWithContext creates a new HTTP request to the server that respects the given context.
func (c *Client) newRequestWithContext(
	ctx context.Context,
	method, urlPath string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	return req, nil
}

// Login submits the login form with userType and returns the document the client lands on together with its path.
func (c *Client) Login(ctx context.Context, userType string) (*goquery.Document, string, error) {
	values := neturl.Values{}
	values.Set("user_type", userType)
	doc, path, err := c.SubmitForm(ctx, "/login", "/login", values)
	if err != nil {
		return nil, "", errors.Wrap(err, "submit login form", slog.String("user_type", userType))
	}
	return doc, path, nil
}

// Logout visits /logout and returns the document the client lands on together with its path.
func (c *Client) Logout(ctx context.Context) (*goquery.Document, string, error) {
	doc, path, err := c.GetDoc(ctx, "/logout")
	if err != nil {
		return nil, "", errors.Wrap(err, "get logout")
	}
	return doc, path, nil
}

// Cookie returns the named cookie stored in the jar for the server URL.
func (c *Client) Cookie(name string) (*http.Cookie, bool) {
	u, err := neturl.Parse(c.url)
	if err != nil {
		return nil, false
	}
	for _, cookie := range c.client.Jar.Cookies(u) {
		if cookie.Name == name {
			return cookie, true
		}
	}
	return nil, false
}

// SetCookie stores a cookie for the server URL as if the browser had set it.
func (c *Client) SetCookie(cookie *http.Cookie) error {
	u, err := neturl.Parse(c.url)
	if err != nil {
		return errors.Wrap(err, "parse server URL")
	}
	c.client.Jar.SetCookies(u, []*http.Cookie{cookie})
	return nil
}

func (c *Client) extractCSRFToken(doc *goquery.Document, formActionURLPath string) (string, error) {
	formSelector := fmt.Sprintf("form[action='%s']", formActionURLPath)
	form := doc.Find(formSelector)
	csrfToken, ok := form.Find("input[name=csrf_token]").Attr("value")
	if !ok {
		return "", errors.New("csrf_token not found in form", slog.String("form", formSelector))
	}
	return csrfToken, nil
}

// SubmitForm submits a form at formURLPath with action formActionURLPath and returns the document the client
// lands on after following redirects together with its path.
func (c *Client) SubmitForm(
	ctx context.Context,
	formURLPath string,
	formActionURLPath string,
	formData neturl.Values,
) (*goquery.Document, string, error) {
	var (
		doc *goquery.Document
		err error
	)
	if doc, _, err = c.GetDoc(ctx, formURLPath); err != nil {
		return nil, "", errors.Wrap(err, "get document")
	}

	// Extract CSRF token from the form.
	var csrfToken string
	if csrfToken, err = c.extractCSRFToken(doc, formActionURLPath); err != nil {
		return nil, "", errors.Wrap(err, "extract CSRF token")
	}

	data := neturl.Values{}
	for key, values := range formData {
		data[key] = values
	}
	data.Set("csrf_token", csrfToken)

	var req *http.Request
	if req, err = c.newRequestWithContext(
		ctx, http.MethodPost, formActionURLPath, strings.NewReader(data.Encode()),
	); err != nil {
		return nil, "", errors.Wrap(err, "new request with context")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	var resp *http.Response
	if resp, err = c.client.Do(req); err != nil {
		return nil, "", errors.Wrap(err, "do request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if http.StatusOK != resp.StatusCode {
		return nil, "", errors.New("unexpected status code", slog.Int("status", resp.StatusCode))
	}

	if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
		return nil, "", errors.Wrap(err, "create document from reader")
	}
	return doc, resp.Request.URL.Path, nil
}
