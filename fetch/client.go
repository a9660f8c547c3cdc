package fetch

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/npillmayer/minihtml/stream"
	"golang.org/x/net/publicsuffix"
)

// Defaults for client options.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxRedirects = 10
	DefaultUserAgent    = "minihtml/1.0"
	DefaultMaxBodySize  = 16 << 20
)

// ErrHTTPStatus is returned for responses with a status other than 2xx.
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// ErrTooManyRedirects is returned if a request exceeds the maximum number
// of redirects.
var ErrTooManyRedirects = errors.New("too many redirects")

// ErrBodyTooLarge is returned if a response body exceeds the maximum size.
var ErrBodyTooLarge = errors.New("response body too large")

// Client is an HTTP client for HTML resources. A client may be used by
// multiple goroutines.
type Client struct {
	httpClient   *http.Client
	timeout      time.Duration
	maxRedirects int
	userAgent    string
	maxBody      int64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithMaxRedirects sets the maximum number of redirects to follow.
func WithMaxRedirects(n int) Option {
	return func(c *Client) {
		c.maxRedirects = n
	}
}

// WithMaxBodySize limits the size of response bodies, after decompression.
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		c.maxBody = n
	}
}

// WithHTTPClient makes the client use an existing http.Client. Timeout and
// redirect settings of hc take precedence over the options of this package.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		timeout:      DefaultTimeout,
		maxRedirects: DefaultMaxRedirects,
		userAgent:    DefaultUserAgent,
		maxBody:      DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient != nil {
		return c, nil
	}
	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create cookie jar: %w", err)
	}
	c.httpClient = &http.Client{
		Jar:     jar,
		Timeout: c.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > c.maxRedirects {
				return fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, c.maxRedirects)
			}
			tracer().Debugf("redirect to %s", req.URL)
			return nil
		},
	}
	return c, nil
}

// Response is a buffered HTTP response.
type Response struct {
	URL         *url.URL // final URL, after redirects
	StatusCode  int
	ContentType string
	Body        *stream.Buffer // positioned at the start
}

// Get requests a resource and reads the complete response body.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	tracer().Infof("GET %s: %s", rawURL, resp.Status)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s for %s", ErrHTTPStatus, resp.Status, rawURL)
	}
	var body io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("cannot decompress response: %w", err)
		}
		defer gz.Close()
		body = gz
	}
	size := 4096
	if resp.ContentLength > 0 && resp.ContentLength <= c.maxBody {
		size = int(resp.ContentLength)
	}
	buf := stream.NewBuffer(size)
	n, err := io.Copy(buf, io.LimitReader(body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("cannot read response body: %w", err)
	}
	if n > c.maxBody {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, c.maxBody)
	}
	buf.Seek(0, io.SeekStart)
	return &Response{
		URL:         resp.Request.URL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        buf,
	}, nil
}
