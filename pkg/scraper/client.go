package scraper

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/publicsuffix"
)

const (
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/85.0.4183.83 Safari/537.36"
	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8"
)

var (
	baseURL  = "https://itscapps.ust.hk/zoom/upcoming.php"
	loginURL = "https://cas.ust.hk/cas/login?service=" + url.QueryEscape(baseURL)
)

// Client is a browser-like HTTP session. Cookies set by one response are
// sent with every following request made through the same Client.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new session with an empty cookie jar
func NewClient() *Client {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	return &Client{
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}
}

// Get fetches the given URL and returns the response body
func (c *Client) Get(rawURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &NetworkError{URL: rawURL, Err: err}
	}

	return c.do(req)
}

// PostForm submits form URL-encoded to rawURL, the way the CAS login page does.
//
// CAS answers a rejected login with 401 and the login form again, so that
// status is returned as a regular body for the caller to inspect.
func (c *Client) PostForm(rawURL string, form url.Values) (string, error) {
	req, err := http.NewRequest(http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &NetworkError{URL: rawURL, Err: err}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", loginURL)

	return c.do(req, http.StatusUnauthorized)
}

func (c *Client) do(req *http.Request, alsoAccept ...int) (string, error) {
	rawURL := req.URL.String()

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", req.Method).
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Msg("http request")

	if !acceptedStatus(resp.StatusCode, alsoAccept) {
		return "", &NetworkError{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{URL: rawURL, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	return string(body), nil
}

func acceptedStatus(status int, extra []int) bool {
	if status >= 200 && status < 300 {
		return true
	}
	for _, s := range extra {
		if status == s {
			return true
		}
	}
	return false
}
