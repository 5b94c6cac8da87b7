package pylon

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/usepylon/pylon-cli/internal/utils/api"
)

const (
	maxRetries = 3
)

// Client is a Pylon client
type Client interface {
	Get(path string, query map[string]string) (Response, error)
	Me() (Organization, error)
}

// KeyProvider resolves the API key used to authenticate requests
type KeyProvider interface {
	APIKey() (string, error)
}

// ClientOptions are options to configure a Pylon client
type ClientOptions struct {
	BaseURL   string
	UserAgent string

	// Logger receives the client's retry diagnostics, discarded when nil
	Logger *log.Logger
}

// NewClient creates a new Pylon client authenticated with the provided API key
func NewClient(options ClientOptions, apiKey string) Client {
	return NewAuthClient(options, staticKey(apiKey))
}

// NewAuthClient creates a new Pylon client which resolves its API key
// from the provided KeyProvider once a request is made
func NewAuthClient(options ClientOptions, keys KeyProvider) Client {
	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	logger := options.Logger
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}

	return &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userAgent:  options.UserAgent,
		keys:       keys,
		httpClient: &http.Client{},
		logger:     logger,
		sleep:      time.Sleep,
	}
}

type client struct {
	baseURL    string
	userAgent  string
	keys       KeyProvider
	httpClient *http.Client
	logger     *log.Logger
	sleep      func(time.Duration)
}

// Get issues an authenticated GET request to the provided path
// Rate limited requests and transport failures are retried with a backoff
func (c *client) Get(path string, query map[string]string) (Response, error) {
	apiKey, err := c.keys.APIKey()
	if err != nil {
		return Response{}, err
	}

	req, err := c.newRequest(path, query, apiKey)
	if err != nil {
		return Response{}, err
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		res, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.retry(path, err, attempt)
			continue
		}

		if res.StatusCode == http.StatusTooManyRequests {
			discard(res)
			if attempt < maxRetries {
				wait := retryAfter(res.Header.Get(api.HeaderRetryAfter), attempt)
				c.logger.Printf("GET %s was rate limited (retrying in %s)", path, wait)
				c.sleep(wait)
				continue
			}
			return Response{}, APIError{http.StatusTooManyRequests, msgRateLimited}
		}

		if res.StatusCode < 200 || res.StatusCode > 299 {
			defer res.Body.Close()
			return Response{}, parseResponseError(path, res)
		}

		body, err := readBody(res)
		if err != nil {
			lastErr = fmt.Errorf("failed to read response from %s: %w", path, err)
			c.retry(path, err, attempt)
			continue
		}
		return normalizeResponse(path, body)
	}

	return Response{}, RequestError{Attempts: maxRetries + 1, Err: lastErr}
}

// retry waits out the backoff of a failed attempt, unless it was the last one
func (c *client) retry(path string, err error, attempt int) {
	if attempt >= maxRetries {
		return
	}
	wait := backoff(attempt)
	c.logger.Printf("GET %s failed: %s (retrying in %s)", path, err, wait)
	c.sleep(wait)
}

func (c *client) newRequest(path string, query map[string]string, apiKey string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	api.IncludeQuery(req, query)

	req.Header.Set(api.HeaderAuthorization, api.BearerToken(apiKey))
	req.Header.Set(api.HeaderAccept, api.MediaTypeJSON)
	if c.userAgent != "" {
		req.Header.Set(api.HeaderUserAgent, c.userAgent)
	}
	return req, nil
}

func backoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// retryAfter honors a Retry-After header expressed in seconds
// and falls back to the exponential backoff otherwise
func retryAfter(header string, attempt int) time.Duration {
	if seconds, err := strconv.Atoi(strings.TrimSpace(header)); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	return backoff(attempt)
}

func readBody(res *http.Response) ([]byte, error) {
	defer res.Body.Close()
	return ioutil.ReadAll(res.Body)
}

func discard(res *http.Response) {
	io.Copy(ioutil.Discard, res.Body) //nolint: errcheck
	res.Body.Close()
}

type staticKey string

func (k staticKey) APIKey() (string, error) { return string(k), nil }
