package moves

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix = "moves"

	DefaultAPIURL   = "https://api.moves-app.com/api/1.1"
	DefaultOAuthURL = "https://api.moves-app.com/oauth/v1"
	AppAuthURL      = "moves://app/authorize"

	DefaultScope = "activity location"

	defaultTimeout = 15 * time.Second
)

var (
	ErrNoAccessToken = fmt.Errorf("no access token")
	ErrNotModified   = fmt.Errorf("not modified")
)

// APIError - an error status or an error body returned by Moves
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("moves api error with status code (%d): %s", e.StatusCode, e.Message)
}

// ResponseInfo - headers of the last api response
type ResponseInfo struct {
	ETag            string
	HourLimit       string
	HourRemaining   string
	MinuteLimit     string
	MinuteRemaining string
	StatusCode      int
}

// Config - settings of a Moves client
type Config struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	APIURL       string
	OAuthURL     string
	HTTPClient   *http.Client
}

// Client - OAuth client of the Moves API. A token given to a call
// overrides the default access token of the client.
type Client struct {
	clientID     string
	clientSecret string
	accessToken  string
	apiURL       string
	oauthURL     string
	httpClient   *http.Client

	mu   sync.RWMutex
	last *ResponseInfo
}

// New - new Moves client
func New(c Config) *Client {
	apiURL := DefaultAPIURL
	if c.APIURL != "" {
		apiURL = strings.TrimRight(c.APIURL, "/")
	}

	oauthURL := DefaultOAuthURL
	if c.OAuthURL != "" {
		oauthURL = strings.TrimRight(c.OAuthURL, "/")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		clientID:     c.ClientID,
		clientSecret: c.ClientSecret,
		accessToken:  c.AccessToken,
		apiURL:       apiURL,
		oauthURL:     oauthURL,
		httpClient:   httpClient,
	}
}

// LastResponse returns the headers of the last api call, nil before any call
func (c *Client) LastResponse() *ResponseInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.last == nil {
		return nil
	}
	info := *c.last
	return &info
}

// Get calls an api endpoint with GET and decodes the json response into out
func (c *Client) Get(ctx context.Context, accessToken, path string, params url.Values, out interface{}) error {
	return c.call(ctx, http.MethodGet, accessToken, path, params, "", out)
}

// Post calls an api endpoint with a form body
func (c *Client) Post(ctx context.Context, accessToken, path string, data url.Values, out interface{}) error {
	return c.call(ctx, http.MethodPost, accessToken, path, nil, data.Encode(), out)
}

func (c *Client) call(ctx context.Context, method, accessToken, path string, params url.Values, body string, out interface{}) error {
	if accessToken == "" {
		accessToken = c.accessToken
	}
	if accessToken == "" {
		return ErrNoAccessToken
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}

	etag := query.Get("etag")
	query.Del("etag")

	u := fmt.Sprintf("%s/%s", c.apiURL, strings.TrimLeft(path, "/"))
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"method": method,
		"path":   path,
	}).Debug("call moves api")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"path":   path,
			"error":  err,
		}).Error("call moves api")
		return err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(data),
		}
	}

	if resp.StatusCode == http.StatusNotModified {
		return ErrNotModified
	}

	c.setLast(resp)

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (c *Client) setLast(resp *http.Response) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.last = &ResponseInfo{
		ETag:            resp.Header.Get("ETag"),
		HourLimit:       resp.Header.Get("X-RateLimit-HourLimit"),
		HourRemaining:   resp.Header.Get("X-RateLimit-HourRemaining"),
		MinuteLimit:     resp.Header.Get("X-RateLimit-MinuteLimit"),
		MinuteRemaining: resp.Header.Get("X-RateLimit-MinuteRemaining"),
		StatusCode:      resp.StatusCode,
	}
}
