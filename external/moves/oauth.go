package moves

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	GrantAuthorizationCode = "authorization_code"
	GrantRefreshToken      = "refresh_token"
)

// TokenRequest - parameters of the access token endpoint
type TokenRequest struct {
	GrantType    string
	Code         string
	RefreshToken string
	RedirectURI  string
}

// Token - an access token granted by Moves
type Token struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	UserID       int64  `json:"user_id"`
}

// Expiry returns the time the token expires, counted from now
func (t Token) Expiry(now time.Time) time.Time {
	return now.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// TokenInfo - validation result of an access token
type TokenInfo struct {
	ClientID  string `json:"client_id"`
	UserID    int64  `json:"user_id"`
	ExpiresIn int64  `json:"expires_in"`
	Scope     string `json:"scope"`
}

type oauthError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// BuildOAuthURL returns the url a user visits to grant access. The app flow
// opens the Moves app directly and does not take a response type.
func (c *Client) BuildOAuthURL(redirectURI string, useApp bool, scope string) string {
	if scope == "" {
		scope = DefaultScope
	}

	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("scope", scope)
	if !useApp {
		params.Set("response_type", "code")
	}
	if redirectURI != "" {
		params.Set("redirect_uri", redirectURI)
	}

	// Moves does not accept + for spaces
	encoded := strings.Replace(params.Encode(), "+", "%20", -1)

	authURL := c.oauthURL + "/authorize"
	if useApp {
		authURL = AppAuthURL
	}

	return fmt.Sprintf("%s?%s", authURL, encoded)
}

// GetOAuthToken exchanges an authorization code or a refresh token for an access token
func (c *Client) GetOAuthToken(ctx context.Context, r TokenRequest) (*Token, error) {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("client_secret", c.clientSecret)
	params.Set("grant_type", r.GrantType)

	switch r.GrantType {
	case GrantAuthorizationCode:
		params.Set("code", r.Code)
	case GrantRefreshToken:
		params.Set("refresh_token", r.RefreshToken)
	default:
		return nil, fmt.Errorf("unsupported grant type: %s", r.GrantType)
	}

	if r.RedirectURI != "" {
		params.Set("redirect_uri", r.RedirectURI)
	}

	var token Token
	if err := c.oauthCall(ctx, http.MethodPost, "access_token", params, &token); err != nil {
		return nil, err
	}

	if token.AccessToken == "" {
		return nil, &APIError{StatusCode: http.StatusOK, Message: "empty access token"}
	}

	return &token, nil
}

// TokenInfo validates an access token
func (c *Client) TokenInfo(ctx context.Context, accessToken string) (*TokenInfo, error) {
	params := url.Values{}
	params.Set("access_token", accessToken)

	var info TokenInfo
	if err := c.oauthCall(ctx, http.MethodGet, "tokeninfo", params, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

func (c *Client) oauthCall(ctx context.Context, method, path string, params url.Values, out interface{}) error {
	u := fmt.Sprintf("%s/%s?%s", c.oauthURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"path":   path,
			"error":  err,
		}).Error("call moves oauth")
		return err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var e oauthError
	if err := json.Unmarshal(data, &e); err == nil && e.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("<%s>: %s", e.Error, e.ErrorDescription),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(data),
		}
	}

	return json.Unmarshal(data, out)
}
