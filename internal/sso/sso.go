// Package sso implements the authorization-code login flow against the
// institutional identity provider.
package sso

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/michaeltheo/placements-backend/config"
)

// Profile the identity attributes the provider returns for a logged-in
// user. Field names follow the provider's directory schema: cn is the full
// common name, sn the surname.
type Profile struct {
	AM              string `json:"am"`
	CN              string `json:"cn"`
	SN              string `json:"sn"`
	RegYear         string `json:"regyear"`
	TelephoneNumber string `json:"telephoneNumber"`
	Email           string `json:"mail"`
	Affiliation     string `json:"affiliation"`
}

// GivenName derives the first name by stripping the surname off the common
// name. Providers emit cn as either "First Last" or "Last First".
func (p *Profile) GivenName() string {
	cn := strings.TrimSpace(p.CN)
	sn := strings.TrimSpace(p.SN)
	if sn == "" {
		return cn
	}
	if trimmed := strings.TrimSpace(strings.TrimSuffix(cn, sn)); trimmed != cn && trimmed != "" {
		return trimmed
	}
	if trimmed := strings.TrimSpace(strings.TrimPrefix(cn, sn)); trimmed != cn && trimmed != "" {
		return trimmed
	}
	return cn
}

// Client talks to the identity provider.
type Client struct {
	cfg    *config.SSOConfig
	client *http.Client
}

// NewClient creates an SSO client.
func NewClient(cfg *config.SSOConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthorizeURL builds the provider redirect for starting a login with the
// given state value.
func (c *Client) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", c.cfg.ClientID)
	q.Set("redirect_uri", c.cfg.RedirectURI)
	q.Set("scope", c.cfg.Scope)
	q.Set("state", state)
	return c.cfg.AuthorizeURL + "?" + q.Encode()
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// ExchangeCode trades an authorization code for a provider access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("redirect_uri", c.cfg.RedirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("exchanging authorization code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	return tr.AccessToken, nil
}

// FetchProfile retrieves the identity attributes behind an access token.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.ProfileURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile endpoint returned status %d", resp.StatusCode)
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}

	return &p, nil
}
