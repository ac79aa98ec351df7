package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenPair is the credential set issued by the Kakao OAuth token endpoint
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Auth drives the Kakao OAuth consent and code exchange flow. The pipeline
// itself never touches it; only the HTTP layer does, and the resulting token
// lands in whatever store backs the CredentialProvider.
type Auth struct {
	authURL  string
	tokenURL string
	clientID string
	client   *http.Client
}

// NewAuth creates an OAuth helper for the given Kakao application
func NewAuth(authURL, tokenURL, clientID string, timeout time.Duration) *Auth {
	return &Auth{
		authURL:  authURL,
		tokenURL: tokenURL,
		clientID: clientID,
		client:   &http.Client{Timeout: timeout},
	}
}

// AuthorizeURL returns the consent page URL sending the user back to redirectURI
func (a *Auth) AuthorizeURL(redirectURI string) string {
	q := url.Values{
		"client_id":     []string{a.clientID},
		"redirect_uri":  []string{redirectURI},
		"response_type": []string{"code"},
		"scope":         []string{"talk_message"},
	}
	return a.authURL + "?" + q.Encode()
}

// ExchangeCode trades an authorization code for a token pair
func (a *Auth) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenPair, error) {
	form := url.Values{
		"grant_type":   []string{"authorization_code"},
		"client_id":    []string{a.clientID},
		"redirect_uri": []string{redirectURI},
		"code":         []string{code},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var pair TokenPair
	if err := json.Unmarshal(body, &pair); err != nil {
		return nil, fmt.Errorf("parse token response: %w", err)
	}
	if pair.AccessToken == "" {
		return nil, fmt.Errorf("token response has no access_token")
	}
	return &pair, nil
}
