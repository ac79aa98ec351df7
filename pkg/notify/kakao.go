package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// ErrNoCredential is returned by Send when no access token has been issued
// yet. Callers treat it as a deliberate skip, not a failure.
var ErrNoCredential = errors.New("no delivery credential")

// CredentialProvider supplies the bearer token for the delivery channel at
// dispatch time. Implementations own where the token lives and how it is
// refreshed; an empty token means delivery is not configured yet.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// DeliveryError reports a failed messaging API call
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("kakao send failed with status %d: %s", e.StatusCode, e.Body)
}

// Client pushes digest messages through the Kakao self-memo messaging API
type Client struct {
	sendURL string
	webURL  string
	creds   CredentialProvider
	client  *http.Client
}

// NewClient creates a delivery client. webURL is attached to every message
// as the link target, normally the upstream menu page.
func NewClient(sendURL, webURL string, creds CredentialProvider, timeout time.Duration) *Client {
	return &Client{
		sendURL: sendURL,
		webURL:  webURL,
		creds:   creds,
		client:  &http.Client{Timeout: timeout},
	}
}

// templateObject is the Kakao message template payload
type templateObject struct {
	ObjectType string       `json:"object_type"`
	Text       string       `json:"text"`
	Link       templateLink `json:"link"`
}

type templateLink struct {
	WebURL string `json:"web_url"`
}

// Send posts the digest as a text template message. The credential is read
// at dispatch time; a missing one yields ErrNoCredential. Transient API
// failures are retried with backoff, the last error is returned as-is so
// callers can inspect the status.
func (c *Client) Send(ctx context.Context, text string) error {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("read delivery credential: %w", err)
	}
	if token == "" {
		return ErrNoCredential
	}

	payload, err := json.Marshal(templateObject{
		ObjectType: "text",
		Text:       text,
		Link:       templateLink{WebURL: c.webURL},
	})
	if err != nil {
		return fmt.Errorf("marshal message template: %w", err)
	}
	form := url.Values{"template_object": []string{string(payload)}}

	retrier := repeater.NewBackoff(3, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		return c.post(ctx, token, form)
	})
}

func (c *Client) post(ctx context.Context, token string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sendURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post message: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode != http.StatusOK {
		return &DeliveryError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return nil
}
