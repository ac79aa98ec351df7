package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajoubot/menubot/pkg/notify"
)

func TestServer_OAuthAuthorize(t *testing.T) {
	f := newFixture(t)

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := client.Get(f.ts.URL + "/oauth/authorize")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "kauth.example.com")

	require.Len(t, f.auth.AuthorizeURLCalls(), 1)
	assert.Equal(t, "http://menubot.example.com/oauth/callback", f.auth.AuthorizeURLCalls()[0].RedirectURI)
}

func TestServer_OAuthCallback(t *testing.T) {
	t.Run("code exchanged and token stored", func(t *testing.T) {
		f := newFixture(t)
		f.auth.ExchangeCodeFunc = func(_ context.Context, code, _ string) (*notify.TokenPair, error) {
			assert.Equal(t, "auth-code-123", code)
			return &notify.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil
		}

		resp, body := f.get(t, "/oauth/callback?code=auth-code-123")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "authorized")

		require.Len(t, f.tokens.SaveCalls(), 1)
		call := f.tokens.SaveCalls()[0]
		assert.Equal(t, "kakao", call.Provider)
		assert.Equal(t, "access-token", call.AccessToken)
		assert.Equal(t, "refresh-token", call.RefreshToken)
	})

	t.Run("missing code rejected", func(t *testing.T) {
		f := newFixture(t)

		resp, body := f.get(t, "/oauth/callback")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "missing authorization code")
		assert.Empty(t, f.tokens.SaveCalls())
	})

	t.Run("exchange failure reported", func(t *testing.T) {
		f := newFixture(t)
		f.auth.ExchangeCodeFunc = func(context.Context, string, string) (*notify.TokenPair, error) {
			return nil, fmt.Errorf("kauth rejected the code")
		}

		resp, _ := f.get(t, "/oauth/callback?code=bad-code")
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Empty(t, f.tokens.SaveCalls())
	})

	t.Run("store failure reported", func(t *testing.T) {
		f := newFixture(t)
		f.auth.ExchangeCodeFunc = func(context.Context, string, string) (*notify.TokenPair, error) {
			return &notify.TokenPair{AccessToken: "access-token"}, nil
		}
		f.tokens.SaveFunc = func(context.Context, string, string, string) error {
			return fmt.Errorf("db down")
		}

		resp, _ := f.get(t, "/oauth/callback?code=auth-code")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}
