package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenFunc adapts a function to the CredentialProvider interface
type tokenFunc func(ctx context.Context) (string, error)

func (f tokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

func staticToken(token string) CredentialProvider {
	return tokenFunc(func(context.Context) (string, error) { return token, nil })
}

func TestClient_Send(t *testing.T) {
	t.Run("successful delivery", func(t *testing.T) {
		var gotAuth, gotContentType string
		var gotTemplate map[string]interface{}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, r.ParseForm())
			require.NoError(t, json.Unmarshal([]byte(r.PostForm.Get("template_object")), &gotTemplate))
			w.Write([]byte(`{"result_code":0}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "https://www.ajou.ac.kr/kr/life/food.do", staticToken("test-token"), 5*time.Second)
		err := client.Send(context.Background(), "오늘의 메뉴")
		require.NoError(t, err)

		assert.Equal(t, "Bearer test-token", gotAuth)
		assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
		assert.Equal(t, "text", gotTemplate["object_type"])
		assert.Equal(t, "오늘의 메뉴", gotTemplate["text"])
		link, ok := gotTemplate["link"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "https://www.ajou.ac.kr/kr/life/food.do", link["web_url"])
	})

	t.Run("no credential", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("must not call the API without a credential")
		}))
		defer server.Close()

		client := NewClient(server.URL, "https://example.com", staticToken(""), 5*time.Second)
		err := client.Send(context.Background(), "text")
		require.ErrorIs(t, err, ErrNoCredential)
	})

	t.Run("credential read failure", func(t *testing.T) {
		creds := tokenFunc(func(context.Context) (string, error) {
			return "", fmt.Errorf("store is down")
		})
		client := NewClient("http://localhost:1", "https://example.com", creds, time.Second)
		err := client.Send(context.Background(), "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store is down")
	})

	t.Run("api error surfaces status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"msg":"this access token does not exist","code":-401}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "https://example.com", staticToken("stale"), 5*time.Second)
		err := client.Send(context.Background(), "text")
		require.Error(t, err)

		var dErr *DeliveryError
		require.ErrorAs(t, err, &dErr)
		assert.Equal(t, http.StatusUnauthorized, dErr.StatusCode)
		assert.Contains(t, dErr.Body, "-401")
	})

	t.Run("transient failure retried", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"result_code":0}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "https://example.com", staticToken("test-token"), 5*time.Second)
		err := client.Send(context.Background(), "text")
		require.NoError(t, err)
		assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})
}
