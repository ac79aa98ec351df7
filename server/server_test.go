package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajoubot/menubot/server/mocks"
)

type fixture struct {
	srv       *Server
	ts        *httptest.Server
	cfg       *mocks.ConfigProviderMock
	digester  *mocks.DigesterMock
	notifier  *mocks.NotifierMock
	scheduler *mocks.SchedulerMock
	tokens    *mocks.TokenStoreMock
	auth      *mocks.AuthenticatorMock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		cfg: &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) { return ":0", 30 * time.Second },
			GetAdminKeyFunc:     func() string { return "test-admin-key" },
			GetBaseURLFunc:      func() string { return "http://menubot.example.com" },
		},
		digester: &mocks.DigesterMock{
			DigestFunc: func(_ context.Context, date string) string { return "digest for " + date },
		},
		notifier: &mocks.NotifierMock{
			SendFunc: func(context.Context, string) error { return nil },
		},
		scheduler: &mocks.SchedulerMock{
			StartFunc:        func() {},
			StopFunc:         func() {},
			RescheduleFunc:   func(int, int) error { return nil },
			IsRunningFunc:    func() bool { return true },
			NextFireTimeFunc: func() *time.Time { next := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC); return &next },
			NotifyTimeFunc:   func() (int, int) { return 12, 0 },
		},
		tokens: &mocks.TokenStoreMock{
			SaveFunc: func(context.Context, string, string, string) error { return nil },
		},
		auth: &mocks.AuthenticatorMock{
			AuthorizeURLFunc: func(redirectURI string) string {
				return "https://kauth.example.com/oauth/authorize?redirect_uri=" + redirectURI
			},
		},
	}

	f.srv = New(f.cfg, Services{
		Digester:  f.digester,
		Notifier:  f.notifier,
		Scheduler: f.scheduler,
		Tokens:    f.tokens,
		Auth:      f.auth,
	}, "test-version", false)

	f.ts = httptest.NewServer(f.srv.router)
	t.Cleanup(f.ts.Close)

	return f
}

func (f *fixture) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(f.ts.URL + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(body)
}

func (f *fixture) adminPost(t *testing.T, path, key string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, f.ts.URL+path, http.NoBody)
	require.NoError(t, err)
	if key != "" {
		req.Header.Set("X-Admin-Key", key)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(body)
}

func TestServer_Status(t *testing.T) {
	f := newFixture(t)

	resp, body := f.get(t, "/api/v1/status")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test-version", status["version"])

	sched, ok := status["scheduler"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, sched["running"])
	assert.Equal(t, "12:00", sched["notify_time"])
	assert.Contains(t, sched["next_fire"], "2025-06-02T12:00:00")
}

func TestServer_Ping(t *testing.T) {
	f := newFixture(t)

	resp, body := f.get(t, "/ping")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", body)
}

func TestServer_AppInfoHeader(t *testing.T) {
	f := newFixture(t)

	resp, _ := f.get(t, "/api/v1/status")
	assert.Equal(t, "menubot", resp.Header.Get("App-Name"))
	assert.Equal(t, "test-version", resp.Header.Get("App-Version"))
}

func TestServer_AdminOnly(t *testing.T) {
	t.Run("missing key rejected", func(t *testing.T) {
		f := newFixture(t)
		resp, body := f.adminPost(t, "/schedule/start", "")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Contains(t, body, "invalid admin key")
		assert.Empty(t, f.scheduler.StartCalls())
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		f := newFixture(t)
		resp, _ := f.adminPost(t, "/schedule/start", "wrong-key")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Empty(t, f.scheduler.StartCalls())
	})

	t.Run("correct key accepted", func(t *testing.T) {
		f := newFixture(t)
		resp, _ := f.adminPost(t, "/schedule/start", "test-admin-key")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, f.scheduler.StartCalls(), 1)
	})

	t.Run("no configured key disables admin", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.GetAdminKeyFunc = func() string { return "" }
		resp, body := f.adminPost(t, "/schedule/start", "anything")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Contains(t, body, "admin endpoints disabled")
	})
}

func TestServer_RunAndShutdown(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond) // let the listener come up
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
