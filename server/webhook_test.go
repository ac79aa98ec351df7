package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postWebhook(t *testing.T, f *fixture, payload string) (*http.Response, skillResponse) {
	t.Helper()
	resp, err := http.Post(f.ts.URL+"/webhook", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var skill skillResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(body, &skill))
	}
	return resp, skill
}

func TestServer_Webhook(t *testing.T) {
	t.Run("menu keyword returns digest", func(t *testing.T) {
		f := newFixture(t)

		resp, skill := postWebhook(t, f, `{"userRequest": {"utterance": "오늘 메뉴 알려줘"}}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "2.0", skill.Version)
		require.Len(t, skill.Template.Outputs, 1)
		assert.Equal(t, "digest for ", skill.Template.Outputs[0].SimpleText.Text)
		assert.Len(t, f.digester.DigestCalls(), 1)
	})

	t.Run("other keywords too", func(t *testing.T) {
		for _, utterance := range []string{"점심 뭐야", "저녁은?", "오늘 학식", "식단 보여줘", "밥"} {
			t.Run(utterance, func(t *testing.T) {
				f := newFixture(t)
				payload, err := json.Marshal(map[string]interface{}{
					"userRequest": map[string]string{"utterance": utterance},
				})
				require.NoError(t, err)

				_, skill := postWebhook(t, f, string(payload))
				assert.Equal(t, "digest for ", skill.Template.Outputs[0].SimpleText.Text)
			})
		}
	})

	t.Run("unrelated utterance gets greeting", func(t *testing.T) {
		f := newFixture(t)

		resp, skill := postWebhook(t, f, `{"userRequest": {"utterance": "안녕"}}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, skill.Template.Outputs, 1)
		assert.Contains(t, skill.Template.Outputs[0].SimpleText.Text, "안녕하세요")
		assert.Empty(t, f.digester.DigestCalls())
	})

	t.Run("malformed payload rejected", func(t *testing.T) {
		f := newFixture(t)

		resp, _ := postWebhook(t, f, `not json`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
