package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServer_MenuWeb(t *testing.T) {
	t.Run("renders digest in a page", func(t *testing.T) {
		f := newFixture(t)
		f.digester.DigestFunc = func(context.Context, string) string {
			return "아주대 식당 메뉴 (2025-06-02)\n\n• 김치찌개\n• 밥"
		}

		resp, body := f.get(t, "/menu-web")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		assert.Contains(t, body, "김치찌개")
		assert.Contains(t, body, "<pre>")
	})

	t.Run("markup in scraped text is stripped", func(t *testing.T) {
		f := newFixture(t)
		f.digester.DigestFunc = func(context.Context, string) string {
			return "메뉴 <script>alert(1)</script> 김치찌개"
		}

		resp, body := f.get(t, "/menu-web")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotContains(t, body, "<script>")
		assert.NotContains(t, body, "alert(1)")
		assert.Contains(t, body, "김치찌개")
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		f := newFixture(t)

		resp, _ := f.get(t, "/menu-web?date=junk")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, f.digester.DigestCalls())
	})
}
