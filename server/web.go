package server

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/microcosm-cc/bluemonday"
)

var menuPageTmpl = template.Must(template.New("menu").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>아주대 식당 메뉴</title>
<style>
body { font-family: -apple-system, "Malgun Gothic", sans-serif; max-width: 40em; margin: 2em auto; padding: 0 1em; }
pre { white-space: pre-wrap; line-height: 1.5; }
</style>
</head>
<body>
<pre>{{.Menu}}</pre>
</body>
</html>
`))

// sanitizer strips any markup that survived upstream scraping before the
// digest goes into a page
var sanitizer = bluemonday.StrictPolicy()

// menuWebHandler renders the digest as a small HTML page
func (s *Server) menuWebHandler(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" && !dateRe.MatchString(date) {
		renderError(w, r, fmt.Errorf("date must be YYYY-MM-DD"), http.StatusBadRequest)
		return
	}

	digest := sanitizer.Sanitize(s.digester.Digest(r.Context(), date))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := menuPageTmpl.Execute(w, map[string]string{"Menu": digest}); err != nil {
		log.Printf("[ERROR] can't render menu page: %v", err)
	}
}
