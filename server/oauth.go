package server

import (
	"fmt"
	"log"
	"net/http"
)

const tokenProvider = "kakao"

// oauthAuthorizeHandler redirects the browser to the provider consent page
func (s *Server) oauthAuthorizeHandler(w http.ResponseWriter, r *http.Request) {
	if s.auth == nil {
		renderError(w, r, fmt.Errorf("oauth is not configured"), http.StatusNotImplemented)
		return
	}
	http.Redirect(w, r, s.auth.AuthorizeURL(s.redirectURI()), http.StatusFound)
}

// oauthCallbackHandler exchanges the authorization code and stores the token
func (s *Server) oauthCallbackHandler(w http.ResponseWriter, r *http.Request) {
	if s.auth == nil {
		renderError(w, r, fmt.Errorf("oauth is not configured"), http.StatusNotImplemented)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		renderError(w, r, fmt.Errorf("missing authorization code"), http.StatusBadRequest)
		return
	}

	pair, err := s.auth.ExchangeCode(r.Context(), code, s.redirectURI())
	if err != nil {
		log.Printf("[ERROR] oauth code exchange failed: %v", err)
		renderError(w, r, fmt.Errorf("code exchange failed"), http.StatusBadGateway)
		return
	}

	if err := s.tokens.Save(r.Context(), tokenProvider, pair.AccessToken, pair.RefreshToken); err != nil {
		log.Printf("[ERROR] can't store delivery token: %v", err)
		renderError(w, r, fmt.Errorf("can't store token"), http.StatusInternalServerError)
		return
	}

	log.Printf("[INFO] delivery credential stored for %s", tokenProvider)
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "authorized"})
}

func (s *Server) redirectURI() string {
	return s.config.GetBaseURL() + "/oauth/callback"
}
