package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// menuKeywords trigger a digest reply from the chatbot webhook
var menuKeywords = []string{"메뉴", "식단", "학식", "밥", "점심", "저녁"}

// skillRequest is the part of the Kakao chatbot skill payload we care about
type skillRequest struct {
	UserRequest struct {
		Utterance string `json:"utterance"`
	} `json:"userRequest"`
}

// skillResponse is the Kakao chatbot skill response envelope
type skillResponse struct {
	Version  string `json:"version"`
	Template struct {
		Outputs []skillOutput `json:"outputs"`
	} `json:"template"`
}

type skillOutput struct {
	SimpleText struct {
		Text string `json:"text"`
	} `json:"simpleText"`
}

// webhookHandler answers Kakao chatbot skill callbacks. Utterances mentioning
// the menu get today's digest, everything else a short greeting.
func (s *Server) webhookHandler(w http.ResponseWriter, r *http.Request) {
	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid skill payload"), http.StatusBadRequest)
		return
	}

	text := "안녕하세요! 오늘의 학식 메뉴가 궁금하시면 \"메뉴\"라고 보내주세요."
	if wantsMenu(req.UserRequest.Utterance) {
		text = s.digester.Digest(r.Context(), "")
	}

	var resp skillResponse
	resp.Version = "2.0"
	out := skillOutput{}
	out.SimpleText.Text = text
	resp.Template.Outputs = []skillOutput{out}

	renderJSON(w, r, http.StatusOK, resp)
}

func wantsMenu(utterance string) bool {
	for _, kw := range menuKeywords {
		if strings.Contains(utterance, kw) {
			return true
		}
	}
	return false
}
