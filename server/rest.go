package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/ajoubot/menubot/pkg/notify"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// statusHandler returns server status including the scheduler state
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"scheduler": s.scheduleStatus(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// menuHandler returns the digest for the requested date, today when omitted
func (s *Server) menuHandler(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" && !dateRe.MatchString(date) {
		renderError(w, r, fmt.Errorf("date must be YYYY-MM-DD"), http.StatusBadRequest)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{
		"menu": s.digester.Digest(r.Context(), date),
	})
}

// sendMenuHandler builds today's digest and pushes it through the notifier
func (s *Server) sendMenuHandler(w http.ResponseWriter, r *http.Request) {
	digest := s.digester.Digest(r.Context(), "")

	err := s.notifier.Send(r.Context(), digest)
	switch {
	case errors.Is(err, notify.ErrNoCredential):
		renderError(w, r, fmt.Errorf("no delivery credential, complete the oauth flow first"), http.StatusConflict)
	case err != nil:
		log.Printf("[ERROR] manual digest delivery failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
	default:
		renderJSON(w, r, http.StatusOK, map[string]string{"result": "sent"})
	}
}

// scheduleStartHandler starts the daily notification trigger
func (s *Server) scheduleStartHandler(w http.ResponseWriter, r *http.Request) {
	s.scheduler.Start()
	renderJSON(w, r, http.StatusOK, s.scheduleStatus())
}

// scheduleStopHandler stops the daily notification trigger
func (s *Server) scheduleStopHandler(w http.ResponseWriter, r *http.Request) {
	s.scheduler.Stop()
	renderJSON(w, r, http.StatusOK, s.scheduleStatus())
}

// scheduleTimeHandler changes the daily notification time
func (s *Server) scheduleTimeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hour   int `json:"hour"`
		Minute int `json:"minute"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.scheduler.Reschedule(req.Hour, req.Minute); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	log.Printf("[INFO] notification time changed to %02d:%02d", req.Hour, req.Minute)
	renderJSON(w, r, http.StatusOK, s.scheduleStatus())
}

// scheduleStatusHandler reports the scheduler state
func (s *Server) scheduleStatusHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.scheduleStatus())
}

// scheduleStatus collects the scheduler state for status responses
func (s *Server) scheduleStatus() map[string]interface{} {
	hour, minute := s.scheduler.NotifyTime()
	res := map[string]interface{}{
		"running":     s.scheduler.IsRunning(),
		"notify_time": fmt.Sprintf("%02d:%02d", hour, minute),
	}
	if next := s.scheduler.NextFireTime(); next != nil {
		res["next_fire"] = next.Format(time.RFC3339)
	}
	return res
}
