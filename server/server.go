package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/ajoubot/menubot/pkg/notify"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/digester.go -pkg mocks -skip-ensure -fmt goimports . Digester
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/token_store.go -pkg mocks -skip-ensure -fmt goimports . TokenStore
//go:generate moq -out mocks/authenticator.go -pkg mocks -skip-ensure -fmt goimports . Authenticator

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	digester  Digester
	notifier  Notifier
	scheduler Scheduler
	tokens    TokenStore
	auth      Authenticator
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Digester builds the menu digest for a date, empty date means today
type Digester interface {
	Digest(ctx context.Context, date string) string
}

// Notifier delivers a digest to the configured channel
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Scheduler controls the daily notification trigger
type Scheduler interface {
	Start()
	Stop()
	Reschedule(hour, minute int) error
	IsRunning() bool
	NextFireTime() *time.Time
	NotifyTime() (hour, minute int)
}

// TokenStore persists delivery credentials obtained via OAuth
type TokenStore interface {
	Save(ctx context.Context, provider, accessToken, refreshToken string) error
}

// Authenticator runs the OAuth code flow against the delivery provider
type Authenticator interface {
	AuthorizeURL(redirectURI string) string
	ExchangeCode(ctx context.Context, code, redirectURI string) (*notify.TokenPair, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetAdminKey() string
	GetBaseURL() string
}

// Services groups the application components the server exposes
type Services struct {
	Digester  Digester
	Notifier  Notifier
	Scheduler Scheduler
	Tokens    TokenStore
	Auth      Authenticator
}

// New initializes a new server instance
func New(cfg ConfigProvider, svc Services, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		digester:  svc.Digester,
		notifier:  svc.Notifier,
		scheduler: svc.Scheduler,
		tokens:    svc.Tokens,
		auth:      svc.Auth,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("menubot", "ajoubot", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64K, requests carry at most a small JSON body
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
	})

	// public menu routes
	s.router.HandleFunc("GET /menu", s.menuHandler)
	s.router.HandleFunc("GET /menu-web", s.menuWebHandler)
	s.router.HandleFunc("POST /webhook", s.webhookHandler)

	// oauth flow for the delivery credential
	s.router.HandleFunc("GET /oauth/authorize", s.oauthAuthorizeHandler)
	s.router.HandleFunc("GET /oauth/callback", s.oauthCallbackHandler)

	// admin routes, guarded by X-Admin-Key
	s.router.Group().Route(func(r *routegroup.Bundle) {
		r.Use(s.adminOnly)
		r.HandleFunc("POST /send-menu", s.sendMenuHandler)
		r.HandleFunc("POST /schedule/start", s.scheduleStartHandler)
		r.HandleFunc("POST /schedule/stop", s.scheduleStopHandler)
		r.HandleFunc("POST /schedule/time", s.scheduleTimeHandler)
		r.HandleFunc("GET /schedule/status", s.scheduleStatusHandler)
	})
}

// adminOnly rejects requests without the configured admin key. An empty
// configured key disables admin endpoints entirely.
func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := s.config.GetAdminKey()
		if key == "" {
			renderError(w, r, fmt.Errorf("admin endpoints disabled"), http.StatusForbidden)
			return
		}
		if subtle.ConstantTimeCompare([]byte(r.Header.Get("X-Admin-Key")), []byte(key)) != 1 {
			renderError(w, r, fmt.Errorf("invalid admin key"), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
