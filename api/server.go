// Package api serves the browser assets and the session exchange endpoint.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/battlesnakeio/snake/realtime"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// SessionCreator creates real-time voice sessions.
type SessionCreator interface {
	CreateSession(ctx context.Context, model string) (*realtime.Session, error)
}

// Server is the http server in front of the session exchange.
type Server struct {
	hs       *http.Server
	sessions SessionCreator
	limiter  *rate.Limiter
}

// Options tune the server.
type Options struct {
	// PublicDir is served for every path that is not an api route. Empty
	// disables static files.
	PublicDir string
	// SessionRate and SessionBurst limit /session across all clients. A zero
	// rate disables limiting.
	SessionRate  rate.Limit
	SessionBurst int
	// RequestTimeout bounds the upstream call made for a single request.
	RequestTimeout time.Duration
}

// New creates a server listening on addr.
func New(addr string, sessions SessionCreator, opts Options) *Server {
	s := &Server{
		sessions: sessions,
	}
	if opts.SessionRate > 0 {
		s.limiter = rate.NewLimiter(opts.SessionRate, opts.SessionBurst)
	}

	router := httprouter.New()
	router.GET("/session", s.limited(s.timeout(opts.RequestTimeout, s.createSession)))
	router.GET("/healthz", s.health)
	if opts.PublicDir != "" {
		router.NotFound = http.FileServer(http.Dir(opts.PublicDir))
	}

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

func (s *Server) limited(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if s.limiter != nil && !s.limiter.Allow() {
			log.WithField("remote", r.RemoteAddr).Warn("session rate limited")
			http.Error(w, "Too many session requests", http.StatusTooManyRequests)
			return
		}
		h(w, r, ps)
	}
}

func (s *Server) timeout(d time.Duration, h httprouter.Handle) httprouter.Handle {
	if d <= 0 {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()
		h(w, r.WithContext(ctx), ps)
	}
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	model := r.URL.Query().Get("model")
	session, err := s.sessions.CreateSession(r.Context(), model)
	if err != nil {
		var upstream *realtime.UpstreamError
		if errors.As(err, &upstream) {
			log.WithField("status", upstream.StatusCode).Warn("upstream rejected session request")
			w.WriteHeader(upstream.StatusCode)
			if _, wErr := w.Write(upstream.Body); wErr != nil {
				log.WithError(wErr).Error("unable to relay upstream error")
			}
			return
		}
		log.WithError(err).Error("unable to create session")
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(session); err != nil {
		log.WithError(err).Error("unable to write session response")
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Handler exposes the routed handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.hs.Handler
}

// WaitForExit starts up the server and blocks until the server shuts down.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("session server listening")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}
