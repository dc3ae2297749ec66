// Package server exposes the loot generator over WebSocket so designers can
// preview scaled tables, and optionally rolled rewards, from a browser or tool.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lawnchairsociety/lootscale/internal/config"
	"github.com/lawnchairsociety/lootscale/internal/items"
	"github.com/lawnchairsociety/lootscale/internal/logger"
	"github.com/lawnchairsociety/lootscale/internal/loot"
)

// ErrServerClosed is returned by ListenAndServe after Shutdown.
var ErrServerClosed = errors.New("preview server closed")

type Server struct {
	cfg          config.PreviewConfig
	generator    *loot.Generator
	connLimiter  *ConnLimiter
	authLimiter  *AuthLimiter
	httpServer   *http.Server
	mu           sync.Mutex
	sessions     map[*websocket.Conn]struct{}
	closed       bool
	shutdownOnce sync.Once
	StartTime    time.Time
}

// NewServer creates a preview server generating tables from catalog.
func NewServer(cfg config.PreviewConfig, catalog items.ItemCatalog) *Server {
	return &Server{
		cfg:         cfg,
		generator:   loot.NewGenerator(catalog),
		connLimiter: NewConnLimiter(cfg.MaxConnsPerIP, cfg.MaxConnsTotal),
		authLimiter: NewAuthLimiter(cfg.MaxAuthFailures, cfg.AuthLockout, cfg.AuthMaxLockout),
		sessions:    make(map[*websocket.Conn]struct{}),
		StartTime:   time.Now(),
	}
}

// Handler returns the HTTP handler serving the /ws endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocketUpgrade)
	return mux
}

// ListenAndServe serves previews on the configured address until Shutdown.
// It returns ErrServerClosed if Shutdown has already been called.
func (s *Server) ListenAndServe() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrServerClosed
	}
	s.httpServer = &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	logger.Always("Loot preview server listening", "address", s.cfg.Address)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and closes open preview sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		srv := s.httpServer
		for conn := range s.sessions {
			conn.Close()
		}
		s.mu.Unlock()

		if srv != nil {
			err = srv.Shutdown(ctx)
		}
		logger.Always("Loot preview server stopped", "uptime", time.Since(s.StartTime).Round(time.Second))
	})
	return err
}

// handleWebSocketUpgrade authenticates the request and upgrades it to a preview session.
func (s *Server) handleWebSocketUpgrade(w http.ResponseWriter, r *http.Request) {
	clientIP := getRealIP(r)

	if s.isClosed() {
		http.Error(w, "Server is shutting down.", http.StatusServiceUnavailable)
		return
	}

	if locked, remaining := s.authLimiter.IsLocked(clientIP); locked {
		logger.Warning("Preview connection rejected - locked out", "client_ip", clientIP, "remaining", remaining)
		http.Error(w, "Too many failed attempts. Please try again later.", http.StatusTooManyRequests)
		return
	}

	if err := checkToken(r, s.cfg.TokenHash); err != nil {
		locked, lockout := s.authLimiter.RecordFailure(clientIP)
		logger.Warning("Preview connection rejected - bad token", "client_ip", clientIP, "locked", locked, "lockout", lockout)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	if s.cfg.TokenHash != "" {
		s.authLimiter.RecordSuccess(clientIP)
	}

	if !s.connLimiter.TryAcquire(clientIP) {
		logger.Warning("Preview connection rejected - limit exceeded",
			"remote_addr", r.RemoteAddr,
			"client_ip", clientIP)
		http.Error(w, "Too many connections. Please try again later.", http.StatusTooManyRequests)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := s.cfg.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("Preview connection rejected - origin not allowed",
					"origin", origin,
					"host", r.Host,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		s.connLimiter.Release(clientIP)
		return
	}

	// Register before the session goroutine starts so Shutdown always sees it
	if !s.track(wsConn) {
		s.connLimiter.Release(clientIP)
		wsConn.Close()
		return
	}

	go s.handleSession(wsConn, clientIP)
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// track registers a session, or reports false once Shutdown has started.
func (s *Server) track(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.sessions[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.sessions, conn)
	s.mu.Unlock()
}
