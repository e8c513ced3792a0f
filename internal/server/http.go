package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fluentcrm-mcp/internal/fluentcrm"
	"fluentcrm-mcp/internal/i18n"
)

const (
	sessionHeader = "Mcp-Session-Id"

	headerAPIURL   = "X-FluentCRM-URL"
	headerUsername = "X-FluentCRM-Username"
	headerPassword = "X-FluentCRM-Password"

	sseKeepAlive    = 25 * time.Second
	shutdownTimeout = 5 * time.Second
)

// HTTPConfig carries everything the HTTP transport needs: listen settings,
// the optional bearer token, and the default FluentCRM credentials used
// when a session does not override them per request.
type HTTPConfig struct {
	Port      string
	AuthToken string
	KeepAlive time.Duration

	APIURL      string
	APIUsername string
	APIPassword string
}

// HTTPServer is the multi-tenant MCP transport. Each session owns its own
// Server instance so credentials never leak across tenants.
type HTTPServer struct {
	cfg      HTTPConfig
	tr       *i18n.Translator
	logger   *slog.Logger
	router   *chi.Mux
	sessions *sessionRegistry
}

// NewHTTP constructs the HTTP transport with middleware and routes wired.
func NewHTTP(cfg HTTPConfig, tr *i18n.Translator, logger *slog.Logger) *HTTPServer {
	h := &HTTPServer{
		cfg:      cfg,
		tr:       tr,
		logger:   logger,
		router:   chi.NewRouter(),
		sessions: newSessionRegistry(),
	}
	h.router.Use(middleware.RequestID)
	h.router.Use(middleware.RealIP)
	h.router.Use(middleware.Logger)
	h.router.Use(middleware.Recoverer)

	h.router.Get("/health", h.handleHealth)

	h.router.Route("/mcp", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(normalizeAccept)
		r.Post("/", h.handlePost)
		r.Get("/", h.handleGet)
		r.Delete("/", h.handleDelete)
	})

	return h
}

// Router exposes the root HTTP handler for the server.
func (h *HTTPServer) Router() http.Handler { return h.router }

func (h *HTTPServer) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.AuthToken == "" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+h.cfg.AuthToken {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// normalizeAccept rewrites the Accept header so clients that send a bare
// application/json (or nothing at all) still satisfy the streamable-HTTP
// content negotiation rules.
func normalizeAccept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept := r.Header.Get("Accept")
		if !strings.Contains(accept, "application/json") || !strings.Contains(accept, "text/event-stream") {
			r.Header.Set("Accept", "application/json, text/event-stream")
		}
		next.ServeHTTP(w, r)
	})
}

func (h *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "server": serverName})
}

// handlePost routes one JSON-RPC message to its session, creating the
// session first when the id is absent or no longer known.
func (h *HTTPServer) handlePost(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "cannot read body", http.StatusBadRequest)
		return
	}

	sess, ok := h.sessions.get(r.Header.Get(sessionHeader))
	if !ok {
		sess = h.establishSession(r)
	}
	w.Header().Set(sessionHeader, sess.id)

	resp := sess.srv.HandleMessage(r.Context(), body)
	if resp == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// establishSession builds a session bound to per-request credentials when
// the tenant headers are present, falling back to the process defaults.
// The credentials are fixed for the session's lifetime.
func (h *HTTPServer) establishSession(r *http.Request) *session {
	apiURL := headerOr(r, headerAPIURL, h.cfg.APIURL)
	username := headerOr(r, headerUsername, h.cfg.APIUsername)
	password := headerOr(r, headerPassword, h.cfg.APIPassword)

	client := fluentcrm.New(apiURL, username, password)
	sess := &session{
		id:  uuid.NewString(),
		srv: New(client, h.tr, h.logger),
	}
	h.sessions.add(sess)
	h.logger.InfoContext(r.Context(), "session established",
		"session_id", sess.id, "api_url", apiURL, "active", h.sessions.len())
	return sess
}

func headerOr(r *http.Request, name, fallback string) string {
	if v := r.Header.Get(name); v != "" {
		return v
	}
	return fallback
}

// handleGet holds open the SSE continuation stream for a known session,
// emitting comment frames so intermediaries do not drop the connection.
func (h *HTTPServer) handleGet(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.get(r.Header.Get(sessionHeader)); !ok {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(sseKeepAlive)
	defer ticker.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (h *HTTPServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(sessionHeader)
	h.sessions.remove(id)
	h.logger.InfoContext(r.Context(), "session closed", "session_id", id, "active", h.sessions.len())
	w.WriteHeader(http.StatusOK)
}

// Start serves until ctx is cancelled, then drains with a short timeout.
// When configured it also runs the keep-alive self-probe that stops
// free-tier hosts from idling the process out.
func (h *HTTPServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + h.cfg.Port,
		Handler: h.router,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h.logger.InfoContext(ctx, "serving MCP over HTTP", "port", h.cfg.Port)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	if h.cfg.KeepAlive > 0 {
		g.Go(func() error {
			h.keepAlive(ctx)
			return nil
		})
	}
	return g.Wait()
}

func (h *HTTPServer) keepAlive(ctx context.Context) {
	probe := &http.Client{Timeout: 10 * time.Second}
	target := fmt.Sprintf("http://127.0.0.1:%s/health", h.cfg.Port)
	ticker := time.NewTicker(h.cfg.KeepAlive)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
			if err != nil {
				continue
			}
			resp, err := probe.Do(req)
			if err != nil {
				h.logger.WarnContext(ctx, "keep-alive probe failed", "error", err)
				continue
			}
			resp.Body.Close()
		}
	}
}
