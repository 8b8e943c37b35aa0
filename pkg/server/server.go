// Package server exposes the snapshot slot over HTTP so that clients can push
// and pull whole snapshots.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"tableflip.dev/tasktree/pkg/state"
	"tableflip.dev/tasktree/pkg/store"
)

// Config holds the server's dependencies.
type Config struct {
	Slot   *store.Slot
	Logger *slog.Logger
}

// Server serves GET and POST /tasks against a single snapshot slot.
type Server struct {
	slot *store.Slot
	log  *slog.Logger
	mux  *http.ServeMux
}

func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{slot: cfg.Slot, log: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("/tasks", s.handleTasks)
	s.mux.HandleFunc("/healthz", s.handleHealthz)
	return s
}

// Handler returns the root handler with request logging applied.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// Serve listens on addr and serves until ctx is cancelled, then shuts down
// gracefully. onListening, when set, receives the bound address.
func (s *Server) Serve(ctx context.Context, addr string, onListening func(net.Addr)) error {
	if s.slot == nil {
		return errors.New("server: snapshot slot required")
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if onListening != nil {
		onListening(ln.Addr())
	}

	httpSrv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("shutdown", "err", err)
		}
	}()

	s.log.Info("serving snapshots", "addr", ln.Addr().String(), "slot", s.slot.Path())
	err = httpSrv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleFetch(w, r)
	case http.MethodPost:
		s.handleReplace(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleFetch serves GET /tasks.
func (s *Server) handleFetch(w http.ResponseWriter, _ *http.Request) {
	st, err := s.slot.Read()
	switch {
	case errors.Is(err, store.ErrNoSnapshot):
		writeError(w, http.StatusNotFound, "no snapshot")
		return
	case err != nil:
		s.log.Error("read snapshot", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to read snapshot")
		return
	}
	data, err := state.Marshal(st)
	if err != nil {
		s.log.Error("encode snapshot", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to encode snapshot")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleReplace serves POST /tasks. The body replaces the stored snapshot
// wholesale; there is no merge and the last push wins.
func (s *Server) handleReplace(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, state.MaxSnapshotBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable body")
		return
	}
	st, err := state.Unmarshal(body)
	if err != nil {
		s.log.Warn("rejected snapshot", "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.slot.Write(st); err != nil {
		s.log.Error("write snapshot", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to store snapshot")
		return
	}
	s.log.Info("snapshot replaced", "entries", st.Root.Count(), "latest_id", uint64(st.IDs.LatestID))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusAccepted)
	_, _ = io.WriteString(w, "success")
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
