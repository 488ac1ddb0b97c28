package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"calc/internal/domain"
)

const shutdownTimeout = 5 * time.Second

// AddRequest is the body of POST /add.
type AddRequest struct {
	A       json.Number `json:"a"`
	B       json.Number `json:"b"`
	Integer bool        `json:"integer,omitempty"`
}

// Server serves a CalculatorService over HTTP.
type Server struct {
	addr string
	svc  domain.CalculatorService
	log  *zap.Logger
}

// New returns a server that will listen on addr.
func New(addr string, svc domain.CalculatorService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{addr: addr, svc: svc, log: log}
}

// Handler returns the routed, access-logged handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /add", s.handleAdd)
	mux.HandleFunc("GET /history", s.handleHistory)
	mux.HandleFunc("DELETE /history", s.handleClear)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return s.accessLog(mux)
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.log.Info("calc server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("calc server stopped")
	return nil
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.UseNumber()
	var req AddRequest
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.A == "" || req.B == "" {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: a and b are required", domain.ErrInvalidOperand))
		return
	}

	var (
		entry domain.Entry
		err   error
	)
	if req.Integer {
		a, aerr := req.A.Int64()
		b, berr := req.B.Int64()
		if aerr != nil || berr != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: integer operands required", domain.ErrInvalidOperand))
			return
		}
		entry, err = s.svc.AddInt(r.Context(), a, b)
	} else {
		a, aerr := req.A.Float64()
		b, berr := req.B.Float64()
		if aerr != nil || berr != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: numeric operands required", domain.ErrInvalidOperand))
			return
		}
		entry, err = s.svc.Add(r.Context(), a, b)
	}
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("bad limit %q", v))
			return
		}
		limit = n
	}
	entries, err := s.svc.History(r.Context(), limit)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.ClearHistory(r.Context()); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidOperand):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encode response", zap.Error(err))
		status = http.StatusInternalServerError
		b, _ = json.Marshal(map[string]string{"error": "encode response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
