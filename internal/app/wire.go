package app

import (
	"net/http"

	"go.uber.org/zap"

	"calc/internal/client"
	"calc/internal/domain"
	"calc/internal/server"
	"calc/internal/services/arith"
	"calc/internal/store"
)

// Wire bundles the store, services and clients for the CLI.
type Wire struct {
	Calculator domain.CalculatorService
	History    domain.HistoryStore // nil when remote or disabled
	Log        *zap.Logger
	Config     Config
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w := &Wire{Log: log, Config: cfg}

	if cfg.Remote != "" {
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		w.Calculator = client.NewHTTP(cfg.Remote, httpClient)
		log.Debug("using remote calculator", zap.String("remote", cfg.Remote))
		return w, nil
	}

	if !cfg.NoHistory {
		w.History = store.NewHistoryFileStore(cfg.Home, cfg.Passphrase, cfg.MaxHistory)
	}
	w.Calculator = arith.New(w.History, log)
	return w, nil
}

// NewServer builds an HTTP server backed by an in-memory history.
func (w *Wire) NewServer(listen string) *server.Server {
	if listen == "" {
		listen = w.Config.Listen
	}
	svc := arith.New(store.NewMemoryHistoryStore(w.Config.MaxHistory), w.Log)
	return server.New(listen, svc, w.Log)
}
