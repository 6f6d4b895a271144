package service

import (
	"errors"
	"log/slog"

	"github.com/roach88/sango/internal/catalog"
	"github.com/roach88/sango/internal/enka"
	"github.com/roach88/sango/internal/store"
)

// Service owns the write path (snapshot recording) and the read views.
// It is safe for concurrent use: all storage access goes through the
// store's single connection, and assembly passes hold no shared state.
type Service struct {
	store   *store.Store
	catalog *catalog.Bootstrap
	fetcher enka.Fetcher
	log     *slog.Logger
}

// Config contains dependencies for a Service.
type Config struct {
	// Store is required.
	Store *store.Store

	// Fetcher is the upstream snapshot source. Optional: a service
	// without a fetcher can still serve reads and record snapshots
	// supplied by the caller.
	Fetcher enka.Fetcher

	// Logger is optional; nil disables logging.
	Logger *slog.Logger
}

// New creates a Service.
func New(cfg Config) (*Service, error) {
	if cfg.Store == nil {
		return nil, errors.New("service: store is required")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{
		store:   cfg.Store,
		catalog: catalog.New(cfg.Store, log),
		fetcher: cfg.Fetcher,
		log:     log,
	}, nil
}

// ErrNoFetcher is returned by FetchAndRecord when the service was built
// without an upstream fetcher.
var ErrNoFetcher = errors.New("service: no upstream fetcher configured")
