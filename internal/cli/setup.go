package cli

import (
	"log/slog"
	"os"

	"github.com/roach88/sango/internal/config"
	"github.com/roach88/sango/internal/enka"
	"github.com/roach88/sango/internal/service"
	"github.com/roach88/sango/internal/store"
)

// runtime bundles the pieces a command needs: resolved config, an open
// store and the assembled service. Close releases the store.
type runtime struct {
	cfg config.Config
	st  *store.Store
	svc *service.Service
	log *slog.Logger
}

func (r *runtime) Close() error {
	return r.st.Close()
}

// newRuntime resolves configuration, opens the database and wires the
// service. Flag overrides win over both the config file and environment.
// Server processes log JSON; one-shot commands log human-readable text.
func newRuntime(opts *RootOptions, jsonLog bool) (*runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}

	level := cfg.SlogLevel()
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	if jsonLog {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	}
	log := slog.New(handler)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open database", err)
	}

	svc, err := service.New(service.Config{
		Store:   st,
		Fetcher: enka.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout),
		Logger:  log,
	})
	if err != nil {
		st.Close()
		return nil, WrapExitError(ExitCommandError, "assemble service", err)
	}

	return &runtime{cfg: cfg, st: st, svc: svc, log: log}, nil
}
