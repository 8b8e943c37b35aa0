package commands

import (
	"log/slog"
	"os"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/store"
	tsync "tableflip.dev/tasktree/pkg/sync"
)

type env struct {
	config  store.Config
	cache   store.Cache
	session *app.Session
	logger  *slog.Logger
}

// openSession loads config, the local cache and, when withRemote is set, the
// configured remote.
func openSession(withRemote bool) (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel())
	if err != nil {
		return nil, err
	}
	cache, err := store.LoadCache(cfg)
	if err != nil {
		return nil, err
	}

	var engine *tsync.Engine
	if withRemote {
		remote, err := tsync.ForURL(cfg.RemoteURL(), nil)
		if err != nil {
			return nil, err
		}
		engine = tsync.New(remote, logger)
	}

	session, err := app.Open(cache, engine, logger)
	if err != nil {
		return nil, err
	}
	return &env{config: cfg, cache: cache, session: session, logger: logger}, nil
}
