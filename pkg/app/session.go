// Package app ties the state to its local cache and the sync engine. A
// Session owns one State; it is not safe for concurrent use.
package app

import (
	"context"
	"errors"
	"log/slog"

	"tableflip.dev/tasktree/pkg/state"
	"tableflip.dev/tasktree/pkg/store"
	tsync "tableflip.dev/tasktree/pkg/sync"
)

var ErrNoRemote = errors.New("app: no remote configured")

type Session struct {
	State *state.State

	cache  store.Cache
	engine *tsync.Engine
	log    *slog.Logger
}

// Open restores the cached state. A cache that can't be read yields a fresh
// state; the problem is logged, not returned. engine may be nil when no
// remote is needed.
func Open(cache store.Cache, engine *tsync.Engine, logger *slog.Logger) (*Session, error) {
	if cache == nil {
		return nil, errors.New("app: cache required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	st, err := cache.Restore()
	if err != nil {
		logger.Warn("local cache unusable, starting fresh", "path", cache.Path(), "err", err)
	}
	return &Session{State: st, cache: cache, engine: engine, log: logger}, nil
}

// Apply runs c and saves the result. The returned flag reports whether c had
// an effect; the state is saved either way, since a rejected finish still
// ends the edit session.
func (s *Session) Apply(c state.Command) (bool, error) {
	applied := s.State.Apply(c)
	s.log.Debug("command", "cmd", c.String(), "applied", applied)
	return applied, s.Save()
}

// Save writes the current state to the local cache.
func (s *Session) Save() error {
	return s.cache.Store(s.State)
}

// Pull replaces the state with the remote snapshot and saves it.
func (s *Session) Pull(ctx context.Context) error {
	if s.engine == nil {
		return ErrNoRemote
	}
	if err := s.engine.Pull(ctx, s.State); err != nil {
		return err
	}
	return s.Save()
}

// Push sends the state to the remote. The local state is not changed.
func (s *Session) Push(ctx context.Context) error {
	if s.engine == nil {
		return ErrNoRemote
	}
	return s.engine.Push(ctx, s.State)
}

// Reset discards the cached state and starts over from a fresh one.
func (s *Session) Reset() error {
	if err := s.cache.Reset(); err != nil {
		return err
	}
	s.State = state.New()
	return nil
}
