// Package sync moves whole snapshots between a local state and a remote
// authority. There is no merge: a pull replaces the local state and a push
// replaces the remote one, so the last writer wins.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/tasktree/pkg/state"
)

var (
	// ErrTransport wraps every failure to reach or understand the remote.
	ErrTransport = errors.New("sync: transport failure")
	// ErrNoSnapshot is returned by a pull before anything has been pushed.
	ErrNoSnapshot = fmt.Errorf("%w: no snapshot on remote", ErrTransport)
)

// Remote is a place a snapshot can be fetched from and replaced at.
type Remote interface {
	Fetch(ctx context.Context) (*state.State, error)
	Replace(ctx context.Context, s *state.State) error
}

// Engine runs pulls and pushes against a Remote.
type Engine struct {
	Remote Remote
	Logger *slog.Logger
}

func New(remote Remote, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{Remote: remote, Logger: logger}
}

// Pull replaces st with the remote snapshot. Local changes that were never
// pushed are lost. On error st is left untouched.
func (e *Engine) Pull(ctx context.Context, st *state.State) error {
	fetched, err := e.Remote.Fetch(ctx)
	if err != nil {
		err = asTransport(err)
		e.Logger.Warn("pull failed", "err", err)
		return err
	}
	*st = *fetched
	e.Logger.Info("pulled snapshot", "entries", st.Root.Count(), "latest_id", uint64(st.IDs.LatestID))
	return nil
}

// Push replaces the remote snapshot with a normalized copy of st: no edit in
// progress and the view at the root. st itself is not modified.
func (e *Engine) Push(ctx context.Context, st *state.State) error {
	out := st.Normalized()
	if err := e.Remote.Replace(ctx, out); err != nil {
		err = asTransport(err)
		e.Logger.Warn("push failed", "err", err)
		return err
	}
	e.Logger.Info("pushed snapshot", "entries", out.Root.Count(), "latest_id", uint64(out.IDs.LatestID))
	return nil
}

func asTransport(err error) error {
	if errors.Is(err, ErrTransport) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}
