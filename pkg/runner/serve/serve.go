// Package serve runs the snapshot server that clients push to and pull from.
package serve

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/server"
	"tableflip.dev/tasktree/pkg/store"
)

// Serve coordinates server startup and shutdown.
type Serve struct {
	Config store.Config

	// ListenAddr overrides Config.ListenAddr when set.
	ListenAddr string
	// LogFile sends logs to a rotated file instead of stderr.
	LogFile string
	// Watch logs every change to the snapshot file, pushes served here
	// included.
	Watch bool

	OnListening func(net.Addr)
}

// Do serves until ctx is cancelled or the process receives SIGINT or SIGTERM.
func (n *Serve) Do(ctx context.Context) error {
	if n.Config == nil {
		return errors.New("serve requires config")
	}

	var w io.Writer = os.Stderr
	if n.LogFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   n.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		defer rotated.Close()
		w = rotated
	}
	logger, err := app.NewLogger(w, n.Config.LogLevel())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slot := store.NewSlot(n.Config.TasksPath())
	if n.Watch {
		events, err := slot.Watch(ctx)
		if err != nil {
			return err
		}
		go logEvents(logger, events)
	}

	addr := n.ListenAddr
	if addr == "" {
		addr = n.Config.ListenAddr()
	}
	srv := server.New(server.Config{Slot: slot, Logger: logger})
	err = srv.Serve(ctx, addr, n.OnListening)
	logger.Info("stopped")
	return err
}

func logEvents(logger *slog.Logger, events <-chan store.Event) {
	for ev := range events {
		logger.Info("snapshot file changed", "event", ev.Type.String(), "path", ev.Path)
	}
}
