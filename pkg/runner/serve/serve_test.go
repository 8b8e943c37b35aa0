package serve

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tasktree/pkg/state"
	tsync "tableflip.dev/tasktree/pkg/sync"
)

type testConfig struct {
	dir   string
	level string
}

func (t testConfig) BasePath() string   { return t.dir }
func (t testConfig) TasksPath() string  { return filepath.Join(t.dir, "tasks.db") }
func (t testConfig) RemoteURL() string  { return "" }
func (t testConfig) ListenAddr() string { return "127.0.0.1:0" }
func (t testConfig) LogLevel() string {
	if t.level == "" {
		return "error"
	}
	return t.level
}

func TestServeRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	addrCh := make(chan net.Addr, 1)
	done := make(chan error, 1)
	go func() {
		s := Serve{
			Config:      testConfig{dir: dir},
			LogFile:     filepath.Join(dir, "serve.log"),
			Watch:       true,
			OnListening: func(a net.Addr) { addrCh <- a },
		}
		done <- s.Do(ctx)
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-time.After(2 * time.Second):
		t.Fatal("server never started listening")
	}

	engine := tsync.New(&tsync.HTTPRemote{BaseURL: "http://" + addr.String(), Client: http.DefaultClient}, nil)
	local := state.New()
	local.Apply(state.Command{Kind: state.AddTask, Text: "served"})
	require.NoError(t, engine.Push(ctx, local))

	pulled := state.New()
	require.NoError(t, engine.Pull(ctx, pulled))
	assert.Equal(t, "served", pulled.Root.Find(4).Name())
	assert.FileExists(t, filepath.Join(dir, "tasks.db"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeWatchLogsOwnWrites(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "serve.log")
	ctx, cancel := context.WithCancel(context.Background())

	addrCh := make(chan net.Addr, 1)
	done := make(chan error, 1)
	go func() {
		s := Serve{
			Config:      testConfig{dir: dir, level: "info"},
			LogFile:     logFile,
			Watch:       true,
			OnListening: func(a net.Addr) { addrCh <- a },
		}
		done <- s.Do(ctx)
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-time.After(2 * time.Second):
		t.Fatal("server never started listening")
	}

	engine := tsync.New(&tsync.HTTPRemote{BaseURL: "http://" + addr.String(), Client: http.DefaultClient}, nil)
	require.NoError(t, engine.Push(ctx, state.New()))

	assert.Eventually(t, func() bool {
		b, err := os.ReadFile(logFile)
		return err == nil && strings.Contains(string(b), "snapshot file changed")
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeRequiresConfig(t *testing.T) {
	s := Serve{}
	assert.Error(t, s.Do(context.Background()))
}
