package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a snapshot change notification.
type EventType int

const (
	// EventSnapshotReplaced indicates the slot was written, by this process
	// or another one.
	EventSnapshotReplaced EventType = iota

	// EventSnapshotRemoved indicates the slot file disappeared.
	EventSnapshotRemoved

	// EventWatchError is emitted when the watcher reports an error. Callers
	// should treat it like a replace and re-read.
	EventWatchError
)

func (t EventType) String() string {
	switch t {
	case EventSnapshotReplaced:
		return "replaced"
	case EventSnapshotRemoved:
		return "removed"
	case EventWatchError:
		return "error"
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Event is emitted by Slot.Watch when the snapshot file changes.
type Event struct {
	Type EventType
	Path string
}

// Watch streams change events for the slot until ctx is cancelled. The
// parent directory is watched rather than the file, since each Write swaps the
// file out by rename. Callers should drain the returned channel; events are
// dropped when it is full.
func (s *Slot) Watch(ctx context.Context) (<-chan Event, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure snapshot dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				slog.Warn("watcher close", "err", err)
			}
		})
	}
	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("snapshot watch", "path", s.path, "err", err)
				throttle.Enqueue(Event{Type: EventWatchError, Path: s.path}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != s.path {
					continue
				}
				switch {
				case evt.Op&(fsnotify.Create|fsnotify.Write) != 0:
					throttle.Enqueue(Event{Type: EventSnapshotReplaced, Path: s.path}, send)
				case evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
					throttle.Enqueue(Event{Type: EventSnapshotRemoved, Path: s.path}, send)
				}
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces bursts of notifications so consumers re-read once
// per burst instead of on every filesystem event.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]string
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]string),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.pending[ev.Type] = ev.Path
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush sends while holding the lock so that nothing is sent once Stop has
// returned and the events channel may be closed.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	pending := t.pending
	t.pending = make(map[EventType]string)
	t.timer = nil

	for eventType, path := range pending {
		send(Event{Type: eventType, Path: path})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
