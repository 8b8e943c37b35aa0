package sync

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tableflip.dev/tasktree/pkg/state"
	"tableflip.dev/tasktree/pkg/store"
)

// HTTPRemote talks to a snapshot server: GET and POST {BaseURL}/tasks.
type HTTPRemote struct {
	BaseURL string
	Client  *http.Client
}

func (r *HTTPRemote) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return http.DefaultClient
}

func (r *HTTPRemote) endpoint() string {
	return strings.TrimRight(r.BaseURL, "/") + "/tasks"
}

func (r *HTTPRemote) Fetch(ctx context.Context) (*state.State, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := r.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNoSnapshot
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: GET %s: %s", ErrTransport, r.endpoint(), statusDetail(resp))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, state.MaxSnapshotBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}
	if len(body) > state.MaxSnapshotBytes {
		return nil, fmt.Errorf("%w: GET %s: snapshot exceeds %d bytes", ErrTransport, r.endpoint(), state.MaxSnapshotBytes)
	}
	st, err := state.Unmarshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return st, nil
}

func (r *HTTPRemote) Replace(ctx context.Context, s *state.State) error {
	body, err := state.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrTransport, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: POST %s: %s", ErrTransport, r.endpoint(), statusDetail(resp))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func statusDetail(resp *http.Response) string {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
	if msg := strings.TrimSpace(string(snippet)); msg != "" {
		return fmt.Sprintf("%s: %s", resp.Status, msg)
	}
	return resp.Status
}

// SlotRemote uses a snapshot file directly, without a server in between.
type SlotRemote struct {
	Slot *store.Slot
}

func (r *SlotRemote) Fetch(ctx context.Context) (*state.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	st, err := r.Slot.Read()
	if errors.Is(err, store.ErrNoSnapshot) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return st, nil
}

func (r *SlotRemote) Replace(ctx context.Context, s *state.State) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err := r.Slot.Write(s); err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return nil
}

// ForURL picks a Remote for raw: http(s) URLs address a snapshot server,
// file URLs (or bare paths) a snapshot file.
func ForURL(raw string, client *http.Client) (Remote, error) {
	if raw == "" {
		return nil, errors.New("sync: remote not configured")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("sync: parse remote %q: %w", raw, err)
	}
	switch u.Scheme {
	case "http", "https":
		return &HTTPRemote{BaseURL: raw, Client: client}, nil
	case "file":
		path := u.Path
		if u.Host != "" {
			path = u.Host + path
		}
		return &SlotRemote{Slot: store.NewSlot(path)}, nil
	case "":
		return &SlotRemote{Slot: store.NewSlot(raw)}, nil
	}
	return nil, fmt.Errorf("sync: unsupported remote scheme %q", u.Scheme)
}
