package store

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/tasktree/pkg/state"
)

// StateKey is the single key the local cache stores the snapshot under.
const StateKey = "tasktree.state"

// Cache is the local copy of the state, written after every command.
type Cache interface {
	// Restore returns the cached state, or a fresh one when nothing usable is
	// cached. A non-nil error explains why a fresh state was returned.
	Restore() (*state.State, error)
	Store(s *state.State) error
	Reset() error
	Path() string
}

// LoadCache opens the diskv-backed cache under cfg.BasePath().
func LoadCache(cfg Config) (Cache, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: cache path unknown")
	}
	return &cache{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, ".tmp"),
		AdvancedTransform: flatTransform,
		InverseTransform:  flatInverseTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type cache struct {
	d        *diskv.Diskv
	basePath string
}

func (c *cache) Restore() (*state.State, error) {
	val, err := c.d.Read(StateKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return state.New(), nil
		}
		return state.New(), fmt.Errorf("store: read cache: %w", err)
	}
	return state.Restore(val)
}

func (c *cache) Store(s *state.State) error {
	data, err := state.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: encode state: %w", err)
	}
	if err := c.d.Write(StateKey, data); err != nil {
		return fmt.Errorf("store: write cache: %w", err)
	}
	return nil
}

func (c *cache) Reset() error {
	if !c.d.Has(StateKey) {
		return nil
	}
	return c.d.Erase(StateKey)
}

func (c *cache) Path() string {
	return filepath.Join(c.basePath, StateKey)
}

func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func flatInverseTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
