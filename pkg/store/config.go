package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultCachePath = "~/.tasktree"
	defaultTasksPath = "tasks.db"
	defaultRemote    = "http://127.0.0.1:8000"
	defaultListen    = "127.0.0.1:8000"
	defaultLogLevel  = "info"
)

// Config describes where state lives and how to reach the remote.
type Config interface {
	// BasePath is the directory of the local cache.
	BasePath() string
	// TasksPath is the snapshot file the server keeps as the remote authority.
	TasksPath() string
	// RemoteURL is the base URL (or file:// path) pushed to and pulled from.
	RemoteURL() string
	// ListenAddr is the address the server binds.
	ListenAddr() string
	LogLevel() string
}

// LoadConfig reads .tasktree.yaml (from $TASKTREE_CONFIG_PATH or the working
// directory) and TASKTREE_* environment variables, e.g. TASKTREE_TASKS
// selects the server's snapshot file.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultCachePath)
	v.SetDefault("tasks", defaultTasksPath)
	v.SetDefault("remote", defaultRemote)
	v.SetDefault("listen", defaultListen)
	v.SetDefault("log-level", defaultLogLevel)
	v.SetConfigName(".tasktree") // .yaml is implicit
	v.SetEnvPrefix("TASKTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TASKTREE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	base, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand cache path: %w", err)
	}
	tasks, err := homedir.Expand(v.GetString("tasks"))
	if err != nil {
		return nil, fmt.Errorf("store: expand tasks path: %w", err)
	}

	return &fileConfig{
		Path:   base,
		Tasks:  tasks,
		Remote: strings.TrimRight(v.GetString("remote"), "/"),
		Listen: v.GetString("listen"),
		Level:  v.GetString("log-level"),
	}, nil
}

type fileConfig struct {
	Path   string `json:"path"`
	Tasks  string `json:"tasks"`
	Remote string `json:"remote"`
	Listen string `json:"listen"`
	Level  string `json:"log-level"`
}

func (f *fileConfig) BasePath() string   { return f.Path }
func (f *fileConfig) TasksPath() string  { return f.Tasks }
func (f *fileConfig) RemoteURL() string  { return f.Remote }
func (f *fileConfig) ListenAddr() string { return f.Listen }
func (f *fileConfig) LogLevel() string   { return f.Level }
