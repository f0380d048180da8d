package searchfs

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/jmgilman/searchfs/core"
	fserrors "github.com/jmgilman/searchfs/errors"
)

// Config holds resolver configuration loaded from the environment.
type Config struct {
	SearchPath string `envconfig:"SEARCH_PATH"`
	WriteDir   string `envconfig:"WRITE_DIR"`
	MaxPathLen int    `envconfig:"MAX_PATH_LEN" default:"256"`
}

// LoadConfig loads configuration from SEARCHFS_-prefixed environment
// variables: SEARCHFS_SEARCH_PATH, SEARCHFS_WRITE_DIR, SEARCHFS_MAX_PATH_LEN.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("searchfs", &cfg); err != nil {
		return nil, fserrors.Wrap(err, fserrors.CodeFailure, "failed to load config")
	}
	return &cfg, nil
}

// FromEnv creates an FS over the given backend, configured from the
// environment. Unset variables leave the corresponding state unconfigured,
// exactly as if the matching option had been omitted.
func FromEnv(backend core.Backend, opts ...Option) (*FS, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithMaxPathLen(cfg.MaxPathLen),
		WithSearchPath(cfg.SearchPath),
		WithWriteDir(cfg.WriteDir),
	}
	return New(backend, append(base, opts...)...)
}
