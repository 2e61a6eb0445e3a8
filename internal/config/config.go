package config

import (
	"fmt"
	"time"

	"github.com/go-core-fx/config"
	"github.com/go-playground/validator/v10"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`
}

type gitConfig struct {
	Binary  string        `koanf:"binary"`
	Timeout time.Duration `koanf:"timeout"`
}

type projectConfig struct {
	Name   string `koanf:"name"    validate:"required"`
	Path   string `koanf:"path"    validate:"required"`
	GitDir string `koanf:"git_dir"`
}

type groupConfig struct {
	Name     string          `koanf:"name"     validate:"required"`
	Projects []projectConfig `koanf:"projects" validate:"dive"`
}

type Config struct {
	HTTP http      `koanf:"http"`
	Git  gitConfig `koanf:"git"`

	Projects []projectConfig `koanf:"projects" validate:"dive"`
	Groups   []groupConfig   `koanf:"groups"   validate:"dive"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:8080",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
		},

		Git: gitConfig{
			Binary:  "git",
			Timeout: 30 * time.Second,
		},
	}
}

// New loads the configuration document at path on top of the defaults and
// validates it. Any violation is fatal: the caller never starts serving with
// a partially valid configuration.
func New(path string, validate *validator.Validate) (Config, error) {
	cfg := Default()

	if err := config.Load(&cfg, config.WithLocalYAML(path)); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if cfg.countProjects() == 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrNoProjects, path)
	}

	return cfg, nil
}

func (c Config) countProjects() int {
	total := len(c.Projects)
	for _, group := range c.Groups {
		total += len(group.Projects)
	}

	return total
}
