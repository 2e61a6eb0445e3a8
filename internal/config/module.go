package config

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"

	"github.com/repodeck/repodeck/internal/gitcmd"
	"github.com/repodeck/repodeck/internal/projects"
)

func Module(path string) fx.Option {
	return fx.Module(
		"config",
		fx.Provide(func(validate *validator.Validate) (Config, error) {
			return New(path, validate)
		}),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) gitcmd.Config {
			return gitcmd.Config{
				Binary:  cfg.Git.Binary,
				Timeout: cfg.Git.Timeout,
			}
		}),
		fx.Provide(func(cfg Config) projects.Config {
			return projects.Config{
				Groups: newGroups(cfg),
			}
		}),
	)
}

// newGroups flattens the document into the read-only structure the projects
// service operates on. Ungrouped projects land in a single anonymous group.
func newGroups(cfg Config) []projects.Group {
	groups := make([]projects.Group, 0, len(cfg.Groups)+1)

	if len(cfg.Projects) > 0 {
		groups = append(groups, projects.Group{
			Name:     "",
			Projects: newProjects(cfg.Projects),
		})
	}

	for _, group := range cfg.Groups {
		groups = append(groups, projects.Group{
			Name:     group.Name,
			Projects: newProjects(group.Projects),
		})
	}

	return groups
}

func newProjects(configs []projectConfig) []projects.Project {
	result := make([]projects.Project, len(configs))
	for i, p := range configs {
		result[i] = projects.Project{
			Name:   p.Name,
			Path:   p.Path,
			GitDir: p.GitDir,
		}
	}

	return result
}
