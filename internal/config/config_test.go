package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestNew_FlatProjects(t *testing.T) {
	path := writeConfig(t, `
projects:
  - name: demo
    path: /srv/repos/demo
  - name: bare
    path: /srv/worktrees/bare
    git_dir: /var/git/bare.git
`)

	cfg, err := New(path, validator.New())
	require.NoError(t, err)

	require.Len(t, cfg.Projects, 2)
	assert.Equal(t, "demo", cfg.Projects[0].Name)
	assert.Equal(t, "/srv/repos/demo", cfg.Projects[0].Path)
	assert.Empty(t, cfg.Projects[0].GitDir)
	assert.Equal(t, "/var/git/bare.git", cfg.Projects[1].GitDir)

	// Untouched sections keep their defaults.
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Address)
	assert.Equal(t, "git", cfg.Git.Binary)
}

func TestNew_GroupedProjects(t *testing.T) {
	path := writeConfig(t, `
groups:
  - name: work
    projects:
      - name: api
        path: /srv/api
  - name: personal
    projects:
      - name: blog
        path: /home/me/blog
`)

	cfg, err := New(path, validator.New())
	require.NoError(t, err)

	require.Len(t, cfg.Groups, 2)
	assert.Equal(t, "work", cfg.Groups[0].Name)
	require.Len(t, cfg.Groups[0].Projects, 1)
	assert.Equal(t, "api", cfg.Groups[0].Projects[0].Name)
	assert.Equal(t, 2, cfg.countProjects())
}

func TestNew_MixedFlatAndGrouped(t *testing.T) {
	path := writeConfig(t, `
projects:
  - name: solo
    path: /srv/solo
groups:
  - name: work
    projects:
      - name: api
        path: /srv/api
`)

	cfg, err := New(path, validator.New())
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.countProjects())
}

func TestNew_EmptyProjectListIsFatal(t *testing.T) {
	path := writeConfig(t, `
http:
  address: 0.0.0.0:9000
`)

	_, err := New(path, validator.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoProjects))
}

func TestNew_MissingProjectNameIsFatal(t *testing.T) {
	path := writeConfig(t, `
projects:
  - path: /srv/unnamed
`)

	_, err := New(path, validator.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestNew_MissingProjectPathIsFatal(t *testing.T) {
	path := writeConfig(t, `
groups:
  - name: work
    projects:
      - name: pathless
`)

	_, err := New(path, validator.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestNew_MissingDocumentIsFatal(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.yml"), validator.New())
	require.Error(t, err)
}
