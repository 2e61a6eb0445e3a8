package projects

import (
	"time"

	"github.com/google/uuid"

	"github.com/repodeck/repodeck/internal/classify"
)

// Project is one configured working directory. It is immutable after load;
// classification results live in a side table (Result), never on the Project.
type Project struct {
	Name   string // display label
	Path   string // absolute path to the working directory
	GitDir string // optional metadata store override; empty means Path/.git
}

// Group is a named collection of projects, purely organizational.
type Group struct {
	Name     string
	Projects []Project
}

// Config is the read-only project structure built once at startup.
type Config struct {
	Groups []Group
}

// Result attaches one classification outcome to its project for the duration
// of a single pass.
type Result struct {
	Project Project
	Status  classify.Status
}

// GroupResult mirrors a configured group with its per-project results.
type GroupResult struct {
	Name    string
	Results []Result
}

// Pass is one complete classification sweep across all configured projects.
type Pass struct {
	ID        uuid.UUID
	StartedAt time.Time
	Duration  time.Duration
	Groups    []GroupResult
}

// Results flattens the pass into a single slice, group order preserved.
func (p Pass) Results() []Result {
	var all []Result
	for _, group := range p.Groups {
		all = append(all, group.Results...)
	}

	return all
}
