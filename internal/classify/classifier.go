package classify

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/repodeck/repodeck/internal/gitcmd"
)

// discoveryEnv lets git find a metadata store that lives on a different
// filesystem than the working directory.
var discoveryEnv = map[string]string{
	"GIT_DISCOVERY_ACROSS_FILESYSTEM": "1",
}

// Classifier reduces a working directory and its metadata store to exactly
// one Status by issuing a bounded, strictly ordered sequence of git queries.
type Classifier struct {
	runner gitcmd.Runner

	logger *zap.Logger
}

func NewClassifier(runner gitcmd.Runner, logger *zap.Logger) *Classifier {
	return &Classifier{
		runner: runner,
		logger: logger,
	}
}

// Classify runs the probes in severity order, short-circuiting on the first
// applicable status. It is deterministic given identical repository state and
// issues at most five external commands per call.
func (c *Classifier) Classify(ctx context.Context, workPath, gitDir string) Status {
	if _, err := os.Stat(workPath); errors.Is(err, fs.ErrNotExist) {
		return StatusPathNotFound
	}

	if status, done := c.probeHistory(ctx, workPath, gitDir); done {
		return status
	}

	if status, done := c.probeWorkingTree(ctx, workPath, gitDir); done {
		return status
	}

	if c.countCommits(ctx, workPath, gitDir, "@{u}..HEAD") > 0 {
		return StatusUnpushedChanges
	}

	if c.countCommits(ctx, workPath, gitDir, "HEAD..@{u}") > 0 {
		return StatusUnpulledChanges
	}

	return StatusOkay
}

// probeHistory asks for the latest history entry. Success means the
// repository exists and has at least one commit; failure is classified
// through the marker table.
func (c *Classifier) probeHistory(ctx context.Context, workPath, gitDir string) (Status, bool) {
	result := c.run(ctx, workPath, gitDir, "log", "-1")
	if result.Succeeded {
		return StatusOkay, false
	}

	if status, ok := matchMarker(result.Stderr, historyMarkers); ok {
		return status, true
	}

	// Spawn failures and unrecognized diagnostics stay local to this project.
	c.logger.Warn("history probe failed without a recognized marker",
		zap.String("path", workPath),
		zap.String("stderr", strings.TrimSpace(result.Stderr)))

	return StatusUnknownError, true
}

// probeWorkingTree parses porcelain status codes. Untracked entries take
// precedence over modified tracked ones.
func (c *Classifier) probeWorkingTree(ctx context.Context, workPath, gitDir string) (Status, bool) {
	result := c.run(ctx, workPath, gitDir, "status", "--porcelain")
	if !result.Succeeded {
		return StatusUnknownError, true
	}

	codes := parseStatusCodes(result.Stdout)
	for _, code := range codes {
		if code == untrackedCode {
			return StatusUntrackedFiles, true
		}
	}

	if len(codes) > 0 {
		return StatusUncommittedChanges, true
	}

	return StatusOkay, false
}

// countCommits counts history entries in the given revision span. A failed
// command or unparseable count reads as zero: a branch with no configured
// upstream reports no divergence in that direction.
func (c *Classifier) countCommits(ctx context.Context, workPath, gitDir, span string) int {
	result := c.run(ctx, workPath, gitDir, "rev-list", "--count", span)
	if !result.Succeeded {
		return 0
	}

	count, err := strconv.Atoi(strings.TrimSpace(result.Stdout))
	if err != nil {
		return 0
	}

	return count
}

func (c *Classifier) run(ctx context.Context, workPath, gitDir string, probe ...string) gitcmd.Result {
	args := append([]string{"--git-dir", gitDir, "--work-tree", workPath}, probe...)

	return c.runner.Run(ctx, workPath, discoveryEnv, args...)
}

// parseStatusCodes extracts the two-character status code pairs from
// porcelain output, discarding blank lines.
func parseStatusCodes(stdout string) []string {
	var codes []string
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 2 || strings.TrimSpace(line) == "" {
			continue
		}

		codes = append(codes, line[:2])
	}

	return codes
}
