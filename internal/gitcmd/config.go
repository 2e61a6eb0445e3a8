package gitcmd

import "time"

type Config struct {
	// Binary is the git executable to invoke. Defaults to "git" on PATH.
	Binary string
	// Timeout bounds each invocation. Zero disables the bound.
	Timeout time.Duration
}
