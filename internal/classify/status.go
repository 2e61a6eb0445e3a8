package classify

// Status is the closed set of classification outcomes, ordered most severe
// first. The ordering is a precedence contract: classification stops at the
// first applicable value and never overwrites it with a later check's answer.
type Status int

const (
	StatusPathNotFound Status = iota
	StatusNotAGitRepo
	StatusNoCommitsYet
	StatusUnknownError
	StatusUntrackedFiles
	StatusUncommittedChanges
	StatusUnpushedChanges
	StatusUnpulledChanges
	StatusOkay
)

var statusLabels = map[Status]string{
	StatusPathNotFound:       "Path Not Found",
	StatusNotAGitRepo:        "Not a Git Repository",
	StatusNoCommitsYet:       "No Commits Yet",
	StatusUnknownError:       "Unknown Error",
	StatusUntrackedFiles:     "Untracked Files",
	StatusUncommittedChanges: "Uncommitted Changes",
	StatusUnpushedChanges:    "Unpushed Changes",
	StatusUnpulledChanges:    "Unpulled Changes",
	StatusOkay:               "Okay",
}

func (s Status) String() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}

	return "Unknown Error"
}
