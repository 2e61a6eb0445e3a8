package classify

import "strings"

// marker binds a substring of git's diagnostic output to a status. Matching
// is ordered: specific markers precede the generic fatal one.
type marker struct {
	text   string
	status Status
}

// historyMarkers recognize the expected failure modes of the history probe.
// "bad default revision" is the pre-2.6 wording for an empty repository.
var historyMarkers = []marker{
	{"not a git repository", StatusNotAGitRepo},
	{"does not have any commits yet", StatusNoCommitsYet},
	{"bad default revision", StatusNoCommitsYet},
	{"fatal:", StatusUnknownError},
}

// untrackedCode is the porcelain status code pair for an untracked entry.
const untrackedCode = "??"

func matchMarker(stderr string, markers []marker) (Status, bool) {
	diagnostic := strings.ToLower(stderr)
	for _, m := range markers {
		if strings.Contains(diagnostic, m.text) {
			return m.status, true
		}
	}

	return StatusUnknownError, false
}
