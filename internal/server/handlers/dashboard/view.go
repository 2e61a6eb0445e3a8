package dashboard

import (
	"time"

	"github.com/samber/lo"

	"github.com/repodeck/repodeck/internal/classify"
	"github.com/repodeck/repodeck/internal/projects"
)

const timePrecision = time.Millisecond

type Page struct {
	Groups    []GroupView
	PassID    string
	Generated string
	Duration  string
}

type GroupView struct {
	Name  string
	Cards []Card
}

type Card struct {
	Name   string
	Path   string
	Status string
	Class  string
	Icon   string
}

var statusClasses = map[classify.Status]string{
	classify.StatusPathNotFound:       "path-not-found",
	classify.StatusNotAGitRepo:        "not-a-repo",
	classify.StatusNoCommitsYet:       "no-commits",
	classify.StatusUnknownError:       "unknown-error",
	classify.StatusUntrackedFiles:     "untracked",
	classify.StatusUncommittedChanges: "uncommitted",
	classify.StatusUnpushedChanges:    "unpushed",
	classify.StatusUnpulledChanges:    "unpulled",
	classify.StatusOkay:               "okay",
}

var statusIcons = map[classify.Status]string{
	classify.StatusPathNotFound:       "fa-folder-open",
	classify.StatusNotAGitRepo:        "fa-ban",
	classify.StatusNoCommitsYet:       "fa-inbox",
	classify.StatusUnknownError:       "fa-exclamation-triangle",
	classify.StatusUntrackedFiles:     "fa-question-circle",
	classify.StatusUncommittedChanges: "fa-pencil",
	classify.StatusUnpushedChanges:    "fa-cloud-upload",
	classify.StatusUnpulledChanges:    "fa-cloud-download",
	classify.StatusOkay:               "fa-check-circle",
}

func newPage(pass projects.Pass) Page {
	return Page{
		Groups: lo.Map(pass.Groups, func(group projects.GroupResult, _ int) GroupView {
			return GroupView{
				Name:  group.Name,
				Cards: lo.Map(group.Results, newCard),
			}
		}),
		PassID:    pass.ID.String(),
		Generated: pass.StartedAt.Format("2006-01-02 15:04:05"),
		Duration:  pass.Duration.Round(timePrecision).String(),
	}
}

func newCard(result projects.Result, _ int) Card {
	return Card{
		Name:   result.Project.Name,
		Path:   result.Project.Path,
		Status: result.Status.String(),
		Class:  statusClasses[result.Status],
		Icon:   statusIcons[result.Status],
	}
}
