package projects

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/repodeck/repodeck/internal/classify"
)

// Classifier reduces one working directory to a single status.
type Classifier interface {
	Classify(ctx context.Context, workPath, gitDir string) classify.Status
}

type Service struct {
	groups     []Group
	classifier Classifier

	logger *zap.Logger
}

func NewService(config Config, classifier Classifier, logger *zap.Logger) *Service {
	return &Service{
		groups:     config.Groups,
		classifier: classifier,
		logger:     logger,
	}
}

// Snapshot runs one classification pass: every configured project is
// classified concurrently and independently, joined before returning. The
// returned pass is a point-in-time snapshot; nothing is cached or persisted
// across calls.
func (s *Service) Snapshot(ctx context.Context) Pass {
	started := time.Now()

	pass := Pass{
		ID:        uuid.New(),
		StartedAt: started,
		Groups:    make([]GroupResult, len(s.groups)),
	}

	var wg sync.WaitGroup
	for gi, group := range s.groups {
		pass.Groups[gi] = GroupResult{
			Name:    group.Name,
			Results: make([]Result, len(group.Projects)),
		}

		for pi, project := range group.Projects {
			wg.Add(1)

			go func(slot *Result, project Project) {
				defer wg.Done()

				*slot = Result{
					Project: project,
					Status:  s.classifyProject(ctx, project),
				}
			}(&pass.Groups[gi].Results[pi], project)
		}
	}

	wg.Wait()
	pass.Duration = time.Since(started)

	passDuration.Observe(pass.Duration.Seconds())
	for _, result := range pass.Results() {
		statusTotal.WithLabelValues(result.Status.String()).Inc()
	}

	s.logger.Info("classification pass complete",
		zap.String("pass_id", pass.ID.String()),
		zap.Int("projects", len(pass.Results())),
		zap.Duration("duration", pass.Duration))

	return pass
}

// classifyProject is the isolation boundary: whatever goes wrong while
// classifying one project is reduced to UnknownError for that project alone.
func (s *Service) classifyProject(ctx context.Context, project Project) (status classify.Status) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("classification panicked",
				zap.String("project", project.Name),
				zap.Any("panic", r))

			status = classify.StatusUnknownError
		}
	}()

	workPath, gitDir := Resolve(project)

	return s.classifier.Classify(ctx, workPath, gitDir)
}
