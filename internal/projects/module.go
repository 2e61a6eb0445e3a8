package projects

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"

	"github.com/repodeck/repodeck/internal/classify"
)

func Module() fx.Option {
	return fx.Module(
		"projects",
		logger.WithNamedLogger("projects"),
		fx.Provide(func(classifier *classify.Classifier) Classifier { return classifier }, fx.Private),
		fx.Provide(NewService),
	)
}
