package classify

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"classify",
		logger.WithNamedLogger("classify"),
		fx.Provide(NewClassifier),
	)
}
