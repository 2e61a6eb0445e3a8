package gitcmd

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"gitcmd",
		logger.WithNamedLogger("gitcmd"),
		fx.Provide(NewExecRunner),
		fx.Provide(func(runner *ExecRunner) Runner { return runner }),
	)
}
