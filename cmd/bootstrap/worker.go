package bootstrap

import (
	"context"

	"trainhub/internal/pkg/config"
	"trainhub/internal/usecase/commands"
	"trainhub/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewPublishWorker,
	),
	fx.Invoke(startPublishWorker),
)

func NewPublishWorker(cmds commands.PublicationCommands, cfg config.Config) *worker.PublishWorker {
	return worker.NewPublishWorker(cmds, cfg.Worker.PollInterval)
}

func startPublishWorker(lc fx.Lifecycle, w *worker.PublishWorker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop(ctx)
		},
	})
}
