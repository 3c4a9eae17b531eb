package components

import (
	"trainhub/internal/pkg/clock"
	"trainhub/internal/usecase/commands"
	"trainhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewDraftCommands,
		commands.NewReviewCommands,
		commands.NewComponentCommands,
		commands.NewPublicationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBundleQueries,
		queries.NewPublicationQueries,
		queries.NewActivityQueries,
	),
)
