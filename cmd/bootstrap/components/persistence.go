package components

import (
	"trainhub/internal/infra/db"
	"trainhub/internal/infra/readstore"
	"trainhub/internal/infra/uow"
	"trainhub/internal/infra/writerepo"
	"trainhub/internal/usecase/queries"
	"trainhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBundleReadStore,
			fx.As(new(queries.BundleReadStore)),
		),
		fx.Annotate(
			readstore.NewPublicationReadStore,
			fx.As(new(queries.PublicationReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewActivityReadStore,
			fx.As(new(queries.ActivityReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			writerepo.NewDraftRepository,
			fx.As(new(shared.DraftRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
