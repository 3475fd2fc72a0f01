package components

import (
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/readstore"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/uow"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/queries"

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
		// Product
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		// Code
		fx.Annotate(
			readstore.NewCodeReadStore,
			fx.As(new(queries.CodeReadStore)),
			fx.As(new(queries.OrderCodeReadStore)),
		),
		// Order
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Notification
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		// Alert
		fx.Annotate(
			readstore.NewAlertReadStore,
			fx.As(new(queries.AlertReadStore)),
		),
		// Analytics
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
	),
)

// Write repositories are owned by the unit of work and reached through shared.Tx.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
