package components

import (
	"wheel-promo-api/internal/infra/db"
	"wheel-promo-api/internal/infra/readstore"
	"wheel-promo-api/internal/infra/uow"
	"wheel-promo-api/internal/usecase/commands"
	"wheel-promo-api/internal/usecase/queries"
	"wheel-promo-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewSegmentReadStore,
			fx.As(new(queries.SegmentReadStore)),
			fx.As(new(queries.AdminSegmentReadStore)),
		),
		fx.Annotate(
			readstore.NewSpinReadStore,
			fx.As(new(queries.SpinReadStore)),
		),
		fx.Annotate(
			readstore.NewPendingSpinReadStore,
			fx.As(new(queries.PendingSpinReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.UserAuthReadStore)),
		),
	),
)

// NewDBTX exposes the pool under the narrow query interface the readstores
// consume; transactional callers receive their DBTX from the unit of work
// instead.
func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
