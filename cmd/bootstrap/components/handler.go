package components

import (
	"wheel-promo-api/internal/handler"
	"wheel-promo-api/internal/handler/api"
	"wheel-promo-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewWheelHandler,
		api.NewCouponHandler,
		api.NewAdminSegmentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
