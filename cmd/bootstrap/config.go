package bootstrap

import (
	"wheel-promo-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.WheelConfig { return cfg.Wheel },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	),
)
