package components

import (
	"carental/internal/handler"
	"carental/internal/handler/api"
	"carental/internal/handler/middleware"
	"carental/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig {
			return cfg.Cookie
		},
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCarHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
