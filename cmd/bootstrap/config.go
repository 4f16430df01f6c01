package bootstrap

import (
	"rsvp-service/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadDefault,
	),
)
