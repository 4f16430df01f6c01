package bootstrap

import (
	"rsvp-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.ManagerModule,
	components.HandlerModule,
)
