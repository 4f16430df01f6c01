package components

import (
	"rsvp-service/internal/infra/manager"

	"go.uber.org/fx"
)

var ManagerModule = fx.Module("manager",
	fx.Provide(
		fx.Annotate(
			manager.New,
			fx.As(new(manager.Rsvp)),
		),
	),
)
