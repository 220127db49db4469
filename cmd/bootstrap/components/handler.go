package components

import (
	"hotel-booking-core/internal/handler"
	"hotel-booking-core/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewCatalogHandler,
	),
	fx.Invoke(handler.NewRouter),
)
