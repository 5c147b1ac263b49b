//go:build wireinject
// +build wireinject

package di

import (
	"resa/config"
	"resa/infras/bookingapi"
	"resa/infras/otel"
	"resa/infras/redis"
	"resa/internal/domains/reservation/service"
	"resa/internal/domains/reservation/store"
	"resa/internal/domains/reservation/view"
	"resa/internal/observability/metrics"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	redis.New,
	otel.New,
	bookingapi.New,
)

var observability = wire.NewSet(
	metrics.NewDefault,
)

var reservationDomain = wire.NewSet(
	store.New,
	service.New,
)

// InitializeController assembles the reservation form controller against the
// host-supplied view binding and dialog capability.
func InitializeController(form view.Form, dialog view.Dialog) service.Reservation {
	wire.Build(
		configurations,
		infrastructures,
		observability,
		reservationDomain,
	)

	return nil
}
