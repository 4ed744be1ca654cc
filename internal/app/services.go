package app

import (
	"github.com/rs/zerolog"

	"github.com/guttosm/rocket-sim/config"
	"github.com/guttosm/rocket-sim/internal/i18n"
	"github.com/guttosm/rocket-sim/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Launch service.LaunchPlanner
	Cargo  service.CargoLoader
}

// InitializeServices initializes business logic services. Cargo progress
// lines go to sink.
func InitializeServices(cfg config.Config, sink service.OutputSink, log zerolog.Logger) *ServiceComponents {
	launch := service.NewLaunchService(
		service.WithLaunchLogger(log),
	)

	cargo := service.NewCargoLoaderService(
		service.WithSink(sink),
		service.WithTranslator(i18n.GetTranslator(), cfg.Locale),
		service.WithLogger(log),
	)

	return &ServiceComponents{
		Launch: launch,
		Cargo:  cargo,
	}
}
