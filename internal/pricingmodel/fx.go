package pricingmodel

import (
	"github.com/smallbiznis/fleetrate/internal/pricingmodel/repository"
	"github.com/smallbiznis/fleetrate/internal/pricingmodel/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pricingmodel.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
