package service

import (
	"context"

	"github.com/smallbiznis/fleetrate/internal/config"
	machinedomain "github.com/smallbiznis/fleetrate/internal/machine/domain"
	pricingdomain "github.com/smallbiznis/fleetrate/internal/pricingmodel/domain"
	resolutiondomain "github.com/smallbiznis/fleetrate/internal/resolution/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Machines machinedomain.Service
	Catalog  pricingdomain.Service
	Defaults *config.DefaultPricingHolder
}

type Service struct {
	log      *zap.Logger
	machines machinedomain.Service
	catalog  pricingdomain.Service
	defaults *config.DefaultPricingHolder
}

func New(p Params) resolutiondomain.Service {
	return &Service{
		log:      p.Log.Named("resolution.service"),
		machines: p.Machines,
		catalog:  p.Catalog,
		defaults: p.Defaults,
	}
}

func (s *Service) EffectivePricing(ctx context.Context, machineID string) ([]pricingdomain.Price, error) {
	machine, err := s.machines.GetByID(ctx, machineID)
	if err != nil {
		return nil, err
	}

	if machine.PricingID != "" {
		// A dangling reference surfaces the same not_found as a missing
		// machine; callers cannot tell the two apart.
		model, err := s.catalog.GetByID(ctx, machine.PricingID)
		if err != nil {
			return nil, err
		}
		return model.Pricing, nil
	}

	items := s.defaults.Get()
	pricing := make([]pricingdomain.Price, 0, len(items))
	for _, item := range items {
		pricing = append(pricing, pricingdomain.Price{
			Price: item.Price,
			Name:  item.Name,
			Value: item.Value,
		})
	}
	return pricing, nil
}
