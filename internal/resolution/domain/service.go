package domain

import (
	"context"

	pricingdomain "github.com/smallbiznis/fleetrate/internal/pricingmodel/domain"
)

type Service interface {
	// EffectivePricing returns the price list that applies to a machine at
	// resolution time: the assigned model's increments, or a fresh copy of
	// the configured default when the machine has no assignment.
	EffectivePricing(ctx context.Context, machineID string) ([]pricingdomain.Price, error)
}
