package domain

import (
	"context"
	"errors"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*Response, error)
	// SetPrice assigns a pricing model to a machine, overwriting any prior
	// assignment. It returns the machine id, or "" when no row was updated.
	SetPrice(ctx context.Context, machineID, modelID string) (string, error)
	// RemovePrice clears the assignment when one exists. It returns the
	// machine id, or "" when the machine had nothing to clear.
	RemovePrice(ctx context.Context, machineID string) (string, error)
}

// Response normalizes an absent assignment to an explicit empty value.
type Response struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PricingID string `json:"pricing_id"`
}

var (
	ErrIDRequired         = errors.New("machine_id_required")
	ErrIDAndModelRequired = errors.New("machine_id_pricemodel_id_required")
	ErrNotFound           = errors.New("not_found")
)
