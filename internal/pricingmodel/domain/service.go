package domain

import (
	"context"
	"errors"
)

type Service interface {
	// List returns every stored pricing model keyed by id, each enriched with
	// its price increments, plus the configuration-sourced default price list
	// under the "default_pricing" key.
	List(ctx context.Context) (map[string]any, error)
	Create(ctx context.Context, name string) (string, error)
	Update(ctx context.Context, id, name string) (string, error)
	GetByID(ctx context.Context, id string) (*Model, error)
	GetPrices(ctx context.Context, id string) ([]Price, error)
	AddPrice(ctx context.Context, modelID string, req AddPriceRequest) (string, error)
	RemovePrice(ctx context.Context, modelID, priceID string) (bool, error)
}

// Model is a pricing model enriched with its full price list. Pricing is
// always present, empty when the model has no increments.
type Model struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Pricing []Price `json:"pricing"`
}

type AddPriceRequest struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Value int    `json:"value"`
}

var (
	ErrNameRequired       = errors.New("pricemodel_name_required")
	ErrIDRequired         = errors.New("pricemodel_id_required")
	ErrNameIDRequired     = errors.New("pricemodel_name_id_required")
	ErrModelExists        = errors.New("pricemodel_existed")
	ErrPriceNameRequired  = errors.New("price_name_required")
	ErrPriceExists        = errors.New("price_existed")
	ErrPriceAndIDRequired = errors.New("price_id_pricemodel_id_required")
	ErrNotFound           = errors.New("not_found")
)
