package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListModels(ctx context.Context, db *gorm.DB) ([]PricingModel, error)
	FindModelByID(ctx context.Context, db *gorm.DB, id string) (*PricingModel, error)
	FindModelByName(ctx context.Context, db *gorm.DB, name string) (*PricingModel, error)
	InsertModel(ctx context.Context, db *gorm.DB, model *PricingModel) error
	UpdateModelName(ctx context.Context, db *gorm.DB, id, name string) error

	ListPrices(ctx context.Context, db *gorm.DB, modelID string) ([]Price, error)
	FindPriceByName(ctx context.Context, db *gorm.DB, modelID, name string) (*Price, error)
	InsertPrice(ctx context.Context, db *gorm.DB, price *Price) error
	DeletePrice(ctx context.Context, db *gorm.DB, modelID, priceID string) (int64, error)
}
