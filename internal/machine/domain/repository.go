package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Machine, error)
	Assign(ctx context.Context, db *gorm.DB, machineID, modelID string) (int64, error)
	ClearAssignment(ctx context.Context, db *gorm.DB, machineID string) (int64, error)
}
