package repository

import (
	"context"

	machinedomain "github.com/smallbiznis/fleetrate/internal/machine/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() machinedomain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*machinedomain.Machine, error) {
	var m machinedomain.Machine
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, pricing_id FROM machines WHERE id = ?`,
		id,
	).Scan(&m).Error
	if err != nil {
		return nil, err
	}
	if m.ID == "" {
		return nil, nil
	}
	return &m, nil
}

func (r *repo) Assign(ctx context.Context, db *gorm.DB, machineID, modelID string) (int64, error) {
	res := db.WithContext(ctx).Exec(
		`UPDATE machines SET pricing_id = ? WHERE id = ?`,
		modelID,
		machineID,
	)
	return res.RowsAffected, res.Error
}

func (r *repo) ClearAssignment(ctx context.Context, db *gorm.DB, machineID string) (int64, error) {
	// Conditional: only machines with an assignment report a cleared row.
	res := db.WithContext(ctx).Exec(
		`UPDATE machines SET pricing_id = NULL WHERE id = ? AND pricing_id IS NOT NULL`,
		machineID,
	)
	return res.RowsAffected, res.Error
}
