package repository

import (
	"context"

	pricingdomain "github.com/smallbiznis/fleetrate/internal/pricingmodel/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() pricingdomain.Repository {
	return &repo{}
}

func (r *repo) ListModels(ctx context.Context, db *gorm.DB) ([]pricingdomain.PricingModel, error) {
	items := make([]pricingdomain.PricingModel, 0)
	err := db.WithContext(ctx).Raw(
		`SELECT id, name FROM pricingmodels`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindModelByID(ctx context.Context, db *gorm.DB, id string) (*pricingdomain.PricingModel, error) {
	var m pricingdomain.PricingModel
	err := db.WithContext(ctx).Raw(
		`SELECT id, name FROM pricingmodels WHERE id = ?`,
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

func (r *repo) FindModelByName(ctx context.Context, db *gorm.DB, name string) (*pricingdomain.PricingModel, error) {
	var m pricingdomain.PricingModel
	err := db.WithContext(ctx).Raw(
		`SELECT id, name FROM pricingmodels WHERE name = ?`,
		name,
	).Scan(&m).Error
	if err != nil {
		return nil, err
	}
	if m.ID == "" {
		return nil, nil
	}
	return &m, nil
}

func (r *repo) InsertModel(ctx context.Context, db *gorm.DB, m *pricingdomain.PricingModel) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO pricingmodels (id, name) VALUES (?, ?)`,
		m.ID,
		m.Name,
	).Error
}

func (r *repo) UpdateModelName(ctx context.Context, db *gorm.DB, id, name string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE pricingmodels SET name = ? WHERE id = ?`,
		name,
		id,
	).Error
}

func (r *repo) ListPrices(ctx context.Context, db *gorm.DB, modelID string) ([]pricingdomain.Price, error) {
	items := make([]pricingdomain.Price, 0)
	err := db.WithContext(ctx).Raw(
		`SELECT id, price, name, value FROM prices WHERE model_id = ?`,
		modelID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindPriceByName(ctx context.Context, db *gorm.DB, modelID, name string) (*pricingdomain.Price, error) {
	var p pricingdomain.Price
	err := db.WithContext(ctx).Raw(
		`SELECT id, model_id, price, name, value FROM prices WHERE model_id = ? AND name = ?`,
		modelID,
		name,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) InsertPrice(ctx context.Context, db *gorm.DB, p *pricingdomain.Price) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO prices (id, model_id, price, name, value) VALUES (?, ?, ?, ?, ?)`,
		p.ID,
		p.ModelID,
		p.Price,
		p.Name,
		p.Value,
	).Error
}

func (r *repo) DeletePrice(ctx context.Context, db *gorm.DB, modelID, priceID string) (int64, error) {
	res := db.WithContext(ctx).Exec(
		`DELETE FROM prices WHERE model_id = ? AND id = ?`,
		modelID,
		priceID,
	)
	return res.RowsAffected, res.Error
}
