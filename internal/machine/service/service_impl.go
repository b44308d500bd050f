package service

import (
	"context"

	machinedomain "github.com/smallbiznis/fleetrate/internal/machine/domain"
	"github.com/smallbiznis/fleetrate/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo machinedomain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo machinedomain.Repository
}

func New(p Params) machinedomain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("machine.service"),
		repo: p.Repo,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (*machinedomain.Response, error) {
	if id == "" {
		return nil, machinedomain.ErrIDRequired
	}

	entity, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, s.storeErr(err)
	}
	if entity == nil {
		return nil, machinedomain.ErrNotFound
	}

	resp := &machinedomain.Response{ID: entity.ID, Name: entity.Name}
	if entity.PricingID != nil {
		resp.PricingID = *entity.PricingID
	}
	return resp, nil
}

func (s *Service) SetPrice(ctx context.Context, machineID, modelID string) (string, error) {
	if machineID == "" || modelID == "" {
		return "", machinedomain.ErrIDAndModelRequired
	}

	updated, err := s.repo.Assign(ctx, s.db, machineID, modelID)
	if err != nil {
		return "", s.storeErr(err)
	}
	if updated == 0 {
		return "", nil
	}
	return machineID, nil
}

func (s *Service) RemovePrice(ctx context.Context, machineID string) (string, error) {
	if machineID == "" {
		return "", machinedomain.ErrIDRequired
	}

	cleared, err := s.repo.ClearAssignment(ctx, s.db, machineID)
	if err != nil {
		return "", s.storeErr(err)
	}
	if cleared == 0 {
		return "", nil
	}
	return machineID, nil
}

func (s *Service) storeErr(err error) error {
	if db.IsInvalidIdentifierErr(err) {
		return machinedomain.ErrNotFound
	}
	s.log.Error("query failed", zap.Error(err))
	return err
}
