package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/smallbiznis/fleetrate/internal/config"
	pricingdomain "github.com/smallbiznis/fleetrate/internal/pricingmodel/domain"
	"github.com/smallbiznis/fleetrate/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Repo     pricingdomain.Repository
	Defaults *config.DefaultPricingHolder
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     pricingdomain.Repository
	defaults *config.DefaultPricingHolder
}

func New(p Params) pricingdomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("pricingmodel.service"),
		repo:     p.Repo,
		defaults: p.Defaults,
	}
}

func (s *Service) List(ctx context.Context) (map[string]any, error) {
	result := map[string]any{
		"default_pricing": s.defaults.Get(),
	}

	models, err := s.repo.ListModels(ctx, s.db)
	if err != nil {
		return nil, s.storeErr(err)
	}

	// One price query per model; the listing is not snapshot-isolated.
	for _, m := range models {
		pricing, err := s.repo.ListPrices(ctx, s.db, m.ID)
		if err != nil {
			return nil, s.storeErr(err)
		}
		result[m.ID] = pricingdomain.Model{ID: m.ID, Name: m.Name, Pricing: pricing}
	}

	return result, nil
}

func (s *Service) Create(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", pricingdomain.ErrNameRequired
	}

	existing, err := s.repo.FindModelByName(ctx, s.db, name)
	if err != nil {
		return "", s.storeErr(err)
	}
	if existing != nil {
		return "", pricingdomain.ErrModelExists
	}

	id := uuid.NewString()
	if err := s.repo.InsertModel(ctx, s.db, &pricingdomain.PricingModel{ID: id, Name: name}); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return "", pricingdomain.ErrModelExists
		}
		return "", s.storeErr(err)
	}

	return id, nil
}

func (s *Service) Update(ctx context.Context, id, name string) (string, error) {
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return "", pricingdomain.ErrNameIDRequired
	}

	// The conflict check is not scoped by id: renaming a model to its own
	// current name is rejected the same way as a real conflict.
	existing, err := s.repo.FindModelByName(ctx, s.db, name)
	if err != nil {
		return "", s.storeErr(err)
	}
	if existing != nil {
		return "", pricingdomain.ErrModelExists
	}

	if err := s.repo.UpdateModelName(ctx, s.db, id, name); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return "", pricingdomain.ErrModelExists
		}
		return "", s.storeErr(err)
	}

	return id, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*pricingdomain.Model, error) {
	if id == "" {
		return nil, pricingdomain.ErrIDRequired
	}

	entity, err := s.repo.FindModelByID(ctx, s.db, id)
	if err != nil {
		return nil, s.storeErr(err)
	}
	if entity == nil {
		return nil, pricingdomain.ErrNotFound
	}

	pricing, err := s.repo.ListPrices(ctx, s.db, id)
	if err != nil {
		return nil, s.storeErr(err)
	}

	return &pricingdomain.Model{ID: entity.ID, Name: entity.Name, Pricing: pricing}, nil
}

func (s *Service) GetPrices(ctx context.Context, id string) ([]pricingdomain.Price, error) {
	if id == "" {
		return nil, pricingdomain.ErrIDRequired
	}

	// No existence check here: List and GetByID reuse this path without a
	// second round trip, and an unknown model yields an empty list.
	pricing, err := s.repo.ListPrices(ctx, s.db, id)
	if err != nil {
		return nil, s.storeErr(err)
	}
	return pricing, nil
}

func (s *Service) AddPrice(ctx context.Context, modelID string, req pricingdomain.AddPriceRequest) (string, error) {
	if modelID == "" {
		return "", pricingdomain.ErrIDRequired
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", pricingdomain.ErrPriceNameRequired
	}

	existing, err := s.repo.FindPriceByName(ctx, s.db, modelID, name)
	if err != nil {
		return "", s.storeErr(err)
	}
	if existing != nil {
		return "", pricingdomain.ErrPriceExists
	}

	entity := &pricingdomain.Price{
		ID:      uuid.NewString(),
		ModelID: modelID,
		Price:   req.Price,
		Name:    name,
		Value:   req.Value,
	}
	if err := s.repo.InsertPrice(ctx, s.db, entity); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return "", pricingdomain.ErrPriceExists
		}
		return "", s.storeErr(err)
	}

	return entity.ID, nil
}

func (s *Service) RemovePrice(ctx context.Context, modelID, priceID string) (bool, error) {
	if modelID == "" || priceID == "" {
		return false, pricingdomain.ErrPriceAndIDRequired
	}

	deleted, err := s.repo.DeletePrice(ctx, s.db, modelID, priceID)
	if err != nil {
		return false, s.storeErr(err)
	}
	return deleted != 0, nil
}

// storeErr normalizes infrastructure failures. A malformed identifier rejected
// by the store's uuid type is an expected client mistake and behaves as a
// plain miss; everything else is logged and propagated opaque.
func (s *Service) storeErr(err error) error {
	if db.IsInvalidIdentifierErr(err) {
		return pricingdomain.ErrNotFound
	}
	s.log.Error("query failed", zap.Error(err))
	return err
}
