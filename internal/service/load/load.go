package load

import (
	"context"
	"fmt"

	"loadboard/internal/entities"
)

type Load struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Load {
	return &Load{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateLoad публикует новый груз от имени actor, груз создаётся в статусе open.
func (s *Load) CreateLoad(ctx context.Context, actor entities.Principal, loadModifyEntity entities.LoadModify) (*entities.Load, error) {
	if !actor.IsShipper() && !actor.IsAdmin() {
		return nil, ErrRoleCannotPost
	}

	if loadModifyEntity.Origin == nil || loadModifyEntity.Destination == nil || loadModifyEntity.Rate == nil {
		return nil, ErrMissingRequiredFields
	}

	if err := validateTerms(loadModifyEntity); err != nil {
		return nil, err
	}

	loadModifyEntity.ShipperID = &actor.UserID

	createdLoad, err := s.repository.Create(ctx, loadModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("create load: %w", err)
	}

	return createdLoad, nil
}

func (s *Load) GetLoad(ctx context.Context, id int64) (*entities.Load, error) {
	if id <= 0 {
		return nil, ErrInvalidLoadID
	}

	loadEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get load: %w", err)
	}

	return loadEntity, nil
}

func (s *Load) ListLoads(ctx context.Context, filter entities.LoadFilter) ([]entities.Load, error) {
	if filter.MinRate != nil && *filter.MinRate < 0 {
		return nil, ErrInvalidRate
	}
	if filter.MaxWeight != nil && *filter.MaxWeight < 0 {
		return nil, ErrInvalidWeight
	}

	loads, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list loads: %w", err)
	}

	return loads, nil
}

// UpdateTerms меняет условия груза. Разрешено только владельцу и только пока груз open.
func (s *Load) UpdateTerms(ctx context.Context, actor entities.Principal, loadModifyEntity entities.LoadModify) (*entities.Load, error) {
	if loadModifyEntity.ID == nil || *loadModifyEntity.ID <= 0 {
		return nil, ErrInvalidLoadID
	}

	if err := validateTerms(loadModifyEntity); err != nil {
		return nil, err
	}

	var updatedLoad *entities.Load

	trErr := s.txManager.Do(ctx, func(ctx context.Context) error {
		currentLoad, err := s.repository.GetByID(ctx, *loadModifyEntity.ID)
		if err != nil {
			return fmt.Errorf("get load: %w", err)
		}

		if currentLoad.ShipperID != actor.UserID {
			return ErrNotOwner
		}

		if currentLoad.Status != entities.LoadOpen {
			return ErrLoadNotOpen
		}

		updatedLoad, err = s.repository.UpdateTermsIfOpen(ctx, loadModifyEntity)
		if err != nil {
			return fmt.Errorf("update load terms: %w", err)
		}

		return nil
	})
	if trErr != nil {
		return nil, trErr
	}

	return updatedLoad, nil
}

func validateTerms(loadModifyEntity entities.LoadModify) error {
	if loadModifyEntity.Origin != nil && !isValidPlace(*loadModifyEntity.Origin) {
		return ErrInvalidOrigin
	}
	if loadModifyEntity.Destination != nil && !isValidPlace(*loadModifyEntity.Destination) {
		return ErrInvalidDestination
	}
	if loadModifyEntity.Rate != nil && !isValidRate(*loadModifyEntity.Rate) {
		return ErrInvalidRate
	}
	if loadModifyEntity.Weight != nil && !isValidWeight(*loadModifyEntity.Weight) {
		return ErrInvalidWeight
	}

	return nil
}
