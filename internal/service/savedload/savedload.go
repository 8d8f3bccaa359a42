package savedload

import (
	"context"
	"fmt"

	"loadboard/internal/entities"
)

type SavedLoad struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *SavedLoad {
	return &SavedLoad{
		repository: repository,
		txManager:  txManager,
	}
}

// Toggle переключает закладку перевозчика на грузе. Возвращает true, если
// закладка добавлена, и false, если существующая снята.
func (s *SavedLoad) Toggle(ctx context.Context, actor entities.Principal, loadID int64) (bool, error) {
	if !actor.IsTrucker() && !actor.IsAdmin() {
		return false, ErrRoleCannotSave
	}
	if loadID <= 0 {
		return false, ErrInvalidLoadID
	}

	var saved bool

	trErr := s.txManager.Do(ctx, func(ctx context.Context) error {
		inserted, err := s.repository.Save(ctx, actor.UserID, loadID)
		if err != nil {
			return fmt.Errorf("save load: %w", err)
		}

		if inserted {
			saved = true
			return nil
		}

		if err := s.repository.Remove(ctx, actor.UserID, loadID); err != nil {
			return fmt.Errorf("remove saved load: %w", err)
		}

		saved = false

		return nil
	})
	if trErr != nil {
		return false, trErr
	}

	return saved, nil
}

// ListSaved возвращает закладки пользователя.
func (s *SavedLoad) ListSaved(ctx context.Context, actor entities.Principal) ([]entities.Load, error) {
	loads, err := s.repository.ListLoadsByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list saved loads: %w", err)
	}

	return loads, nil
}
