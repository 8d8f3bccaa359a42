package user

import (
	"context"
	"fmt"

	"loadboard/internal/entities"
)

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

func (s *User) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	userEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return userEntity, nil
}

// ListUsers отдаёт справочник пользователей, доступен только админу.
func (s *User) ListUsers(ctx context.Context, actor entities.Principal) ([]entities.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	users, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
