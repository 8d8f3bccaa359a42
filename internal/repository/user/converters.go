package user

import (
	"loadboard/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:        u.ID,
		Role:      entities.RoleType(u.Role),
		Name:      u.Name,
		Email:     u.Email,
		Company:   u.Company,
		Phone:     u.Phone,
		MCNumber:  u.MCNumber,
		CreatedAt: u.CreatedAt,
	}
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}
