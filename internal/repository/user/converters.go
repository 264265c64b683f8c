package user

import "brokerage/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         entities.RoleType(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

func FromDomain(u *entities.User) *UserDB {
	if u == nil {
		return nil
	}
	return &UserDB{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role.String(),
		CreatedAt:    u.CreatedAt,
	}
}
