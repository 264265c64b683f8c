//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"brokerage/internal/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user entities.User) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByID(ctx context.Context, userID int64) (*entities.User, error)
	UpdateRole(ctx context.Context, userID int64, role entities.RoleType) (*entities.User, error)
}
