//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_test
package vehicle

import (
	"context"

	"brokerage/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, vehicle entities.Vehicle) (*entities.Vehicle, error)
	Update(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error)
	GetByID(ctx context.Context, vehicleID int64) (*entities.Vehicle, error)
	GetByDriver(ctx context.Context, driverID int64) (*entities.Vehicle, error)
	ListAll(ctx context.Context) ([]entities.Vehicle, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, userID int64) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
