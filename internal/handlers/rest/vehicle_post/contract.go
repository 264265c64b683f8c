//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_post_test
package vehicle_post

import (
	"context"

	"brokerage/internal/entities"
	"brokerage/internal/service/vehicle"
	"brokerage/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Register(ctx context.Context, actor entities.Actor, vehicleCreate vehicle.VehicleCreate) (*entities.Vehicle, error)
}
