//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicles_get_test
package vehicles_get

import (
	"context"

	"brokerage/internal/entities"
	"brokerage/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListVehicles(ctx context.Context, actor entities.Actor) ([]entities.Vehicle, error)
}
