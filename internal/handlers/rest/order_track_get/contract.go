//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_track_get_test
package order_track_get

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
	GetOrderTracking(ctx context.Context, actor entities.Actor, orderID int64) ([]entities.OrderLocation, error)
}
