//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_quote_post_test
package order_quote_post

import (
	"context"

	"brokerage/internal/entities"
	"brokerage/internal/service/order"
	"brokerage/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	QuotePrice(ctx context.Context, orderCreate order.OrderCreate) (*entities.PriceQuote, error)
}
