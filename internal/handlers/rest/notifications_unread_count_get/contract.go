//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_unread_count_get_test
package notifications_unread_count_get

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
	UnreadCount(ctx context.Context, actor entities.Actor) (int64, error)
}
