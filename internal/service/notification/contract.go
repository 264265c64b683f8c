//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
	"time"

	"brokerage/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notification entities.Notification) (*entities.Notification, error)
	GetByID(ctx context.Context, notificationID int64) (*entities.Notification, error)
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]entities.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// MessageFactory строит текст нотификации по событию смены статуса.
type MessageFactory interface {
	StatusChangedMessage(event entities.OrderStatusChangedEvent) string
}
