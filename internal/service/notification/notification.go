package notification

import (
	"context"
	"fmt"
	"time"

	"brokerage/internal/entities"
)

type Service struct {
	repository Repository
	messages   MessageFactory
}

func New(repository Repository, messages MessageFactory) *Service {
	return &Service{
		repository: repository,
		messages:   messages,
	}
}

// CreateFromStatusEvent персистит нотификацию по событию из кафки.
// Идемпотентности нет: at-least-once доставка может дать дубликат, для
// пользовательской ленты это приемлемо.
func (s *Service) CreateFromStatusEvent(ctx context.Context, event entities.OrderStatusChangedEvent) (*entities.Notification, error) {
	message := s.messages.StatusChangedMessage(event)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	created, err := s.repository.Create(ctx, entities.Notification{
		UserID:    event.CustomerID,
		OrderID:   event.OrderID,
		Message:   message,
		CreatedAt: event.OccurredAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return created, nil
}

func (s *Service) ListNotifications(ctx context.Context, actor entities.Actor, unreadOnly bool) ([]entities.Notification, error) {
	return s.repository.ListByUser(ctx, actor.UserID, unreadOnly)
}

func (s *Service) UnreadCount(ctx context.Context, actor entities.Actor) (int64, error) {
	return s.repository.CountUnread(ctx, actor.UserID)
}

// MarkRead помечает нотификацию прочитанной. Чужую пометить нельзя.
func (s *Service) MarkRead(ctx context.Context, actor entities.Actor, notificationID int64) error {
	current, err := s.repository.GetByID(ctx, notificationID)
	if err != nil {
		return fmt.Errorf("get notification: %w", err)
	}
	if current.UserID != actor.UserID {
		return fmt.Errorf("%w: notification belongs to another user", ErrAccessDenied)
	}
	if current.IsRead {
		return nil
	}
	return s.repository.MarkRead(ctx, notificationID)
}

func (s *Service) MarkAllRead(ctx context.Context, actor entities.Actor) (int64, error) {
	return s.repository.MarkAllRead(ctx, actor.UserID)
}

// PurgeRead удаляет прочитанные нотификации старше retention. Дёргается
// фоновой задачей.
func (s *Service) PurgeRead(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	deleted, err := s.repository.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge notifications: %w", err)
	}
	return deleted, nil
}
