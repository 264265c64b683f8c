package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"brokerage/internal/entities"
	"brokerage/internal/service/notification"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationEntity entities.Notification) (*entities.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, order_id, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, order_id, message, is_read, created_at
	`

	var notificationModel NotificationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		notificationEntity.UserID,
		notificationEntity.OrderID,
		notificationEntity.Message,
		notificationEntity.CreatedAt,
	).Scan(
		&notificationModel.ID,
		&notificationModel.UserID,
		&notificationModel.OrderID,
		&notificationModel.Message,
		&notificationModel.IsRead,
		&notificationModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&notificationModel), nil
}

func (r *Repository) GetByID(ctx context.Context, notificationID int64) (*entities.Notification, error) {
	query := `
		SELECT id, user_id, order_id, message, is_read, created_at
		FROM notifications
		WHERE id = $1
	`

	var notificationModel NotificationDB
	err := r.querier.QueryRow(ctx, query, notificationID).Scan(
		&notificationModel.ID,
		&notificationModel.UserID,
		&notificationModel.OrderID,
		&notificationModel.Message,
		&notificationModel.IsRead,
		&notificationModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository getbyid error: %w", err)
	}

	return ToDomain(&notificationModel), nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]entities.Notification, error) {
	query := `
		SELECT id, user_id, order_id, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1 AND ($2 = false OR is_read = false)
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notificationModels := make([]NotificationDB, 0, 8)
	for rows.Next() {
		var notificationModel NotificationDB
		err := rows.Scan(
			&notificationModel.ID,
			&notificationModel.UserID,
			&notificationModel.OrderID,
			&notificationModel.Message,
			&notificationModel.IsRead,
			&notificationModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		notificationModels = append(notificationModels, notificationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return ToDomainList(notificationModels), nil
}

func (r *Repository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND is_read = false
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository count unread error: %w", err)
	}

	return count, nil
}

func (r *Repository) MarkRead(ctx context.Context, notificationID int64) error {
	query := `
		UPDATE notifications
		SET is_read = true
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, notificationID)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = true
		WHERE user_id = $1 AND is_read = false
	`

	result, err := r.querier.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository mark all read error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM notifications
		WHERE is_read = true AND created_at < $1
	`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository delete read error: %w", err)
	}

	return result.RowsAffected(), nil
}
