package status

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"brokerage/internal/entities"
	"brokerage/internal/service/order"
)

// Repository — справочник order_statuses. Наполняется миграцией, код не пишет
// в него ничего.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, statusID int64) (entities.OrderStatusType, error) {
	query := `
		SELECT name
		FROM order_statuses
		WHERE id = $1
	`

	var name string
	err := r.querier.QueryRow(ctx, query, statusID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", order.ErrStatusNotFound
		}
		return "", fmt.Errorf("unexpected status repository getbyid error: %w", err)
	}

	return entities.OrderStatusType(name), nil
}

func (r *Repository) GetByName(ctx context.Context, statusName entities.OrderStatusType) (int64, error) {
	query := `
		SELECT id
		FROM order_statuses
		WHERE name = $1
	`

	var id int64
	err := r.querier.QueryRow(ctx, query, string(statusName)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, order.ErrStatusNotFound
		}
		return 0, fmt.Errorf("unexpected status repository getbyname error: %w", err)
	}

	return id, nil
}
