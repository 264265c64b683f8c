package entities

import "time"

type Notification struct {
	ID        int64
	UserID    int64
	OrderID   int64
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// OrderStatusChangedEvent — событие в топике order.status.changed.
// Публикуется сервисом заказов, воркер нотификаций превращает его в
// Notification для клиента.
type OrderStatusChangedEvent struct {
	OrderID    int64           `json:"order_id"`
	CustomerID int64           `json:"customer_id"`
	Status     OrderStatusType `json:"status"`
	OccurredAt time.Time       `json:"occurred_at"`
}
