package notification

import "time"

type NotificationDB struct {
	ID        int64
	UserID    int64
	OrderID   int64
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
