package notification_message

import (
	"fmt"

	"brokerage/internal/entities"
)

type MessageFactory struct{}

func New() *MessageFactory {
	return &MessageFactory{}
}

// StatusChangedMessage — человекочитаемый текст нотификации по статусу заказа.
func (f *MessageFactory) StatusChangedMessage(event entities.OrderStatusChangedEvent) string {
	switch event.Status {
	case entities.OrderPending:
		return fmt.Sprintf("Order #%d has been created and is waiting for a driver", event.OrderID)
	case entities.OrderAssigned:
		return fmt.Sprintf("A driver has been assigned to order #%d", event.OrderID)
	case entities.OrderInTransit:
		return fmt.Sprintf("Order #%d is on its way", event.OrderID)
	case entities.OrderWaitingUnloading:
		return fmt.Sprintf("Order #%d has arrived and is waiting for unloading", event.OrderID)
	case entities.OrderDelivered:
		return fmt.Sprintf("Order #%d has been delivered", event.OrderID)
	case entities.OrderCancelled:
		return fmt.Sprintf("Order #%d has been cancelled", event.OrderID)
	default:
		return ""
	}
}
