package order

import (
	"fmt"

	"brokerage/internal/entities"
)

// Машина состояний заказа:
//
//	PENDING ──> ASSIGNED ──> IN_TRANSIT ──> WAITING_UNLOADING ──> DELIVERED
//	   │            │             │                  │
//	   └────────────┴─────────────┴──────────────────┴──> CANCELLED
//
// DELIVERED и CANCELLED терминальные: из них нет переходов ни для какой роли.
// Водитель двигает только свой заказ и только по цепочке
// ASSIGNED -> IN_TRANSIT -> WAITING_UNLOADING -> DELIVERED.
// Саппорт и админ могут выставить любой известный статус из любого
// нетерминального — задокументированное право оверрайда.

func isTerminal(status entities.OrderStatusType) bool {
	return status == entities.OrderDelivered || status == entities.OrderCancelled
}

// driverCanTarget — статусы, которые водителю в принципе разрешено выставлять.
func driverCanTarget(target entities.OrderStatusType) bool {
	switch target {
	case entities.OrderInTransit, entities.OrderWaitingUnloading, entities.OrderDelivered:
		return true
	default:
		return false
	}
}

func driverChainAllows(from, to entities.OrderStatusType) bool {
	switch to {
	case entities.OrderInTransit:
		return from == entities.OrderAssigned
	case entities.OrderWaitingUnloading:
		return from == entities.OrderInTransit
	case entities.OrderDelivered:
		return from == entities.OrderWaitingUnloading
	default:
		return false
	}
}

// validateTransition проверяет, может ли actor перевести заказ в newStatus.
func validateTransition(o *entities.Order, newStatus entities.OrderStatusType, actor entities.Actor) error {
	if isTerminal(o.Status) {
		return fmt.Errorf("%w: order is already %s", ErrInvalidTransition, o.Status)
	}

	switch {
	case actor.IsStaff():
		return nil

	case actor.IsDriver():
		if o.DriverID == nil || *o.DriverID != actor.UserID {
			return fmt.Errorf("%w: order is not assigned to this driver", ErrAccessDenied)
		}
		if !driverCanTarget(newStatus) {
			return fmt.Errorf("%w: drivers cannot set status %s", ErrAccessDenied, newStatus)
		}
		if !driverChainAllows(o.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, newStatus)
		}
		return nil

	default:
		return fmt.Errorf("%w: role %s cannot update order status", ErrAccessDenied, actor.Role)
	}
}
