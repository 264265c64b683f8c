package order

import (
	"fmt"
	"strings"

	"brokerage/internal/entities"
)

func validateOrderCreate(orderCreate OrderCreate) error {
	if strings.TrimSpace(orderCreate.StartLocation) == "" ||
		strings.TrimSpace(orderCreate.EndLocation) == "" {
		return fmt.Errorf("%w: start and end locations", ErrMissingRequiredFields)
	}
	if !orderCreate.WeightKg.IsPositive() {
		return ErrInvalidWeight
	}
	return nil
}

// validateOrderAccess — проверка владения при чтении заказа: клиент видит
// только свой заказ, водитель — только назначенный на него, стафф — любой.
func validateOrderAccess(o *entities.Order, actor entities.Actor) error {
	switch {
	case actor.IsStaff():
		return nil
	case actor.IsCustomer():
		if o.CustomerID != actor.UserID {
			return fmt.Errorf("%w: order belongs to another customer", ErrAccessDenied)
		}
		return nil
	case actor.IsDriver():
		if o.DriverID == nil || *o.DriverID != actor.UserID {
			return fmt.Errorf("%w: order is not assigned to this driver", ErrAccessDenied)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown role %s", ErrAccessDenied, actor.Role)
	}
}
