package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         int64
	CustomerID int64
	DriverID   *int64
	VehicleID  *int64
	Status     OrderStatusType
	Price      decimal.Decimal
	CreatedAt  time.Time
}

// OrderDetails — заказ вместе с принадлежащими ему route и cargo (1:1).
type OrderDetails struct {
	Order Order
	Route Route
	Cargo Cargo
}

type OrderStatusType string

const (
	OrderPending          OrderStatusType = "PENDING"
	OrderAssigned         OrderStatusType = "ASSIGNED"
	OrderInTransit        OrderStatusType = "IN_TRANSIT"
	OrderWaitingUnloading OrderStatusType = "WAITING_UNLOADING"
	OrderDelivered        OrderStatusType = "DELIVERED"
	OrderCancelled        OrderStatusType = "CANCELLED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// StatusID возвращает числовой id статуса из справочника order_statuses.
// Нулевое значение означает неизвестный статус.
func (s OrderStatusType) StatusID() int64 {
	switch s {
	case OrderPending:
		return 1
	case OrderAssigned:
		return 2
	case OrderInTransit:
		return 3
	case OrderWaitingUnloading:
		return 4
	case OrderDelivered:
		return 5
	case OrderCancelled:
		return 6
	default:
		return 0
	}
}

func OrderStatusByID(id int64) (OrderStatusType, bool) {
	switch id {
	case 1:
		return OrderPending, true
	case 2:
		return OrderAssigned, true
	case 3:
		return OrderInTransit, true
	case 4:
		return OrderWaitingUnloading, true
	case 5:
		return OrderDelivered, true
	case 6:
		return OrderCancelled, true
	default:
		return "", false
	}
}

type OrderModify struct {
	ID        *int64
	DriverID  *int64
	VehicleID *int64
	Status    *OrderStatusType
}

type Route struct {
	ID            int64
	OrderID       int64
	StartLocation string
	EndLocation   string
	Distance      decimal.Decimal
	EstimatedTime time.Time
}

type Cargo struct {
	ID       int64
	OrderID  int64
	Type     string
	WeightKg decimal.Decimal
}

type OrderLocation struct {
	ID        int64
	OrderID   int64
	Latitude  float64
	Longitude float64
	Comment   *string
	Timestamp time.Time
}

// PriceQuote — расчёт цены без создания заказа.
type PriceQuote struct {
	StartLocation string
	EndLocation   string
	CargoType     string
	WeightKg      decimal.Decimal
	Distance      decimal.Decimal
	Price         decimal.Decimal
}
