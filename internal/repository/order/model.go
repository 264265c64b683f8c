package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID         int64
	CustomerID int64
	DriverID   *int64
	VehicleID  *int64
	Status     string
	Price      decimal.Decimal
	CreatedAt  time.Time
}

type RouteDB struct {
	ID            int64
	OrderID       int64
	StartLocation string
	EndLocation   string
	Distance      decimal.Decimal
	EstimatedTime time.Time
}

type CargoDB struct {
	ID       int64
	OrderID  int64
	Type     string
	WeightKg decimal.Decimal
}

// OrderDetailsDB — строка джойна orders + routes + cargo.
type OrderDetailsDB struct {
	Order OrderDB
	Route RouteDB
	Cargo CargoDB
}

type LocationDB struct {
	ID        int64
	OrderID   int64
	Latitude  float64
	Longitude float64
	Comment   *string
	Timestamp time.Time
}
