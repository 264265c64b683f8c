//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"brokerage/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	CreateRoute(ctx context.Context, route entities.Route) (*entities.Route, error)
	CreateCargo(ctx context.Context, cargo entities.Cargo) (*entities.Cargo, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)

	GetByID(ctx context.Context, orderID int64) (*entities.Order, error)
	GetDetailsByID(ctx context.Context, orderID int64) (*entities.OrderDetails, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]entities.OrderDetails, error)
	ListByDriver(ctx context.Context, driverID int64) ([]entities.OrderDetails, error)
	ListAll(ctx context.Context) ([]entities.OrderDetails, error)

	AddLocation(ctx context.Context, location entities.OrderLocation) (*entities.OrderLocation, error)
	ListLocations(ctx context.Context, orderID int64) ([]entities.OrderLocation, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, userID int64) (*entities.User, error)
}

type VehicleRepository interface {
	GetByID(ctx context.Context, vehicleID int64) (*entities.Vehicle, error)
}

// StatusRepository — справочник order_statuses. Статусы захардкожены в коде,
// но создание заказа обязано падать, если строки PENDING нет в БД.
type StatusRepository interface {
	GetByID(ctx context.Context, statusID int64) (entities.OrderStatusType, error)
	GetByName(ctx context.Context, status entities.OrderStatusType) (int64, error)
}

// Pricing — движок ценообразования и оценка дистанции. Оценка дистанции —
// заглушка, контракт позволяет подменить её настоящим routing API.
type Pricing interface {
	CalculatePrice(distanceKm, weightKg decimal.Decimal, cargoType string) decimal.Decimal
	EstimateDistance(startLocation, endLocation string) decimal.Decimal
}

type RouteTimeFactory interface {
	EstimateArrival(distanceKm decimal.Decimal, baseTime time.Time) time.Time
}

// Events — fire-and-forget публикация событий смены статуса. Ошибки публикации
// не возвращаются: нотификации не должны откатывать транзакцию заказа.
type Events interface {
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}
