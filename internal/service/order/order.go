package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"brokerage/internal/entities"
	"brokerage/pkg/tx"
)

type Service struct {
	repository  Repository
	users       UserRepository
	vehicles    VehicleRepository
	statuses    StatusRepository
	pricing     Pricing
	timeFactory RouteTimeFactory
	events      Events
	txManager   TxManager
}

func New(
	repository Repository,
	users UserRepository,
	vehicles VehicleRepository,
	statuses StatusRepository,
	pricing Pricing,
	timeFactory RouteTimeFactory,
	events Events,
	txManager TxManager,
) *Service {
	return &Service{
		repository:  repository,
		users:       users,
		vehicles:    vehicles,
		statuses:    statuses,
		pricing:     pricing,
		timeFactory: timeFactory,
		events:      events,
		txManager:   txManager,
	}
}

type OrderCreate struct {
	CargoType     string
	WeightKg      decimal.Decimal
	StartLocation string
	EndLocation   string
}

type StatusUpdate struct {
	StatusID  int64
	Latitude  *float64
	Longitude *float64
	Comment   *string
}

// CreateOrder создаёт заказ клиента: считает дистанцию и цену, пишет заказ
// со статусом PENDING плюс route и cargo одной транзакцией.
func (s *Service) CreateOrder(ctx context.Context, actor entities.Actor, orderCreate OrderCreate) (*entities.OrderDetails, error) {
	if !actor.IsCustomer() {
		return nil, fmt.Errorf("%w: only customers create orders", ErrAccessDenied)
	}
	if err := validateOrderCreate(orderCreate); err != nil {
		return nil, err
	}

	customer, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	distance := s.pricing.EstimateDistance(orderCreate.StartLocation, orderCreate.EndLocation)
	price := s.pricing.CalculatePrice(distance, orderCreate.WeightKg, orderCreate.CargoType)
	now := time.Now().UTC()

	details := entities.OrderDetails{}
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// строка PENDING обязана существовать в справочнике
		if _, err := s.statuses.GetByName(ctx, entities.OrderPending); err != nil {
			return fmt.Errorf("initial status lookup: %w", err)
		}

		created, err := s.repository.Create(ctx, entities.Order{
			CustomerID: customer.ID,
			Status:     entities.OrderPending,
			Price:      price,
			CreatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		route, err := s.repository.CreateRoute(ctx, entities.Route{
			OrderID:       created.ID,
			StartLocation: orderCreate.StartLocation,
			EndLocation:   orderCreate.EndLocation,
			Distance:      distance,
			EstimatedTime: s.timeFactory.EstimateArrival(distance, now),
		})
		if err != nil {
			return fmt.Errorf("create route: %w", err)
		}

		cargo, err := s.repository.CreateCargo(ctx, entities.Cargo{
			OrderID:  created.ID,
			Type:     orderCreate.CargoType,
			WeightKg: orderCreate.WeightKg,
		})
		if err != nil {
			return fmt.Errorf("create cargo: %w", err)
		}

		details = entities.OrderDetails{
			Order: *created,
			Route: *route,
			Cargo: *cargo,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.PublishStatusChanged(ctx, entities.OrderStatusChangedEvent{
		OrderID:    details.Order.ID,
		CustomerID: details.Order.CustomerID,
		Status:     entities.OrderPending,
		OccurredAt: now,
	})

	return &details, nil
}

// QuotePrice считает цену без создания заказа.
func (s *Service) QuotePrice(_ context.Context, orderCreate OrderCreate) (*entities.PriceQuote, error) {
	if err := validateOrderCreate(orderCreate); err != nil {
		return nil, err
	}

	distance := s.pricing.EstimateDistance(orderCreate.StartLocation, orderCreate.EndLocation)
	price := s.pricing.CalculatePrice(distance, orderCreate.WeightKg, orderCreate.CargoType)

	return &entities.PriceQuote{
		StartLocation: orderCreate.StartLocation,
		EndLocation:   orderCreate.EndLocation,
		CargoType:     orderCreate.CargoType,
		WeightKg:      orderCreate.WeightKg,
		Distance:      distance,
		Price:         price,
	}, nil
}

// AssignDriverAndVehicle назначает водителя и машину на заказ и переводит его
// в ASSIGNED. Доступно только саппорту. Serializable, чтобы два агента не
// назначили один заказ параллельно.
func (s *Service) AssignDriverAndVehicle(ctx context.Context, actor entities.Actor, orderID, driverID, vehicleID int64) (*entities.Order, error) {
	if actor.Role != entities.RoleSupportAgent {
		return nil, fmt.Errorf("%w: assignment requires SUPPORT_AGENT role", ErrAccessDenied)
	}

	var updated *entities.Order
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if isTerminal(current.Status) {
			return fmt.Errorf("%w: order is already %s", ErrInvalidTransition, current.Status)
		}

		driver, err := s.users.GetByID(ctx, driverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		if driver.Role != entities.RoleDriver {
			return fmt.Errorf("%w: user %d has role %s", ErrNotADriver, driverID, driver.Role)
		}

		vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
		if err != nil {
			return fmt.Errorf("get vehicle: %w", err)
		}
		if vehicle.DriverID != driver.ID {
			return ErrVehicleDriverMismatch
		}

		newStatus := entities.OrderAssigned
		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:        &orderID,
			DriverID:  &driver.ID,
			VehicleID: &vehicle.ID,
			Status:    &newStatus,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, tx.ErrSerialization) {
			return nil, fmt.Errorf("%w: order %d is being assigned concurrently", ErrConflict, orderID)
		}
		return nil, err
	}

	s.events.PublishStatusChanged(ctx, entities.OrderStatusChangedEvent{
		OrderID:    updated.ID,
		CustomerID: updated.CustomerID,
		Status:     updated.Status,
		OccurredAt: time.Now().UTC(),
	})

	return updated, nil
}

// UpdateStatus переводит заказ в статус по id из справочника, проверяя машину
// состояний и права actor. Координаты, если переданы обе, пишутся точкой
// трекинга в той же транзакции; комментарий сохраняется только у водителя.
func (s *Service) UpdateStatus(ctx context.Context, actor entities.Actor, orderID int64, statusUpdate StatusUpdate) (*entities.Order, error) {
	if statusUpdate.StatusID <= 0 {
		return nil, ErrInvalidStatusID
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		newStatus, err := s.statuses.GetByID(ctx, statusUpdate.StatusID)
		if err != nil {
			return fmt.Errorf("status lookup: %w", err)
		}

		if err := validateTransition(current, newStatus, actor); err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:     &orderID,
			Status: &newStatus,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		if statusUpdate.Latitude != nil && statusUpdate.Longitude != nil {
			location := entities.OrderLocation{
				OrderID:   orderID,
				Latitude:  *statusUpdate.Latitude,
				Longitude: *statusUpdate.Longitude,
				Timestamp: time.Now().UTC(),
			}
			if actor.IsDriver() {
				location.Comment = statusUpdate.Comment
			}
			if _, err := s.repository.AddLocation(ctx, location); err != nil {
				return fmt.Errorf("add location: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.PublishStatusChanged(ctx, entities.OrderStatusChangedEvent{
		OrderID:    updated.ID,
		CustomerID: updated.CustomerID,
		Status:     updated.Status,
		OccurredAt: time.Now().UTC(),
	})

	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, actor entities.Actor, orderID int64) (*entities.OrderDetails, error) {
	details, err := s.repository.GetDetailsByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if err := validateOrderAccess(&details.Order, actor); err != nil {
		return nil, err
	}
	return details, nil
}

// ListOrders: клиент видит свои заказы, водитель — назначенные на него,
// саппорт и админ — все.
func (s *Service) ListOrders(ctx context.Context, actor entities.Actor) ([]entities.OrderDetails, error) {
	switch {
	case actor.IsCustomer():
		return s.repository.ListByCustomer(ctx, actor.UserID)
	case actor.IsDriver():
		return s.repository.ListByDriver(ctx, actor.UserID)
	case actor.IsStaff():
		return s.repository.ListAll(ctx)
	default:
		return nil, fmt.Errorf("%w: unknown role %s", ErrAccessDenied, actor.Role)
	}
}

// GetOrderTracking возвращает историю геоточек заказа, свежие первыми.
func (s *Service) GetOrderTracking(ctx context.Context, actor entities.Actor, orderID int64) ([]entities.OrderLocation, error) {
	current, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := validateOrderAccess(current, actor); err != nil {
		return nil, err
	}

	return s.repository.ListLocations(ctx, orderID)
}
