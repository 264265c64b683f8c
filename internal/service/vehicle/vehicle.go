package vehicle

import (
	"context"
	"fmt"
	"strings"

	"brokerage/internal/entities"
)

type Service struct {
	repository Repository
	users      UserRepository
	txManager  TxManager
}

func New(repository Repository, users UserRepository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		users:      users,
		txManager:  txManager,
	}
}

type VehicleCreate struct {
	DriverID     int64
	LicensePlate string
	CapacityKg   int64
}

// Register регистрирует машину за водителем. Водитель регистрирует только
// свою, стафф — любому водителю. Уникальность номера держит БД.
func (s *Service) Register(ctx context.Context, actor entities.Actor, vehicleCreate VehicleCreate) (*entities.Vehicle, error) {
	if err := validateVehicleCreate(vehicleCreate); err != nil {
		return nil, err
	}

	switch {
	case actor.IsDriver():
		if vehicleCreate.DriverID != 0 && vehicleCreate.DriverID != actor.UserID {
			return nil, fmt.Errorf("%w: drivers register only their own vehicle", ErrAccessDenied)
		}
		vehicleCreate.DriverID = actor.UserID
	case actor.IsStaff():
		if vehicleCreate.DriverID == 0 {
			return nil, fmt.Errorf("%w: driver id", ErrMissingRequiredFields)
		}
	default:
		return nil, fmt.Errorf("%w: role %s cannot register vehicles", ErrAccessDenied, actor.Role)
	}

	var created *entities.Vehicle
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		driver, err := s.users.GetByID(ctx, vehicleCreate.DriverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		if driver.Role != entities.RoleDriver {
			return fmt.Errorf("%w: user %d has role %s", ErrNotADriver, driver.ID, driver.Role)
		}

		created, err = s.repository.Create(ctx, entities.Vehicle{
			DriverID:     driver.ID,
			LicensePlate: strings.ToUpper(strings.TrimSpace(vehicleCreate.LicensePlate)),
			CapacityKg:   vehicleCreate.CapacityKg,
		})
		if err != nil {
			return fmt.Errorf("create vehicle: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) GetVehicle(ctx context.Context, vehicleID int64) (*entities.Vehicle, error) {
	vehicle, err := s.repository.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return vehicle, nil
}

// ListVehicles: водитель видит свою машину, стафф — весь парк.
func (s *Service) ListVehicles(ctx context.Context, actor entities.Actor) ([]entities.Vehicle, error) {
	switch {
	case actor.IsDriver():
		vehicle, err := s.repository.GetByDriver(ctx, actor.UserID)
		if err != nil {
			return nil, fmt.Errorf("get driver vehicle: %w", err)
		}
		return []entities.Vehicle{*vehicle}, nil
	case actor.IsStaff():
		return s.repository.ListAll(ctx)
	default:
		return nil, fmt.Errorf("%w: role %s cannot list vehicles", ErrAccessDenied, actor.Role)
	}
}

func validateVehicleCreate(vehicleCreate VehicleCreate) error {
	if strings.TrimSpace(vehicleCreate.LicensePlate) == "" {
		return fmt.Errorf("%w: license plate", ErrMissingRequiredFields)
	}
	if vehicleCreate.CapacityKg <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}
