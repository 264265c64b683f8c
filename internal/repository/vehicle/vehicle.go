package vehicle

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"brokerage/internal/entities"
	"brokerage/internal/repository"
	"brokerage/internal/service/vehicle"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, vehicleEntity entities.Vehicle) (*entities.Vehicle, error) {
	query := `
		INSERT INTO vehicles (driver_id, license_plate, capacity_kg)
		VALUES ($1, $2, $3)
		RETURNING id, driver_id, license_plate, capacity_kg, created_at, updated_at
	`

	var vehicleModel VehicleDB
	err := r.querier.QueryRow(
		ctx,
		query,
		vehicleEntity.DriverID,
		vehicleEntity.LicensePlate,
		vehicleEntity.CapacityKg,
	).Scan(
		&vehicleModel.ID,
		&vehicleModel.DriverID,
		&vehicleModel.LicensePlate,
		&vehicleModel.CapacityKg,
		&vehicleModel.CreatedAt,
		&vehicleModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			// на таблице два unique: по номеру и по водителю
			if repository.PgConstraintName(err) == "vehicles_driver_id_key" {
				return nil, vehicle.ErrDriverHasVehicle
			}
			return nil, vehicle.ErrPlateTaken
		}
		return nil, fmt.Errorf("unexpected vehicle repository create error: %w", err)
	}

	return ToDomain(&vehicleModel), nil
}

func (r *Repository) Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error) {
	vehicleModifyModel := FromDomainModify(&vehicleModifyEntity)

	builder := qb.
		Update("vehicles")

	// опциональные поля
	if vehicleModifyModel.DriverID != nil {
		builder = builder.Set("driver_id", vehicleModifyModel.DriverID)
	}
	if vehicleModifyModel.LicensePlate != nil {
		builder = builder.Set("license_plate", vehicleModifyModel.LicensePlate)
	}
	if vehicleModifyModel.CapacityKg != nil {
		builder = builder.Set("capacity_kg", vehicleModifyModel.CapacityKg)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": vehicleModifyModel.ID}).
		Suffix("RETURNING id, driver_id, license_plate, capacity_kg, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository update error: %w", err)
	}

	var vehicleModel VehicleDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&vehicleModel.ID,
		&vehicleModel.DriverID,
		&vehicleModel.LicensePlate,
		&vehicleModel.CapacityKg,
		&vehicleModel.CreatedAt,
		&vehicleModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, vehicle.ErrPlateTaken
		}
		return nil, fmt.Errorf("unexpected vehicle repository update error: %w", err)
	}

	return ToDomain(&vehicleModel), nil
}

func (r *Repository) GetByID(ctx context.Context, vehicleID int64) (*entities.Vehicle, error) {
	query := `
		SELECT id, driver_id, license_plate, capacity_kg, created_at, updated_at
		FROM vehicles
		WHERE id = $1
	`

	var vehicleModel VehicleDB
	err := r.querier.QueryRow(ctx, query, vehicleID).Scan(
		&vehicleModel.ID,
		&vehicleModel.DriverID,
		&vehicleModel.LicensePlate,
		&vehicleModel.CapacityKg,
		&vehicleModel.CreatedAt,
		&vehicleModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected vehicle repository getbyid error: %w", err)
	}

	return ToDomain(&vehicleModel), nil
}

func (r *Repository) GetByDriver(ctx context.Context, driverID int64) (*entities.Vehicle, error) {
	query := `
		SELECT id, driver_id, license_plate, capacity_kg, created_at, updated_at
		FROM vehicles
		WHERE driver_id = $1
	`

	var vehicleModel VehicleDB
	err := r.querier.QueryRow(ctx, query, driverID).Scan(
		&vehicleModel.ID,
		&vehicleModel.DriverID,
		&vehicleModel.LicensePlate,
		&vehicleModel.CapacityKg,
		&vehicleModel.CreatedAt,
		&vehicleModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected vehicle repository getbydriver error: %w", err)
	}

	return ToDomain(&vehicleModel), nil
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.Vehicle, error) {
	query := `
		SELECT id, driver_id, license_plate, capacity_kg, created_at, updated_at
		FROM vehicles
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository listall error: %w", err)
	}
	defer rows.Close()

	vehicleModels := make([]VehicleDB, 0, 8)
	for rows.Next() {
		var vehicleModel VehicleDB
		err := rows.Scan(
			&vehicleModel.ID,
			&vehicleModel.DriverID,
			&vehicleModel.LicensePlate,
			&vehicleModel.CapacityKg,
			&vehicleModel.CreatedAt,
			&vehicleModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected vehicle repository listall error: %w", err)
		}
		vehicleModels = append(vehicleModels, vehicleModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository listall error: %w", err)
	}

	return ToDomainList(vehicleModels), nil
}
