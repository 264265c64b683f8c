package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"brokerage/internal/entities"
	"brokerage/internal/repository"
	"brokerage/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const detailsSelect = `
	SELECT
		o.id, o.customer_id, o.driver_id, o.vehicle_id, s.name, o.price, o.created_at,
		r.id, r.order_id, r.start_location, r.end_location, r.distance_km, r.estimated_time,
		c.id, c.order_id, c.cargo_type, c.weight_kg
	FROM orders o
	JOIN order_statuses s ON s.id = o.status_id
	JOIN routes r ON r.order_id = o.id
	JOIN cargo c ON c.order_id = o.id
`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (customer_id, status_id, price, created_at)
		VALUES ($1, (SELECT id FROM order_statuses WHERE name = $2), $3, $4)
		RETURNING id, customer_id, driver_id, vehicle_id,
			(SELECT name FROM order_statuses WHERE id = status_id), price, created_at
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.CustomerID,
		orderEntity.Status.String(),
		orderEntity.Price,
		orderEntity.CreatedAt,
	).Scan(
		&orderModel.ID,
		&orderModel.CustomerID,
		&orderModel.DriverID,
		&orderModel.VehicleID,
		&orderModel.Status,
		&orderModel.Price,
		&orderModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) CreateRoute(ctx context.Context, routeEntity entities.Route) (*entities.Route, error) {
	query := `
		INSERT INTO routes (order_id, start_location, end_location, distance_km, estimated_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, order_id, start_location, end_location, distance_km, estimated_time
	`

	var routeModel RouteDB
	err := r.querier.QueryRow(
		ctx,
		query,
		routeEntity.OrderID,
		routeEntity.StartLocation,
		routeEntity.EndLocation,
		routeEntity.Distance,
		routeEntity.EstimatedTime,
	).Scan(
		&routeModel.ID,
		&routeModel.OrderID,
		&routeModel.StartLocation,
		&routeModel.EndLocation,
		&routeModel.Distance,
		&routeModel.EstimatedTime,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create route error: %w", err)
	}

	return ToRouteDomain(&routeModel), nil
}

func (r *Repository) CreateCargo(ctx context.Context, cargoEntity entities.Cargo) (*entities.Cargo, error) {
	query := `
		INSERT INTO cargo (order_id, cargo_type, weight_kg)
		VALUES ($1, $2, $3)
		RETURNING id, order_id, cargo_type, weight_kg
	`

	var cargoModel CargoDB
	err := r.querier.QueryRow(
		ctx,
		query,
		cargoEntity.OrderID,
		cargoEntity.Type,
		cargoEntity.WeightKg,
	).Scan(
		&cargoModel.ID,
		&cargoModel.OrderID,
		&cargoModel.Type,
		&cargoModel.WeightKg,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create cargo error: %w", err)
	}

	return ToCargoDomain(&cargoModel), nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyEntity.DriverID != nil {
		builder = builder.Set("driver_id", orderModifyEntity.DriverID)
	}
	if orderModifyEntity.VehicleID != nil {
		builder = builder.Set("vehicle_id", orderModifyEntity.VehicleID)
	}
	if orderModifyEntity.Status != nil {
		builder = builder.Set(
			"status_id",
			sq.Expr("(SELECT id FROM order_statuses WHERE name = ?)", orderModifyEntity.Status.String()),
		)
	}

	builder = builder.
		Where(sq.Eq{"id": orderModifyEntity.ID}).
		Suffix(`RETURNING id, customer_id, driver_id, vehicle_id,
			(SELECT name FROM order_statuses WHERE id = status_id), price, created_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&orderModel.ID,
		&orderModel.CustomerID,
		&orderModel.DriverID,
		&orderModel.VehicleID,
		&orderModel.Status,
		&orderModel.Price,
		&orderModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID int64) (*entities.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.driver_id, o.vehicle_id, s.name, o.price, o.created_at
		FROM orders o
		JOIN order_statuses s ON s.id = o.status_id
		WHERE o.id = $1
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderModel.ID,
		&orderModel.CustomerID,
		&orderModel.DriverID,
		&orderModel.VehicleID,
		&orderModel.Status,
		&orderModel.Price,
		&orderModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetDetailsByID(ctx context.Context, orderID int64) (*entities.OrderDetails, error) {
	query := detailsSelect + ` WHERE o.id = $1`

	var detailsModel OrderDetailsDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(detailsScanTargets(&detailsModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getdetails error: %w", err)
	}

	return ToDetailsDomain(&detailsModel), nil
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]entities.OrderDetails, error) {
	query := detailsSelect + ` WHERE o.customer_id = $1 ORDER BY o.id DESC`
	return r.queryDetailsList(ctx, query, customerID)
}

func (r *Repository) ListByDriver(ctx context.Context, driverID int64) ([]entities.OrderDetails, error) {
	query := detailsSelect + ` WHERE o.driver_id = $1 ORDER BY o.id DESC`
	return r.queryDetailsList(ctx, query, driverID)
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.OrderDetails, error) {
	query := detailsSelect + ` ORDER BY o.id DESC`
	return r.queryDetailsList(ctx, query)
}

func (r *Repository) queryDetailsList(ctx context.Context, query string, args ...interface{}) ([]entities.OrderDetails, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	detailsModels := make([]OrderDetailsDB, 0, 8)
	for rows.Next() {
		var detailsModel OrderDetailsDB
		if err := rows.Scan(detailsScanTargets(&detailsModel)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		detailsModels = append(detailsModels, detailsModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDetailsDomainList(detailsModels), nil
}

func detailsScanTargets(d *OrderDetailsDB) []interface{} {
	return []interface{}{
		&d.Order.ID, &d.Order.CustomerID, &d.Order.DriverID, &d.Order.VehicleID,
		&d.Order.Status, &d.Order.Price, &d.Order.CreatedAt,
		&d.Route.ID, &d.Route.OrderID, &d.Route.StartLocation, &d.Route.EndLocation,
		&d.Route.Distance, &d.Route.EstimatedTime,
		&d.Cargo.ID, &d.Cargo.OrderID, &d.Cargo.Type, &d.Cargo.WeightKg,
	}
}

func (r *Repository) AddLocation(ctx context.Context, locationEntity entities.OrderLocation) (*entities.OrderLocation, error) {
	query := `
		INSERT INTO order_locations (order_id, latitude, longitude, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, order_id, latitude, longitude, comment, created_at
	`

	var locationModel LocationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		locationEntity.OrderID,
		locationEntity.Latitude,
		locationEntity.Longitude,
		locationEntity.Comment,
		locationEntity.Timestamp,
	).Scan(
		&locationModel.ID,
		&locationModel.OrderID,
		&locationModel.Latitude,
		&locationModel.Longitude,
		&locationModel.Comment,
		&locationModel.Timestamp,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository add location error: %w", err)
	}

	return ToLocationDomain(&locationModel), nil
}

func (r *Repository) ListLocations(ctx context.Context, orderID int64) ([]entities.OrderLocation, error) {
	query := `
		SELECT id, order_id, latitude, longitude, comment, created_at
		FROM order_locations
		WHERE order_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list locations error: %w", err)
	}
	defer rows.Close()

	locationModels := make([]LocationDB, 0, 8)
	for rows.Next() {
		var locationModel LocationDB
		err := rows.Scan(
			&locationModel.ID,
			&locationModel.OrderID,
			&locationModel.Latitude,
			&locationModel.Longitude,
			&locationModel.Comment,
			&locationModel.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list locations error: %w", err)
		}
		locationModels = append(locationModels, locationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list locations error: %w", err)
	}

	return ToLocationDomainList(locationModels), nil
}
