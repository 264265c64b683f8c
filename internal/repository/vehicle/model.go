package vehicle

import "time"

type VehicleDB struct {
	ID           int64
	DriverID     int64
	LicensePlate string
	CapacityKg   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type VehicleModifyDB struct {
	ID           *int64
	DriverID     *int64
	LicensePlate *string
	CapacityKg   *int64
}
