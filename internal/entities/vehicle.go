package entities

import "time"

// Vehicle принадлежит ровно одному водителю (one-to-one).
type Vehicle struct {
	ID           int64
	DriverID     int64
	LicensePlate string
	CapacityKg   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type VehicleModify struct {
	ID           *int64
	DriverID     *int64
	LicensePlate *string
	CapacityKg   *int64
}
