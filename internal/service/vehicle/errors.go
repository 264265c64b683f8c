package vehicle

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCapacity       = errors.New("invalid vehicle capacity")
	ErrVehicleNotFound       = errors.New("vehicle not found")
	ErrDriverNotFound        = errors.New("driver not found")
	ErrNotADriver            = errors.New("user is not a driver")
	ErrAccessDenied          = errors.New("access denied")
	ErrPlateTaken            = errors.New("license plate already registered")
	ErrDriverHasVehicle      = errors.New("driver already has a vehicle")
)
