package vehicle

import "brokerage/internal/entities"

func ToDomain(v *VehicleDB) *entities.Vehicle {
	if v == nil {
		return nil
	}
	return &entities.Vehicle{
		ID:           v.ID,
		DriverID:     v.DriverID,
		LicensePlate: v.LicensePlate,
		CapacityKg:   v.CapacityKg,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromDomainModify(vehicleModify *entities.VehicleModify) *VehicleModifyDB {
	if vehicleModify == nil {
		return nil
	}
	vehicleDB := &VehicleModifyDB{}

	if vehicleModify.ID != nil {
		vehicleDB.ID = vehicleModify.ID
	}
	if vehicleModify.DriverID != nil {
		vehicleDB.DriverID = vehicleModify.DriverID
	}
	if vehicleModify.LicensePlate != nil {
		vehicleDB.LicensePlate = vehicleModify.LicensePlate
	}
	if vehicleModify.CapacityKg != nil {
		vehicleDB.CapacityKg = vehicleModify.CapacityKg
	}

	return vehicleDB
}

func ToDomainList(vehiclesDB []VehicleDB) []entities.Vehicle {
	if len(vehiclesDB) == 0 {
		return []entities.Vehicle{}
	}

	result := make([]entities.Vehicle, len(vehiclesDB))
	for i, vehicleDB := range vehiclesDB {
		result[i] = *ToDomain(&vehicleDB)
	}
	return result
}
