package order

import "brokerage/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		DriverID:   o.DriverID,
		VehicleID:  o.VehicleID,
		Status:     entities.OrderStatusType(o.Status),
		Price:      o.Price,
		CreatedAt:  o.CreatedAt,
	}
}

func ToRouteDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}
	return &entities.Route{
		ID:            r.ID,
		OrderID:       r.OrderID,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		Distance:      r.Distance,
		EstimatedTime: r.EstimatedTime,
	}
}

func ToCargoDomain(c *CargoDB) *entities.Cargo {
	if c == nil {
		return nil
	}
	return &entities.Cargo{
		ID:       c.ID,
		OrderID:  c.OrderID,
		Type:     c.Type,
		WeightKg: c.WeightKg,
	}
}

func ToDetailsDomain(d *OrderDetailsDB) *entities.OrderDetails {
	if d == nil {
		return nil
	}
	return &entities.OrderDetails{
		Order: *ToDomain(&d.Order),
		Route: *ToRouteDomain(&d.Route),
		Cargo: *ToCargoDomain(&d.Cargo),
	}
}

func ToDetailsDomainList(detailsDB []OrderDetailsDB) []entities.OrderDetails {
	if len(detailsDB) == 0 {
		return []entities.OrderDetails{}
	}

	result := make([]entities.OrderDetails, len(detailsDB))
	for i, d := range detailsDB {
		result[i] = *ToDetailsDomain(&d)
	}
	return result
}

func ToLocationDomain(l *LocationDB) *entities.OrderLocation {
	if l == nil {
		return nil
	}
	return &entities.OrderLocation{
		ID:        l.ID,
		OrderID:   l.OrderID,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Comment:   l.Comment,
		Timestamp: l.Timestamp,
	}
}

func ToLocationDomainList(locationsDB []LocationDB) []entities.OrderLocation {
	if len(locationsDB) == 0 {
		return []entities.OrderLocation{}
	}

	result := make([]entities.OrderLocation, len(locationsDB))
	for i, l := range locationsDB {
		result[i] = *ToLocationDomain(&l)
	}
	return result
}
